package crm

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/testutil"
	"github.com/merge-api/merge-go-client/value"
)

const account = `{"id":"acc","name":"Initech","website":"https://initech.example","number_of_employees":120,"annual_revenue":1250000.75,"addresses":[{"street_1":"1 Main St","country":"US","address_type":"BILLING"},{"city":"Austin","address_type":"HEADQUARTERS"}]}`

func newClient(t *testing.T) (*Client, *testutil.Server) {
	t.Helper()
	srv := testutil.NewServer(t)
	c, err := merge.NewClient(srv.Config())
	if err != nil {
		t.Fatal(err)
	}
	return New(c), srv
}

func TestAccount_Parse(t *testing.T) {
	a, err := model.Unmarshal[Account]([]byte(account))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if want := decimal.RequireFromString("1250000.75"); !a.AnnualRevenue.Equal(want) {
		t.Errorf("AnnualRevenue = %s, want %s", a.AnnualRevenue, want)
	}
	if *a.NumberOfEmployees != 120 {
		t.Errorf("NumberOfEmployees = %d", *a.NumberOfEmployees)
	}
	if !a.Addresses[0].AddressType.Is(AddressBilling) {
		t.Errorf("Addresses[0].AddressType = %v", a.Addresses[0].AddressType)
	}
	if raw, _ := a.Addresses[1].AddressType.Raw(); raw != "HEADQUARTERS" {
		t.Errorf("Addresses[1].AddressType.Raw() = %q", raw)
	}

	out, err := model.Serialize(a)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := out.Get("annual_revenue"); got.String() != "1250000.75" {
		t.Errorf("annual_revenue = %s", got)
	}
}

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid", input: account},
		{name: "negative headcount", input: `{"number_of_employees":-1}`, want: "Account.number_of_employees: must be at least 0"},
		{name: "country code", input: `{"addresses":[{"country":"USA"}]}`, want: "Account.addresses[0].country: must be exactly 2 characters"},
		{name: "revenue type", input: `{"annual_revenue":true}`, want: "Account.annual_revenue: expected number, got boolean"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateRawFor[Account](value.MustParse(tt.input))
			if tt.want == "" {
				if err != nil {
					t.Errorf("ValidateRawFor() error = %v", err)
				}
				return
			}
			errs := model.ValidationErrors(err)
			if len(errs) != 1 || errs[0].Error() != tt.want {
				t.Errorf("errs = %v, want %q", errs, tt.want)
			}
		})
	}
}

func TestContacts(t *testing.T) {
	api, srv := newClient(t)
	srv.JSON(http.MethodGet, "/crm/v1/contacts/c1", http.StatusOK, `{"id":"c1","first_name":"Peter","account":`+account+`}`).
		JSON(http.MethodPatch, "/crm/v1/contacts/c1", http.StatusOK, `{"model":{"id":"c1","first_name":"Pete","account":"acc"},"warnings":[],"errors":[]}`)
	ctx := context.Background()

	c, err := api.Contacts.Retrieve(ctx, "c1", nil)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	acct, ok := c.Account.Expanded()
	if !ok || *acct.Name != "Initech" {
		t.Errorf("Account = %+v", c.Account)
	}

	resp, err := api.Contacts.PartialUpdate(ctx, "c1", &ContactRequest{FirstName: ptr("Pete")})
	if err != nil {
		t.Fatalf("PartialUpdate() error = %v", err)
	}
	if id, _ := resp.Model.Account.ID(); id != "acc" {
		t.Errorf("Account.ID() = %q", id)
	}
	req := srv.LastRequest(t)
	if req.Method != http.MethodPatch {
		t.Errorf("method = %s", req.Method)
	}
	if got, _ := value.Lookup(req.JSON(t), "model.first_name"); !value.Equal(got, value.String("Pete")) {
		t.Errorf("model.first_name = %v", got)
	}

	_, err = api.Contacts.Create(ctx, &ContactRequest{EmailAddresses: []*EmailAddressRequest{{}}})
	if merge.CodeOf(err) != merge.CodeInvalidArgument {
		t.Errorf("Create() error = %v, want invalid_argument", err)
	}
}

func TestAccounts_RetrieveManyFailure(t *testing.T) {
	api, srv := newClient(t)
	srv.JSON(http.MethodGet, "/crm/v1/accounts/acc", http.StatusOK, account).
		JSON(http.MethodGet, "/crm/v1/accounts/gone", http.StatusForbidden, `{"detail":"You do not have permission."}`)

	_, err := api.Accounts.RetrieveMany(context.Background(), []string{"acc", "gone"}, nil)
	if !merge.IsPermissionDenied(err) {
		t.Fatalf("RetrieveMany() error = %v, want permission_denied", err)
	}
}

func ptr[T any](v T) *T { return &v }
