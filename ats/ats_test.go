package ats

import (
	"context"
	"net/http"
	"testing"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/testutil"
	"github.com/merge-api/merge-go-client/value"
)

const candidate = `{
	"id": "cand",
	"first_name": "Alan",
	"last_name": "Turing",
	"email_addresses": [
		{"value": "alan@home.example", "email_address_type": "PERSONAL"},
		{"value": "alan@work.example", "email_address_type": "WORK"}
	],
	"phone_numbers": [{"value": "+441234", "phone_number_type": "PAGER"}],
	"urls": [{"value": "https://turing.example", "url_type": "PERSONAL"}],
	"applications": ["app1", {"id": "app2", "candidate": "cand", "rejected_at": "2024-02-01T10:00:00Z"}]
}`

func newClient(t *testing.T) (*Client, *testutil.Server) {
	t.Helper()
	srv := testutil.NewServer(t)
	c, err := merge.NewClient(srv.Config())
	if err != nil {
		t.Fatal(err)
	}
	return New(c), srv
}

func TestCandidate_Parse(t *testing.T) {
	c, err := model.Unmarshal[Candidate]([]byte(candidate))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if email, ok := c.PrimaryEmail(); !ok || email != "alan@work.example" {
		t.Errorf("PrimaryEmail() = %q, %v", email, ok)
	}
	if raw, ok := c.PhoneNumbers[0].PhoneNumberType.Raw(); !ok || raw != "PAGER" {
		t.Errorf("PhoneNumberType.Raw() = %q, %v", raw, ok)
	}
	if len(c.Applications) != 2 {
		t.Fatalf("Applications = %v", c.Applications)
	}
	if id, _ := c.Applications[0].ID(); id != "app1" || c.Applications[0].IsExpanded() {
		t.Errorf("Applications[0] = %q, expanded %v", id, c.Applications[0].IsExpanded())
	}
	app, ok := c.Applications[1].Expanded()
	if !ok || !app.Rejected() {
		t.Errorf("Applications[1] = %+v", app)
	}
	if id, _ := app.Candidate.ID(); id != "cand" {
		t.Errorf("Candidate.ID() = %q", id)
	}
}

func TestCandidate_PrimaryEmail(t *testing.T) {
	tests := []struct {
		name   string
		emails []*EmailAddress
		want   string
		wantOK bool
	}{
		{name: "none"},
		{
			name:   "first without work",
			emails: []*EmailAddress{{Value: ptr("a@x.example")}, {Value: ptr("b@x.example")}},
			want:   "a@x.example",
			wantOK: true,
		},
		{
			name:   "nil entries skipped",
			emails: []*EmailAddress{nil, {}, {Value: ptr("c@x.example"), EmailAddressType: enum.Ptr(EmailOther)}},
			want:   "c@x.example",
			wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Candidate{EmailAddresses: tt.emails}
			got, ok := c.PrimaryEmail()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("PrimaryEmail() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCandidate_ValidateNested(t *testing.T) {
	if err := model.ValidateRawFor[Candidate](value.MustParse(candidate)); err != nil {
		t.Errorf("ValidateRawFor() error = %v", err)
	}
	errs := model.ValidationErrors(model.ValidateRawFor[Candidate](value.MustParse(`{"urls":[{"value":"not a url"}]}`)))
	if len(errs) != 1 || errs[0].Error() != "Candidate.urls[0].value: must be a valid URL" {
		t.Errorf("errs = %v", errs)
	}
}

func TestCandidates_Create(t *testing.T) {
	api, srv := newClient(t)
	srv.JSON(http.MethodPost, "/ats/v1/candidates", http.StatusCreated, `{"model":`+candidate+`,"warnings":[],"errors":[]}`)

	resp, err := api.Candidates.Create(context.Background(), &CandidateRequest{
		FirstName: ptr("Alan"),
		LastName:  ptr("Turing"),
		EmailAddresses: []*EmailAddressRequest{
			{Value: ptr("alan@work.example"), EmailAddressType: enum.Ptr(EmailWork)},
		},
	}, "remote-user-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if *resp.Model.ID != "cand" || resp.HasProblems() {
		t.Errorf("Create() = %+v", resp)
	}

	body := srv.LastRequest(t).JSON(t)
	if got, _ := body.Get("remote_user_id"); !value.Equal(got, value.String("remote-user-1")) {
		t.Errorf("remote_user_id = %v", got)
	}
	if got, _ := value.Lookup(body, "model.email_addresses.0.email_address_type"); !value.Equal(got, value.String("WORK")) {
		t.Errorf("email_address_type = %v", got)
	}
}

func TestCandidates_CreateValidation(t *testing.T) {
	tests := []struct {
		name         string
		body         *CandidateRequest
		remoteUserID string
	}{
		{name: "missing remote user", body: &CandidateRequest{FirstName: ptr("A"), LastName: ptr("B")}},
		{name: "missing last name", body: &CandidateRequest{FirstName: ptr("A")}, remoteUserID: "u"},
		{
			name: "bad nested email",
			body: &CandidateRequest{
				FirstName:      ptr("A"),
				LastName:       ptr("B"),
				EmailAddresses: []*EmailAddressRequest{{Value: ptr("nope")}},
			},
			remoteUserID: "u",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, srv := newClient(t)
			_, err := api.Candidates.Create(context.Background(), tt.body, tt.remoteUserID)
			if merge.CodeOf(err) != merge.CodeInvalidArgument {
				t.Errorf("Create() error = %v, want invalid_argument", err)
			}
			if n := len(srv.Requests()); n != 0 {
				t.Errorf("requests = %d, want 0", n)
			}
		})
	}
}

func TestApplications_Pager(t *testing.T) {
	api, srv := newClient(t)
	srv.Handle(http.MethodGet, "/ats/v1/applications", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("cursor") {
		case "":
			testutil.WriteJSON(w, http.StatusOK, `{"next":"c2","previous":null,"results":[{"id":"a1"},{"id":"a2"}]}`)
		default:
			testutil.WriteJSON(w, http.StatusOK, `{"next":null,"previous":"c1","results":[{"id":"a3"}]}`)
		}
	})

	var ids []string
	for app, err := range api.Applications.Pager(&ApplicationListParams{CandidateID: "cand"}).All(context.Background()) {
		if err != nil {
			t.Fatalf("All() error = %v", err)
		}
		ids = append(ids, *app.ID)
	}
	if len(ids) != 3 || ids[2] != "a3" {
		t.Errorf("ids = %v", ids)
	}
	for _, req := range srv.Requests() {
		testutil.AssertQuery(t, req, "candidate_id", "cand")
	}
}

func ptr[T any](v T) *T { return &v }
