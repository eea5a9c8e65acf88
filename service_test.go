package merge

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/testutil"
)

func TestResource_Path(t *testing.T) {
	r := NewResource[employee](nil, "hris", "employees")
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, "/hris/v1/employees"},
		{[]string{"e1"}, "/hris/v1/employees/e1"},
		{[]string{"a/b", "download"}, "/hris/v1/employees/a%2Fb/download"},
	}
	for _, tt := range tests {
		if got := r.Path(tt.segments...); got != tt.want {
			t.Errorf("Path(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

func TestResource_Operations(t *testing.T) {
	c, srv := newTestClient(t)
	var ops []string
	c.WithUnaryInterceptor(func(ctx context.Context, req *http.Request, next RoundTripFunc) (*http.Response, error) {
		info, _ := CallInfoFromContext(ctx)
		ops = append(ops, info.Endpoint())
		return next(ctx, req)
	})
	srv.JSON(http.MethodGet, "/hris/v1/employees", http.StatusOK, `{"next":null,"previous":null,"results":[{"id":"e1"}]}`).
		JSON(http.MethodGet, "/hris/v1/employees/{id}", http.StatusOK, `{"id":"e1"}`).
		JSON(http.MethodPost, "/hris/v1/employees", http.StatusCreated, `{"model":{"id":"e2"},"warnings":[],"errors":[]}`).
		JSON(http.MethodPatch, "/hris/v1/employees/{id}", http.StatusOK, `{"model":{"id":"e1"},"warnings":[],"errors":[]}`).
		JSON(http.MethodGet, "/hris/v1/account-details", http.StatusOK, `{"id":"acct"}`).
		Handle(http.MethodGet, "/hris/v1/employees/{id}/download", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "bytes")
		})

	ctx := context.Background()
	r := NewResource[employee](c, "hris", "employees")
	body := &model.WriteRequest[employeeRequest]{Model: &employeeRequest{FirstName: str("X")}}

	if page, err := r.List(ctx, nil); err != nil || len(page.Results) != 1 {
		t.Errorf("List() = %v, %v", page, err)
	}
	if emp, err := r.Retrieve(ctx, "e1", nil); err != nil || *emp.ID != "e1" {
		t.Errorf("Retrieve() = %v, %v", emp, err)
	}
	if res, err := r.Create(ctx, body); err != nil || *res.Model.ID != "e2" {
		t.Errorf("Create() = %v, %v", res, err)
	}
	if res, err := r.PartialUpdate(ctx, "e1", body); err != nil || *res.Model.ID != "e1" {
		t.Errorf("PartialUpdate() = %v, %v", res, err)
	}
	if acct, err := NewResource[employee](c, "hris", "account-details").Get(ctx, nil); err != nil || *acct.ID != "acct" {
		t.Errorf("Get() = %v, %v", acct, err)
	}
	rc, _, err := r.Download(ctx, "e1", nil)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "bytes" {
		t.Errorf("Download() = %q", data)
	}

	want := []string{
		"hris.employees.list",
		"hris.employees.retrieve",
		"hris.employees.create",
		"hris.employees.partial_update",
		"hris.account-details.retrieve",
		"hris.employees.download",
	}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v", ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("ops[%d] = %s, want %s", i, ops[i], want[i])
		}
	}
}

func TestResource_ListAllFollowsCursors(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle(http.MethodGet, "/ats/v1/candidates", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("cursor") {
		case "":
			testutil.WriteJSON(w, http.StatusOK, `{"next":"c2","previous":null,"results":[{"id":"1"},{"id":"2"}]}`)
		case "c2":
			testutil.WriteJSON(w, http.StatusOK, `{"next":null,"previous":"c1","results":[{"id":"3"}]}`)
		default:
			testutil.WriteJSON(w, http.StatusBadRequest, `{"detail":"bad cursor"}`)
		}
	})

	r := NewResource[employee](c, "ats", "candidates")
	all, err := r.ListAll(context.Background(), &listParams{PageSize: 2})
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 || *all[2].ID != "3" {
		t.Errorf("ListAll() returned %d results", len(all))
	}
	reqs := srv.Requests()
	if len(reqs) != 2 {
		t.Fatalf("requests = %d, want 2", len(reqs))
	}
	testutil.AssertQuery(t, reqs[1], "cursor", "c2")
	testutil.AssertQuery(t, reqs[1], "page_size", "2")
}

func TestResource_RetrieveMany(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Handle(http.MethodGet, "/hris/v1/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusOK, `{"id":"`+r.URL.Path[len("/api/hris/v1/employees/"):]+`"}`)
	})

	got, err := NewResource[employee](c, "hris", "employees").RetrieveMany(context.Background(), []string{"x", "y", "z"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, id := range []string{"x", "y", "z"} {
		if *got[i].ID != id {
			t.Errorf("got[%d] = %s", i, *got[i].ID)
		}
	}
}
