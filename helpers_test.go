package merge

import (
	"testing"
	"time"

	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/testutil"
)

type employee struct {
	model.Base

	ID        *string                     `json:"id"`
	FirstName *string                     `json:"first_name"`
	Manager   *model.Expandable[employee] `json:"manager"`
	StartDate *time.Time                  `json:"start_date"`
}

type employeeRequest struct {
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name"`
}

type listParams struct {
	Cursor            string     `url:"cursor,omitempty"`
	PageSize          int        `url:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
	CreatedAfter      *time.Time `url:"created_after,omitempty"`
	IncludeRemoteData *bool      `url:"include_remote_data,omitempty"`
	Expand            string     `url:"expand,omitempty"`
}

func str(s string) *string { return &s }

func newTestClient(t *testing.T) (*Client, *testutil.Server) {
	t.Helper()
	srv := testutil.NewServer(t)
	c, err := NewClient(srv.Config())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c, srv
}
