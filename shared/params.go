package shared

import (
	"strings"
	"time"
)

// ListParams are the query parameters every common model list endpoint
// accepts. Category parameter structs embed it.
type ListParams struct {
	Cursor             string     `url:"cursor,omitempty"`
	PageSize           int        `url:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
	CreatedAfter       *time.Time `url:"created_after,omitempty"`
	CreatedBefore      *time.Time `url:"created_before,omitempty"`
	ModifiedAfter      *time.Time `url:"modified_after,omitempty"`
	ModifiedBefore     *time.Time `url:"modified_before,omitempty"`
	IncludeDeletedData *bool      `url:"include_deleted_data,omitempty"`
	IncludeRemoteData  *bool      `url:"include_remote_data,omitempty"`
	RemoteID           string     `url:"remote_id,omitempty"`

	// Expand is a comma-separated list of related fields to return as
	// objects instead of IDs, see Expand.
	Expand string `url:"expand,omitempty"`
}

// RetrieveParams are the query parameters every retrieve endpoint accepts.
type RetrieveParams struct {
	IncludeRemoteData *bool  `url:"include_remote_data,omitempty"`
	Expand            string `url:"expand,omitempty"`
}

// Expand joins field names for the expand parameter.
func Expand(fields ...string) string {
	return strings.Join(fields, ",")
}

// AuditTrailListParams filters the audit trail.
type AuditTrailListParams struct {
	Cursor    string     `url:"cursor,omitempty"`
	PageSize  int        `url:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
	StartDate *time.Time `url:"start_date,omitempty"`
	EndDate   *time.Time `url:"end_date,omitempty"`
	EventType string     `url:"event_type,omitempty"`
	UserEmail string     `url:"user_email,omitempty" validate:"omitempty,email"`
}

// SyncStatusListParams pages through sync statuses.
type SyncStatusListParams struct {
	Cursor   string `url:"cursor,omitempty"`
	PageSize int    `url:"page_size,omitempty" validate:"omitempty,min=1,max=100"`
}
