package ticketing

import (
	"time"

	"github.com/merge-api/merge-go-client/shared"
)

// TicketListParams filters the ticket list.
type TicketListParams struct {
	shared.ListParams

	Status             string     `url:"status,omitempty"`
	Priority           string     `url:"priority,omitempty"`
	AccountID          string     `url:"account_id,omitempty"`
	ContactID          string     `url:"contact_id,omitempty"`
	AssigneeIDs        string     `url:"assignee_ids,omitempty"`
	CollectionIDs      string     `url:"collection_ids,omitempty"`
	ParentTicketID     string     `url:"parent_ticket_id,omitempty"`
	TicketType         string     `url:"ticket_type,omitempty"`
	DueAfter           *time.Time `url:"due_after,omitempty"`
	DueBefore          *time.Time `url:"due_before,omitempty"`
	RemoteCreatedAfter *time.Time `url:"remote_created_after,omitempty"`
}
