// Package ticketing is the ticketing and issue tracking category of the
// Merge API.
package ticketing

import (
	"time"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/value"
)

// Ticket is a ticket, issue or task.
type Ticket struct {
	model.Base

	ID               *string                      `json:"id"`
	RemoteID         *string                      `json:"remote_id"`
	Name             *string                      `json:"name"`
	Assignees        []string                     `json:"assignees"`
	Creator          *string                      `json:"creator"`
	DueDate          *time.Time                   `json:"due_date"`
	Status           *enum.Open[TicketStatusEnum] `json:"status"`
	Description      *string                      `json:"description"`
	Collections      []string                     `json:"collections"`
	TicketType       *string                      `json:"ticket_type"`
	Account          *string                      `json:"account"`
	Contact          *string                      `json:"contact"`
	ParentTicket     *model.Expandable[Ticket]    `json:"parent_ticket"`
	Attachments      []string                     `json:"attachments"`
	Tags             []string                     `json:"tags"`
	RemoteCreatedAt  *time.Time                   `json:"remote_created_at"`
	RemoteUpdatedAt  *time.Time                   `json:"remote_updated_at"`
	CompletedAt      *time.Time                   `json:"completed_at"`
	TicketURL        *string                      `json:"ticket_url" validate:"omitempty,url"`
	Priority         *enum.Open[PriorityEnum]     `json:"priority"`
	RemoteWasDeleted *bool                        `json:"remote_was_deleted"`
	CreatedAt        *time.Time                   `json:"created_at"`
	ModifiedAt       *time.Time                   `json:"modified_at"`
	FieldMappings    value.Value                  `json:"field_mappings"`
	RemoteData       []*shared.RemoteData         `json:"remote_data"`
}

func (t Ticket) MarshalJSON() ([]byte, error) { return model.Marshal(&t) }

func (t *Ticket) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, t) }

// Overdue reports whether the ticket is past its due date at now and not
// closed.
func (t *Ticket) Overdue(now time.Time) bool {
	if t.DueDate == nil || !now.After(*t.DueDate) {
		return false
	}
	return t.Status == nil || !t.Status.Is(StatusClosed)
}

// TicketRequest is the writable subset of Ticket.
type TicketRequest struct {
	Name         *string                      `json:"name" validate:"required,max=255"`
	Assignees    []string                     `json:"assignees"`
	DueDate      *time.Time                   `json:"due_date"`
	Status       *enum.Open[TicketStatusEnum] `json:"status"`
	Description  *string                      `json:"description"`
	Collections  []string                     `json:"collections"`
	TicketType   *string                      `json:"ticket_type"`
	Account      *string                      `json:"account"`
	Contact      *string                      `json:"contact"`
	ParentTicket *string                      `json:"parent_ticket"`
	Tags         []string                     `json:"tags"`
	Priority     *enum.Open[PriorityEnum]     `json:"priority"`
}

func (r TicketRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *TicketRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// PatchedTicketRequest is a partial ticket update. Nothing is required.
type PatchedTicketRequest struct {
	Name        *string                      `json:"name" validate:"omitempty,max=255"`
	Assignees   []string                     `json:"assignees"`
	DueDate     *time.Time                   `json:"due_date"`
	Status      *enum.Open[TicketStatusEnum] `json:"status"`
	Description *string                      `json:"description"`
	Tags        []string                     `json:"tags"`
	Priority    *enum.Open[PriorityEnum]     `json:"priority"`
}

func (r PatchedTicketRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *PatchedTicketRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
