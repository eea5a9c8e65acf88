package ticketing

import (
	"slices"

	"github.com/merge-api/merge-go-client/enum"
)

// TicketStatusEnum is the workflow state of a ticket.
type TicketStatusEnum string

const (
	StatusOpen       TicketStatusEnum = "OPEN"
	StatusClosed     TicketStatusEnum = "CLOSED"
	StatusInProgress TicketStatusEnum = "IN_PROGRESS"
	StatusOnHold     TicketStatusEnum = "ON_HOLD"
)

var ticketStatusMapping = enum.Define("TicketStatusEnum", StatusOpen, StatusClosed, StatusInProgress, StatusOnHold)

func (TicketStatusEnum) Mapping() *enum.Mapping { return ticketStatusMapping }

// PriorityEnum is the urgency of a ticket.
type PriorityEnum string

const (
	PriorityUrgent PriorityEnum = "URGENT"
	PriorityHigh   PriorityEnum = "HIGH"
	PriorityNormal PriorityEnum = "NORMAL"
	PriorityLow    PriorityEnum = "LOW"
)

var priorityMapping = enum.Define("PriorityEnum", PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow)

func (PriorityEnum) Mapping() *enum.Mapping { return priorityMapping }

// Rank orders priorities from URGENT (0) to LOW (3). Unknown priorities rank
// after LOW.
func Rank(p *enum.Open[PriorityEnum]) int {
	wires := priorityMapping.Wires()
	if p != nil {
		if known, ok := p.Known(); ok {
			return slices.Index(wires, string(known))
		}
	}
	return len(wires)
}
