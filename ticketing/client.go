package ticketing

import (
	"context"
	"sort"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
)

// Client groups the ticketing services.
type Client struct {
	*shared.Services

	Tickets *TicketsService
}

// New returns the ticketing services of c.
func New(c *merge.Client) *Client {
	return &Client{
		Services: shared.NewServices(c, shared.CategoryTicketing),
		Tickets:  &TicketsService{r: merge.NewResource[Ticket](c, "ticketing", "tickets")},
	}
}

// TicketsService reads and writes tickets.
type TicketsService struct {
	r *merge.Resource[Ticket]
}

func (s *TicketsService) List(ctx context.Context, params *TicketListParams, opts ...merge.RequestOption) (*model.Page[Ticket], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *TicketsService) Pager(params *TicketListParams, opts ...merge.RequestOption) *merge.Pager[Ticket] {
	return s.r.Pager(params, opts...)
}

func (s *TicketsService) ListAll(ctx context.Context, params *TicketListParams, opts ...merge.RequestOption) ([]*Ticket, error) {
	return s.r.ListAll(ctx, params, opts...)
}

// Triage returns every ticket matching params, most urgent first. Tickets of
// equal priority keep their API order.
func (s *TicketsService) Triage(ctx context.Context, params *TicketListParams, opts ...merge.RequestOption) ([]*Ticket, error) {
	tickets, err := s.ListAll(ctx, params, opts...)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tickets, func(i, j int) bool {
		return Rank(tickets[i].Priority) < Rank(tickets[j].Priority)
	})
	return tickets, nil
}

func (s *TicketsService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Ticket, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

func (s *TicketsService) Create(ctx context.Context, body *TicketRequest, opts ...merge.RequestOption) (*model.Response[Ticket], error) {
	return s.r.Create(ctx, &model.WriteRequest[TicketRequest]{Model: body}, opts...)
}

func (s *TicketsService) PartialUpdate(ctx context.Context, id string, body *PatchedTicketRequest, opts ...merge.RequestOption) (*model.Response[Ticket], error) {
	return s.r.PartialUpdate(ctx, id, &model.WriteRequest[PatchedTicketRequest]{Model: body}, opts...)
}
