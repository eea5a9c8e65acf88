package accounting

import (
	"context"

	"github.com/shopspring/decimal"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
)

// Client groups the accounting services.
type Client struct {
	*shared.Services

	Invoices *InvoicesService
}

// New returns the accounting services of c.
func New(c *merge.Client) *Client {
	return &Client{
		Services: shared.NewServices(c, shared.CategoryAccounting),
		Invoices: &InvoicesService{r: merge.NewResource[Invoice](c, "accounting", "invoices")},
	}
}

// InvoicesService reads and writes invoices.
type InvoicesService struct {
	r *merge.Resource[Invoice]
}

func (s *InvoicesService) List(ctx context.Context, params *InvoiceListParams, opts ...merge.RequestOption) (*model.Page[Invoice], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *InvoicesService) ListAll(ctx context.Context, params *InvoiceListParams, opts ...merge.RequestOption) ([]*Invoice, error) {
	return s.r.ListAll(ctx, params, opts...)
}

func (s *InvoicesService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Invoice, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

func (s *InvoicesService) Create(ctx context.Context, body *InvoiceRequest, opts ...merge.RequestOption) (*model.Response[Invoice], error) {
	return s.r.Create(ctx, &model.WriteRequest[InvoiceRequest]{Model: body}, opts...)
}

// Outstanding sums the outstanding balance of every invoice matching params,
// per currency wire value. Invoices without a currency are keyed "".
func (s *InvoicesService) Outstanding(ctx context.Context, params *InvoiceListParams, opts ...merge.RequestOption) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	for inv, err := range s.r.Pager(params, opts...).All(ctx) {
		if err != nil {
			return nil, err
		}
		var cur string
		if inv.Currency != nil {
			cur = inv.Currency.String()
		}
		totals[cur] = totals[cur].Add(inv.Outstanding())
	}
	return totals, nil
}
