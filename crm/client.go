package crm

import (
	"context"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
)

// Client groups the CRM services.
type Client struct {
	*shared.Services

	Contacts *ContactsService
	Accounts *AccountsService
}

// New returns the CRM services of c.
func New(c *merge.Client) *Client {
	return &Client{
		Services: shared.NewServices(c, shared.CategoryCRM),
		Contacts: &ContactsService{r: merge.NewResource[Contact](c, "crm", "contacts")},
		Accounts: &AccountsService{r: merge.NewResource[Account](c, "crm", "accounts")},
	}
}

type ContactsService struct {
	r *merge.Resource[Contact]
}

func (s *ContactsService) List(ctx context.Context, params *ContactListParams, opts ...merge.RequestOption) (*model.Page[Contact], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *ContactsService) ListAll(ctx context.Context, params *ContactListParams, opts ...merge.RequestOption) ([]*Contact, error) {
	return s.r.ListAll(ctx, params, opts...)
}

func (s *ContactsService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Contact, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

func (s *ContactsService) Create(ctx context.Context, body *ContactRequest, opts ...merge.RequestOption) (*model.Response[Contact], error) {
	return s.r.Create(ctx, &model.WriteRequest[ContactRequest]{Model: body}, opts...)
}

// PartialUpdate patches the contact id.
func (s *ContactsService) PartialUpdate(ctx context.Context, id string, body *ContactRequest, opts ...merge.RequestOption) (*model.Response[Contact], error) {
	return s.r.PartialUpdate(ctx, id, &model.WriteRequest[ContactRequest]{Model: body}, opts...)
}

type AccountsService struct {
	r *merge.Resource[Account]
}

func (s *AccountsService) List(ctx context.Context, params *AccountListParams, opts ...merge.RequestOption) (*model.Page[Account], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *AccountsService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Account, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

func (s *AccountsService) RetrieveMany(ctx context.Context, ids []string, params *shared.RetrieveParams, opts ...merge.RequestOption) ([]*Account, error) {
	return s.r.RetrieveMany(ctx, ids, params, opts...)
}
