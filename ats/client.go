package ats

import (
	"context"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
)

// Client groups the ATS services.
type Client struct {
	*shared.Services

	Candidates   *CandidatesService
	Applications *ApplicationsService
}

// New returns the ATS services of c.
func New(c *merge.Client) *Client {
	return &Client{
		Services:     shared.NewServices(c, shared.CategoryATS),
		Candidates:   &CandidatesService{r: merge.NewResource[Candidate](c, "ats", "candidates")},
		Applications: &ApplicationsService{r: merge.NewResource[Application](c, "ats", "applications")},
	}
}

// CandidatesService reads and writes candidates.
type CandidatesService struct {
	r *merge.Resource[Candidate]
}

func (s *CandidatesService) List(ctx context.Context, params *CandidateListParams, opts ...merge.RequestOption) (*model.Page[Candidate], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *CandidatesService) ListAll(ctx context.Context, params *CandidateListParams, opts ...merge.RequestOption) ([]*Candidate, error) {
	return s.r.ListAll(ctx, params, opts...)
}

func (s *CandidatesService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Candidate, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

// Create creates a candidate on behalf of the third-party user remoteUserID,
// which most ATS providers require for writes.
func (s *CandidatesService) Create(ctx context.Context, body *CandidateRequest, remoteUserID string, opts ...merge.RequestOption) (*model.Response[Candidate], error) {
	if remoteUserID == "" {
		return nil, merge.NewError(merge.CodeInvalidArgument, "remote_user_id is required")
	}
	opts = append(opts, merge.WithBodyParam("remote_user_id", remoteUserID))
	return s.r.Create(ctx, &model.WriteRequest[CandidateRequest]{Model: body}, opts...)
}

// ApplicationsService reads applications.
type ApplicationsService struct {
	r *merge.Resource[Application]
}

func (s *ApplicationsService) List(ctx context.Context, params *ApplicationListParams, opts ...merge.RequestOption) (*model.Page[Application], error) {
	return s.r.List(ctx, params, opts...)
}

// Pager walks every page of applications matching params.
func (s *ApplicationsService) Pager(params *ApplicationListParams, opts ...merge.RequestOption) *merge.Pager[Application] {
	return s.r.Pager(params, opts...)
}

func (s *ApplicationsService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Application, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}
