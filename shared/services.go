package shared

import (
	"context"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
)

// Services are the endpoints shared by every category.
type Services struct {
	AuditTrail     *AuditTrailService
	SyncStatus     *SyncStatusService
	AccountDetails *AccountDetailsService
}

// NewServices binds the shared endpoints to category, e.g. "hris".
func NewServices(c *merge.Client, category CategoryEnum) *Services {
	cat := string(category)
	return &Services{
		AuditTrail:     &AuditTrailService{r: merge.NewResource[AuditLogEvent](c, cat, "audit-trail")},
		SyncStatus:     &SyncStatusService{r: merge.NewResource[SyncStatus](c, cat, "sync-status")},
		AccountDetails: &AccountDetailsService{r: merge.NewResource[AccountDetails](c, cat, "account-details")},
	}
}

// AuditTrailService lists audit log events.
type AuditTrailService struct {
	r *merge.Resource[AuditLogEvent]
}

// List returns one page of audit log events.
func (s *AuditTrailService) List(ctx context.Context, params *AuditTrailListParams, opts ...merge.RequestOption) (*model.Page[AuditLogEvent], error) {
	return s.r.List(ctx, params, opts...)
}

// ListAll returns every audit log event matching params.
func (s *AuditTrailService) ListAll(ctx context.Context, params *AuditTrailListParams, opts ...merge.RequestOption) ([]*AuditLogEvent, error) {
	return s.r.ListAll(ctx, params, opts...)
}

// SyncStatusService reports per-model sync state.
type SyncStatusService struct {
	r *merge.Resource[SyncStatus]
}

// List returns one page of sync statuses.
func (s *SyncStatusService) List(ctx context.Context, params *SyncStatusListParams, opts ...merge.RequestOption) (*model.Page[SyncStatus], error) {
	return s.r.List(ctx, params, opts...)
}

// AccountDetailsService describes the linked account.
type AccountDetailsService struct {
	r *merge.Resource[AccountDetails]
}

// Retrieve returns the details of the linked account selected by the
// account token.
func (s *AccountDetailsService) Retrieve(ctx context.Context, opts ...merge.RequestOption) (*AccountDetails, error) {
	return s.r.Get(ctx, nil, opts...)
}
