// Package shared holds the models and services every Merge category has:
// audit trail, sync status and account details.
package shared

import (
	"time"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/value"
)

// AuditLogEvent is one entry of the organization's audit trail.
type AuditLogEvent struct {
	model.Base

	ID               *string                   `json:"id"`
	UserName         *string                   `json:"user_name"`
	UserEmail        *string                   `json:"user_email" validate:"omitempty,email"`
	Role             *enum.Open[RoleEnum]      `json:"role" validate:"required"`
	IPAddress        *string                   `json:"ip_address" validate:"required"`
	EventType        *enum.Open[EventTypeEnum] `json:"event_type" validate:"required"`
	EventDescription *string                   `json:"event_description" validate:"required"`
	CreatedAt        *time.Time                `json:"created_at"`
}

func (e AuditLogEvent) MarshalJSON() ([]byte, error) { return model.Marshal(&e) }

func (e *AuditLogEvent) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, e) }

// SyncStatus reports the sync state of one common model for a linked account.
type SyncStatus struct {
	model.Base

	ModelName                        *string                            `json:"model_name" validate:"required"`
	ModelID                          *string                            `json:"model_id" validate:"required"`
	LastSyncStart                    *time.Time                         `json:"last_sync_start"`
	NextSyncStart                    *time.Time                         `json:"next_sync_start"`
	LastSyncResult                   *enum.Open[SyncStatusStatusEnum]   `json:"last_sync_result"`
	LastSyncFinished                 *time.Time                         `json:"last_sync_finished"`
	Status                           *enum.Open[SyncStatusStatusEnum]   `json:"status" validate:"required"`
	IsInitialSync                    *bool                              `json:"is_initial_sync" validate:"required"`
	SelectiveSyncConfigurationsUsage *enum.Open[SelectiveSyncUsageEnum] `json:"selective_sync_configurations_usage"`
}

func (s SyncStatus) MarshalJSON() ([]byte, error) { return model.Marshal(&s) }

func (s *SyncStatus) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, s) }

// AccountDetails describes the linked account the token belongs to.
type AccountDetails struct {
	model.Base

	ID                      *string       `json:"id"`
	Integration             *string       `json:"integration"`
	IntegrationSlug         *string       `json:"integration_slug"`
	Category                *CategoryEnum `json:"category"`
	EndUserOriginID         *string       `json:"end_user_origin_id"`
	EndUserOrganizationName *string       `json:"end_user_organization_name"`
	EndUserEmailAddress     *string       `json:"end_user_email_address" validate:"omitempty,email"`
	Status                  *string       `json:"status"`
	WebhookListenerURL      *string       `json:"webhook_listener_url"`
	IsDuplicate             *bool         `json:"is_duplicate"`
	AccountType             *string       `json:"account_type"`
	CompletedAt             *time.Time    `json:"completed_at"`
}

func (a AccountDetails) MarshalJSON() ([]byte, error) { return model.Marshal(&a) }

func (a *AccountDetails) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, a) }

// RemoteData is an unmapped payload from the third-party system, returned
// when include_remote_data is set.
type RemoteData struct {
	model.Base

	Path *string     `json:"path" validate:"required"`
	Data value.Value `json:"data"`
}

func (r RemoteData) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *RemoteData) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
