package shared

import "github.com/merge-api/merge-go-client/enum"

// RoleEnum is the role of the user who triggered an audit event.
type RoleEnum string

const (
	RoleAdmin     RoleEnum = "ADMIN"
	RoleDeveloper RoleEnum = "DEVELOPER"
	RoleMember    RoleEnum = "MEMBER"
	RoleAPI       RoleEnum = "API"
	RoleSystem    RoleEnum = "SYSTEM"
	RoleMergeTeam RoleEnum = "MERGE_TEAM"
)

var roleMapping = enum.Define("RoleEnum",
	RoleAdmin, RoleDeveloper, RoleMember, RoleAPI, RoleSystem, RoleMergeTeam)

func (RoleEnum) Mapping() *enum.Mapping { return roleMapping }

// EventTypeEnum names the action recorded by an audit event.
type EventTypeEnum string

const (
	EventCreatedRemoteProductionAPIKey  EventTypeEnum = "CREATED_REMOTE_PRODUCTION_API_KEY"
	EventDeletedRemoteProductionAPIKey  EventTypeEnum = "DELETED_REMOTE_PRODUCTION_API_KEY"
	EventCreatedTestAPIKey              EventTypeEnum = "CREATED_TEST_API_KEY"
	EventDeletedTestAPIKey              EventTypeEnum = "DELETED_TEST_API_KEY"
	EventRegeneratedProductionAPIKey    EventTypeEnum = "REGENERATED_PRODUCTION_API_KEY"
	EventInvitedUser                    EventTypeEnum = "INVITED_USER"
	EventTwoFactorAuthEnabled           EventTypeEnum = "TWO_FACTOR_AUTH_ENABLED"
	EventTwoFactorAuthDisabled          EventTypeEnum = "TWO_FACTOR_AUTH_DISABLED"
	EventDeletedLinkedAccount           EventTypeEnum = "DELETED_LINKED_ACCOUNT"
	EventCreatedDestination             EventTypeEnum = "CREATED_DESTINATION"
	EventDeletedDestination             EventTypeEnum = "DELETED_DESTINATION"
	EventChangedScopes                  EventTypeEnum = "CHANGED_SCOPES"
	EventChangedPersonalInformation     EventTypeEnum = "CHANGED_PERSONAL_INFORMATION"
	EventChangedOrganizationSettings    EventTypeEnum = "CHANGED_ORGANIZATION_SETTINGS"
	EventEnabledIntegration             EventTypeEnum = "ENABLED_INTEGRATION"
	EventDisabledIntegration            EventTypeEnum = "DISABLED_INTEGRATION"
	EventEnabledCategory                EventTypeEnum = "ENABLED_CATEGORY"
	EventDisabledCategory               EventTypeEnum = "DISABLED_CATEGORY"
	EventChangedPassword                EventTypeEnum = "CHANGED_PASSWORD"
	EventResetPassword                  EventTypeEnum = "RESET_PASSWORD"
	EventEnabledRedactUnmappedData      EventTypeEnum = "ENABLED_REDACT_UNMAPPED_DATA_FOR_ORGANIZATION"
	EventDisabledRedactUnmappedData     EventTypeEnum = "DISABLED_REDACT_UNMAPPED_DATA_FOR_ORGANIZATION"
	EventCreatedIntegrationWideFieldMap EventTypeEnum = "CREATED_INTEGRATION_WIDE_FIELD_MAPPING"
	EventDeletedIntegrationWideFieldMap EventTypeEnum = "DELETED_INTEGRATION_WIDE_FIELD_MAPPING"
	EventForcedLinkedAccountResync      EventTypeEnum = "FORCED_LINKED_ACCOUNT_RESYNC"
	EventMutedIssue                     EventTypeEnum = "MUTED_ISSUE"
	EventGeneratedMagicLink             EventTypeEnum = "GENERATED_MAGIC_LINK"
)

var eventTypeMapping = enum.Define("EventTypeEnum",
	EventCreatedRemoteProductionAPIKey,
	EventDeletedRemoteProductionAPIKey,
	EventCreatedTestAPIKey,
	EventDeletedTestAPIKey,
	EventRegeneratedProductionAPIKey,
	EventInvitedUser,
	EventTwoFactorAuthEnabled,
	EventTwoFactorAuthDisabled,
	EventDeletedLinkedAccount,
	EventCreatedDestination,
	EventDeletedDestination,
	EventChangedScopes,
	EventChangedPersonalInformation,
	EventChangedOrganizationSettings,
	EventEnabledIntegration,
	EventDisabledIntegration,
	EventEnabledCategory,
	EventDisabledCategory,
	EventChangedPassword,
	EventResetPassword,
	EventEnabledRedactUnmappedData,
	EventDisabledRedactUnmappedData,
	EventCreatedIntegrationWideFieldMap,
	EventDeletedIntegrationWideFieldMap,
	EventForcedLinkedAccountResync,
	EventMutedIssue,
	EventGeneratedMagicLink,
)

func (EventTypeEnum) Mapping() *enum.Mapping { return eventTypeMapping }

// SyncStatusStatusEnum is the state of a model's sync.
type SyncStatusStatusEnum string

const (
	SyncSyncing         SyncStatusStatusEnum = "SYNCING"
	SyncDone            SyncStatusStatusEnum = "DONE"
	SyncFailed          SyncStatusStatusEnum = "FAILED"
	SyncDisabled        SyncStatusStatusEnum = "DISABLED"
	SyncPaused          SyncStatusStatusEnum = "PAUSED"
	SyncPartiallySynced SyncStatusStatusEnum = "PARTIALLY_SYNCED"
)

var syncStatusMapping = enum.Define("SyncStatusStatusEnum",
	SyncSyncing, SyncDone, SyncFailed, SyncDisabled, SyncPaused, SyncPartiallySynced)

func (SyncStatusStatusEnum) Mapping() *enum.Mapping { return syncStatusMapping }

// SelectiveSyncUsageEnum reports where selective sync settings apply.
type SelectiveSyncUsageEnum string

const (
	SelectiveSyncInNextSync SelectiveSyncUsageEnum = "IN_NEXT_SYNC"
	SelectiveSyncInLastSync SelectiveSyncUsageEnum = "IN_LAST_SYNC"
)

var selectiveSyncMapping = enum.Define("SelectiveSyncUsageEnum", SelectiveSyncInNextSync, SelectiveSyncInLastSync)

func (SelectiveSyncUsageEnum) Mapping() *enum.Mapping { return selectiveSyncMapping }

// CategoryEnum is a Merge API category. Unlike most enums it is closed.
type CategoryEnum string

const (
	CategoryHRIS        CategoryEnum = "hris"
	CategoryATS         CategoryEnum = "ats"
	CategoryAccounting  CategoryEnum = "accounting"
	CategoryTicketing   CategoryEnum = "ticketing"
	CategoryCRM         CategoryEnum = "crm"
	CategoryMarketing   CategoryEnum = "mktg"
	CategoryFileStorage CategoryEnum = "filestorage"
)

var categoryMapping = enum.Define("CategoryEnum",
	CategoryHRIS, CategoryATS, CategoryAccounting, CategoryTicketing, CategoryCRM, CategoryMarketing, CategoryFileStorage)

func (CategoryEnum) Mapping() *enum.Mapping { return categoryMapping }
