// Package ats is the applicant tracking category of the Merge API.
package ats

import (
	"time"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/value"
)

// Candidate is a person applying to jobs.
type Candidate struct {
	model.Base

	ID                *string                          `json:"id"`
	RemoteID          *string                          `json:"remote_id"`
	FirstName         *string                          `json:"first_name"`
	LastName          *string                          `json:"last_name"`
	Company           *string                          `json:"company"`
	Title             *string                          `json:"title"`
	RemoteCreatedAt   *time.Time                       `json:"remote_created_at"`
	RemoteUpdatedAt   *time.Time                       `json:"remote_updated_at"`
	LastInteractionAt *time.Time                       `json:"last_interaction_at"`
	IsPrivate         *bool                            `json:"is_private"`
	CanEmail          *bool                            `json:"can_email"`
	Locations         []string                         `json:"locations"`
	PhoneNumbers      []*PhoneNumber                   `json:"phone_numbers"`
	EmailAddresses    []*EmailAddress                  `json:"email_addresses"`
	Urls              []*Url                           `json:"urls"`
	Tags              []string                         `json:"tags"`
	Applications      []*model.Expandable[Application] `json:"applications"`
	Attachments       []string                         `json:"attachments"`
	RemoteWasDeleted  *bool                            `json:"remote_was_deleted"`
	CreatedAt         *time.Time                       `json:"created_at"`
	ModifiedAt        *time.Time                       `json:"modified_at"`
	FieldMappings     value.Value                      `json:"field_mappings"`
	RemoteData        []*shared.RemoteData             `json:"remote_data"`
}

func (c Candidate) MarshalJSON() ([]byte, error) { return model.Marshal(&c) }

func (c *Candidate) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, c) }

// PrimaryEmail returns the first work address, else the first address.
func (c *Candidate) PrimaryEmail() (string, bool) {
	var first string
	for _, e := range c.EmailAddresses {
		if e == nil || e.Value == nil {
			continue
		}
		if e.EmailAddressType != nil && e.EmailAddressType.Is(EmailWork) {
			return *e.Value, true
		}
		if first == "" {
			first = *e.Value
		}
	}
	return first, first != ""
}

// EmailAddress is one of a candidate's email addresses.
type EmailAddress struct {
	model.Base

	Value            *string                          `json:"value" validate:"omitempty,email"`
	EmailAddressType *enum.Open[EmailAddressTypeEnum] `json:"email_address_type"`
	CreatedAt        *time.Time                       `json:"created_at"`
	ModifiedAt       *time.Time                       `json:"modified_at"`
}

func (e EmailAddress) MarshalJSON() ([]byte, error) { return model.Marshal(&e) }

func (e *EmailAddress) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, e) }

// PhoneNumber is one of a candidate's phone numbers.
type PhoneNumber struct {
	model.Base

	Value           *string                         `json:"value"`
	PhoneNumberType *enum.Open[PhoneNumberTypeEnum] `json:"phone_number_type"`
	CreatedAt       *time.Time                      `json:"created_at"`
	ModifiedAt      *time.Time                      `json:"modified_at"`
}

func (p PhoneNumber) MarshalJSON() ([]byte, error) { return model.Marshal(&p) }

func (p *PhoneNumber) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, p) }

// Url is a link attached to a candidate.
type Url struct {
	model.Base

	Value      *string                 `json:"value" validate:"omitempty,url"`
	UrlType    *enum.Open[UrlTypeEnum] `json:"url_type"`
	CreatedAt  *time.Time              `json:"created_at"`
	ModifiedAt *time.Time              `json:"modified_at"`
}

func (u Url) MarshalJSON() ([]byte, error) { return model.Marshal(&u) }

func (u *Url) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, u) }

// Application is a candidate's application to a job.
type Application struct {
	model.Base

	ID               *string                      `json:"id"`
	RemoteID         *string                      `json:"remote_id"`
	Candidate        *model.Expandable[Candidate] `json:"candidate"`
	Job              *string                      `json:"job"`
	AppliedAt        *time.Time                   `json:"applied_at"`
	RejectedAt       *time.Time                   `json:"rejected_at"`
	Source           *string                      `json:"source"`
	CreditedTo       *string                      `json:"credited_to"`
	CurrentStage     *string                      `json:"current_stage"`
	RejectReason     *string                      `json:"reject_reason"`
	RemoteWasDeleted *bool                        `json:"remote_was_deleted"`
	CreatedAt        *time.Time                   `json:"created_at"`
	ModifiedAt       *time.Time                   `json:"modified_at"`
	RemoteData       []*shared.RemoteData         `json:"remote_data"`
}

func (a Application) MarshalJSON() ([]byte, error) { return model.Marshal(&a) }

func (a *Application) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, a) }

// Rejected reports whether the application has a rejection date.
func (a *Application) Rejected() bool { return a.RejectedAt != nil }

// CandidateRequest is the writable subset of Candidate.
type CandidateRequest struct {
	FirstName      *string                `json:"first_name" validate:"required"`
	LastName       *string                `json:"last_name" validate:"required"`
	Company        *string                `json:"company"`
	Title          *string                `json:"title"`
	IsPrivate      *bool                  `json:"is_private"`
	CanEmail       *bool                  `json:"can_email"`
	Locations      []string               `json:"locations"`
	PhoneNumbers   []*PhoneNumberRequest  `json:"phone_numbers" validate:"omitempty,dive"`
	EmailAddresses []*EmailAddressRequest `json:"email_addresses" validate:"omitempty,dive"`
	Urls           []*UrlRequest          `json:"urls" validate:"omitempty,dive"`
	Tags           []string               `json:"tags"`
	Applications   []string               `json:"applications"`
	Attachments    []string               `json:"attachments"`
}

func (r CandidateRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *CandidateRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// EmailAddressRequest is a writable email address.
type EmailAddressRequest struct {
	Value            *string                          `json:"value" validate:"required,email"`
	EmailAddressType *enum.Open[EmailAddressTypeEnum] `json:"email_address_type"`
}

func (r EmailAddressRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *EmailAddressRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// PhoneNumberRequest is a writable phone number.
type PhoneNumberRequest struct {
	Value           *string                         `json:"value" validate:"required"`
	PhoneNumberType *enum.Open[PhoneNumberTypeEnum] `json:"phone_number_type"`
}

func (r PhoneNumberRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *PhoneNumberRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// UrlRequest is a writable URL.
type UrlRequest struct {
	Value   *string                 `json:"value" validate:"required,url"`
	UrlType *enum.Open[UrlTypeEnum] `json:"url_type"`
}

func (r UrlRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *UrlRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
