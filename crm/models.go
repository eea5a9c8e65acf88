// Package crm is the customer relationship management category of the
// Merge API.
package crm

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/value"
)

// Account is a company tracked by the CRM.
type Account struct {
	model.Base

	ID                *string              `json:"id"`
	RemoteID          *string              `json:"remote_id"`
	Owner             *string              `json:"owner"`
	Name              *string              `json:"name"`
	Description       *string              `json:"description"`
	Industry          *string              `json:"industry"`
	Website           *string              `json:"website" validate:"omitempty,url"`
	NumberOfEmployees *int                 `json:"number_of_employees" validate:"omitempty,min=0"`
	AnnualRevenue     *decimal.Decimal     `json:"annual_revenue"`
	Addresses         []*Address           `json:"addresses"`
	PhoneNumbers      []*PhoneNumber       `json:"phone_numbers"`
	LastActivityAt    *time.Time           `json:"last_activity_at"`
	RemoteCreatedAt   *time.Time           `json:"remote_created_at"`
	RemoteUpdatedAt   *time.Time           `json:"remote_updated_at"`
	RemoteWasDeleted  *bool                `json:"remote_was_deleted"`
	CreatedAt         *time.Time           `json:"created_at"`
	ModifiedAt        *time.Time           `json:"modified_at"`
	FieldMappings     value.Value          `json:"field_mappings"`
	RemoteData        []*shared.RemoteData `json:"remote_data"`
}

func (a Account) MarshalJSON() ([]byte, error) { return model.Marshal(&a) }

func (a *Account) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, a) }

// Contact is a person tracked by the CRM.
type Contact struct {
	model.Base

	ID               *string                    `json:"id"`
	RemoteID         *string                    `json:"remote_id"`
	FirstName        *string                    `json:"first_name"`
	LastName         *string                    `json:"last_name"`
	Account          *model.Expandable[Account] `json:"account"`
	Owner            *string                    `json:"owner"`
	Addresses        []*Address                 `json:"addresses"`
	EmailAddresses   []*EmailAddress            `json:"email_addresses"`
	PhoneNumbers     []*PhoneNumber             `json:"phone_numbers"`
	LastActivityAt   *time.Time                 `json:"last_activity_at"`
	RemoteCreatedAt  *time.Time                 `json:"remote_created_at"`
	RemoteWasDeleted *bool                      `json:"remote_was_deleted"`
	CreatedAt        *time.Time                 `json:"created_at"`
	ModifiedAt       *time.Time                 `json:"modified_at"`
	FieldMappings    value.Value                `json:"field_mappings"`
	RemoteData       []*shared.RemoteData       `json:"remote_data"`
}

func (c Contact) MarshalJSON() ([]byte, error) { return model.Marshal(&c) }

func (c *Contact) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, c) }

// Address is a postal address of an account or contact.
type Address struct {
	model.Base

	Street1     *string                     `json:"street_1"`
	Street2     *string                     `json:"street_2"`
	City        *string                     `json:"city"`
	State       *string                     `json:"state"`
	PostalCode  *string                     `json:"postal_code"`
	Country     *string                     `json:"country" validate:"omitempty,len=2"`
	AddressType *enum.Open[AddressTypeEnum] `json:"address_type"`
	CreatedAt   *time.Time                  `json:"created_at"`
	ModifiedAt  *time.Time                  `json:"modified_at"`
}

func (a Address) MarshalJSON() ([]byte, error) { return model.Marshal(&a) }

func (a *Address) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, a) }

// EmailAddress is a CRM email address. Its type is a free-form label.
type EmailAddress struct {
	model.Base

	EmailAddress     *string    `json:"email_address" validate:"omitempty,email"`
	EmailAddressType *string    `json:"email_address_type"`
	CreatedAt        *time.Time `json:"created_at"`
	ModifiedAt       *time.Time `json:"modified_at"`
}

func (e EmailAddress) MarshalJSON() ([]byte, error) { return model.Marshal(&e) }

func (e *EmailAddress) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, e) }

// PhoneNumber is a CRM phone number. Its type is a free-form label.
type PhoneNumber struct {
	model.Base

	PhoneNumber     *string    `json:"phone_number"`
	PhoneNumberType *string    `json:"phone_number_type"`
	CreatedAt       *time.Time `json:"created_at"`
	ModifiedAt      *time.Time `json:"modified_at"`
}

func (p PhoneNumber) MarshalJSON() ([]byte, error) { return model.Marshal(&p) }

func (p *PhoneNumber) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, p) }

// ContactRequest is the writable subset of Contact.
type ContactRequest struct {
	FirstName      *string                `json:"first_name"`
	LastName       *string                `json:"last_name"`
	Account        *string                `json:"account"`
	Owner          *string                `json:"owner"`
	EmailAddresses []*EmailAddressRequest `json:"email_addresses" validate:"omitempty,dive"`
	PhoneNumbers   []*PhoneNumberRequest  `json:"phone_numbers" validate:"omitempty,dive"`
}

func (r ContactRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *ContactRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// EmailAddressRequest is a writable email address.
type EmailAddressRequest struct {
	EmailAddress     *string `json:"email_address" validate:"required,email"`
	EmailAddressType *string `json:"email_address_type"`
}

func (r EmailAddressRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *EmailAddressRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// PhoneNumberRequest is a writable phone number.
type PhoneNumberRequest struct {
	PhoneNumber     *string `json:"phone_number" validate:"required"`
	PhoneNumberType *string `json:"phone_number_type"`
}

func (r PhoneNumberRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *PhoneNumberRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
