// Package hris is the HR, payroll and directory category of the Merge API.
package hris

import (
	"time"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/value"
)

// Employee is an employee of the linked account's company.
type Employee struct {
	model.Base

	ID                *string                          `json:"id"`
	RemoteID          *string                          `json:"remote_id"`
	EmployeeNumber    *string                          `json:"employee_number"`
	Company           *model.Expandable[Company]       `json:"company"`
	FirstName         *string                          `json:"first_name"`
	LastName          *string                          `json:"last_name"`
	PreferredName     *string                          `json:"preferred_name"`
	DisplayFullName   *string                          `json:"display_full_name"`
	Username          *string                          `json:"username"`
	WorkEmail         *string                          `json:"work_email" validate:"omitempty,email"`
	PersonalEmail     *string                          `json:"personal_email" validate:"omitempty,email"`
	MobilePhoneNumber *string                          `json:"mobile_phone_number"`
	Groups            []string                         `json:"groups"`
	Manager           *model.Expandable[Employee]      `json:"manager"`
	Team              *string                          `json:"team"`
	PayGroup          *string                          `json:"pay_group"`
	SSN               *string                          `json:"ssn"`
	Gender            *enum.Open[GenderEnum]           `json:"gender"`
	Ethnicity         *enum.Open[EthnicityEnum]        `json:"ethnicity"`
	MaritalStatus     *enum.Open[MaritalStatusEnum]    `json:"marital_status"`
	DateOfBirth       *time.Time                       `json:"date_of_birth"`
	HireDate          *time.Time                       `json:"hire_date"`
	StartDate         *time.Time                       `json:"start_date"`
	RemoteCreatedAt   *time.Time                       `json:"remote_created_at"`
	EmploymentStatus  *enum.Open[EmploymentStatusEnum] `json:"employment_status"`
	TerminationDate   *time.Time                       `json:"termination_date"`
	Avatar            *string                          `json:"avatar" validate:"omitempty,url"`
	CustomFields      value.Value                      `json:"custom_fields"`
	RemoteWasDeleted  *bool                            `json:"remote_was_deleted"`
	CreatedAt         *time.Time                       `json:"created_at"`
	ModifiedAt        *time.Time                       `json:"modified_at"`
	FieldMappings     value.Value                      `json:"field_mappings"`
	RemoteData        []*shared.RemoteData             `json:"remote_data"`
}

func (e Employee) MarshalJSON() ([]byte, error) { return model.Marshal(&e) }

func (e *Employee) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, e) }

// FullName returns DisplayFullName, or the first and last name joined.
func (e *Employee) FullName() string {
	if e.DisplayFullName != nil && *e.DisplayFullName != "" {
		return *e.DisplayFullName
	}
	var name string
	if e.FirstName != nil {
		name = *e.FirstName
	}
	if e.LastName != nil {
		if name != "" {
			name += " "
		}
		name += *e.LastName
	}
	return name
}

// Company is a company an employee belongs to.
type Company struct {
	model.Base

	ID               *string              `json:"id"`
	RemoteID         *string              `json:"remote_id"`
	LegalName        *string              `json:"legal_name"`
	DisplayName      *string              `json:"display_name"`
	EINs             []string             `json:"eins"`
	RemoteWasDeleted *bool                `json:"remote_was_deleted"`
	CreatedAt        *time.Time           `json:"created_at"`
	ModifiedAt       *time.Time           `json:"modified_at"`
	RemoteData       []*shared.RemoteData `json:"remote_data"`
}

func (c Company) MarshalJSON() ([]byte, error) { return model.Marshal(&c) }

func (c *Company) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, c) }

// EmployeeRequest is the writable subset of Employee.
type EmployeeRequest struct {
	EmployeeNumber    *string                          `json:"employee_number"`
	Company           *string                          `json:"company"`
	FirstName         *string                          `json:"first_name" validate:"required"`
	LastName          *string                          `json:"last_name" validate:"required"`
	PreferredName     *string                          `json:"preferred_name"`
	Username          *string                          `json:"username"`
	WorkEmail         *string                          `json:"work_email" validate:"omitempty,email"`
	PersonalEmail     *string                          `json:"personal_email" validate:"omitempty,email"`
	MobilePhoneNumber *string                          `json:"mobile_phone_number"`
	Manager           *string                          `json:"manager"`
	Gender            *enum.Open[GenderEnum]           `json:"gender"`
	EmploymentStatus  *enum.Open[EmploymentStatusEnum] `json:"employment_status"`
	DateOfBirth       *time.Time                       `json:"date_of_birth"`
	HireDate          *time.Time                       `json:"hire_date"`
	StartDate         *time.Time                       `json:"start_date"`
}

func (r EmployeeRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *EmployeeRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
