package hris

import "github.com/merge-api/merge-go-client/shared"

// EmployeeListParams filters the employee list.
type EmployeeListParams struct {
	shared.ListParams

	CompanyID              string `url:"company_id,omitempty"`
	EmploymentStatus       string `url:"employment_status,omitempty"`
	FirstName              string `url:"first_name,omitempty"`
	LastName               string `url:"last_name,omitempty"`
	WorkEmail              string `url:"work_email,omitempty" validate:"omitempty,email"`
	PersonalEmail          string `url:"personal_email,omitempty" validate:"omitempty,email"`
	ManagerID              string `url:"manager_id,omitempty"`
	TeamID                 string `url:"team_id,omitempty"`
	PayGroupID             string `url:"pay_group_id,omitempty"`
	IncludeSensitiveFields *bool  `url:"include_sensitive_fields,omitempty"`
}

// EmployeeRetrieveParams adjusts a single employee lookup.
type EmployeeRetrieveParams struct {
	shared.RetrieveParams

	IncludeSensitiveFields *bool `url:"include_sensitive_fields,omitempty"`
}

// CompanyListParams filters the company list.
type CompanyListParams struct {
	shared.ListParams
}
