package hris

import "github.com/merge-api/merge-go-client/enum"

// EmploymentStatusEnum is an employee's employment status.
type EmploymentStatusEnum string

const (
	EmploymentStatusActive   EmploymentStatusEnum = "ACTIVE"
	EmploymentStatusPending  EmploymentStatusEnum = "PENDING"
	EmploymentStatusInactive EmploymentStatusEnum = "INACTIVE"
)

var employmentStatusMapping = enum.Define("EmploymentStatusEnum",
	EmploymentStatusActive, EmploymentStatusPending, EmploymentStatusInactive)

func (EmploymentStatusEnum) Mapping() *enum.Mapping { return employmentStatusMapping }

// GenderEnum is an employee's gender.
type GenderEnum string

const (
	GenderMale                GenderEnum = "MALE"
	GenderFemale              GenderEnum = "FEMALE"
	GenderNonBinary           GenderEnum = "NON-BINARY"
	GenderOther               GenderEnum = "OTHER"
	GenderPreferNotToDisclose GenderEnum = "PREFER_NOT_TO_DISCLOSE"
)

var genderMapping = enum.Define("GenderEnum",
	GenderMale, GenderFemale, GenderNonBinary, GenderOther, GenderPreferNotToDisclose)

func (GenderEnum) Mapping() *enum.Mapping { return genderMapping }

// EthnicityEnum is an employee's ethnicity.
type EthnicityEnum string

const (
	EthnicityAmericanIndianOrAlaskaNative EthnicityEnum = "AMERICAN_INDIAN_OR_ALASKA_NATIVE"
	EthnicityAsianOrIndianSubcontinent    EthnicityEnum = "ASIAN_OR_INDIAN_SUBCONTINENT"
	EthnicityBlackOrAfricanAmerican       EthnicityEnum = "BLACK_OR_AFRICAN_AMERICAN"
	EthnicityHispanicOrLatino             EthnicityEnum = "HISPANIC_OR_LATINO"
	EthnicityNativeHawaiianOrPacific      EthnicityEnum = "NATIVE_HAWAIIAN_OR_OTHER_PACIFIC_ISLANDER"
	EthnicityTwoOrMoreRaces               EthnicityEnum = "TWO_OR_MORE_RACES"
	EthnicityWhite                        EthnicityEnum = "WHITE"
	EthnicityPreferNotToDisclose          EthnicityEnum = "PREFER_NOT_TO_DISCLOSE"
)

var ethnicityMapping = enum.Define("EthnicityEnum",
	EthnicityAmericanIndianOrAlaskaNative,
	EthnicityAsianOrIndianSubcontinent,
	EthnicityBlackOrAfricanAmerican,
	EthnicityHispanicOrLatino,
	EthnicityNativeHawaiianOrPacific,
	EthnicityTwoOrMoreRaces,
	EthnicityWhite,
	EthnicityPreferNotToDisclose,
)

func (EthnicityEnum) Mapping() *enum.Mapping { return ethnicityMapping }

// MaritalStatusEnum is an employee's marital status.
type MaritalStatusEnum string

const (
	MaritalStatusSingle                  MaritalStatusEnum = "SINGLE"
	MaritalStatusMarriedFilingJointly    MaritalStatusEnum = "MARRIED_FILING_JOINTLY"
	MaritalStatusMarriedFilingSeparately MaritalStatusEnum = "MARRIED_FILING_SEPARATELY"
	MaritalStatusHeadOfHousehold         MaritalStatusEnum = "HEAD_OF_HOUSEHOLD"
	MaritalStatusQualifyingWidower       MaritalStatusEnum = "QUALIFYING_WIDOW_OR_WIDOWER_WITH_DEPENDENT_CHILD"
)

var maritalStatusMapping = enum.Define("MaritalStatusEnum",
	MaritalStatusSingle,
	MaritalStatusMarriedFilingJointly,
	MaritalStatusMarriedFilingSeparately,
	MaritalStatusHeadOfHousehold,
	MaritalStatusQualifyingWidower,
)

func (MaritalStatusEnum) Mapping() *enum.Mapping { return maritalStatusMapping }
