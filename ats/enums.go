package ats

import "github.com/merge-api/merge-go-client/enum"

// EmailAddressTypeEnum classifies a candidate email address.
type EmailAddressTypeEnum string

const (
	EmailPersonal EmailAddressTypeEnum = "PERSONAL"
	EmailWork     EmailAddressTypeEnum = "WORK"
	EmailOther    EmailAddressTypeEnum = "OTHER"
)

var emailAddressTypeMapping = enum.Define("EmailAddressTypeEnum", EmailPersonal, EmailWork, EmailOther)

func (EmailAddressTypeEnum) Mapping() *enum.Mapping { return emailAddressTypeMapping }

// PhoneNumberTypeEnum classifies a candidate phone number.
type PhoneNumberTypeEnum string

const (
	PhoneHome   PhoneNumberTypeEnum = "HOME"
	PhoneWork   PhoneNumberTypeEnum = "WORK"
	PhoneMobile PhoneNumberTypeEnum = "MOBILE"
	PhoneSkype  PhoneNumberTypeEnum = "SKYPE"
	PhoneOther  PhoneNumberTypeEnum = "OTHER"
)

var phoneNumberTypeMapping = enum.Define("PhoneNumberTypeEnum", PhoneHome, PhoneWork, PhoneMobile, PhoneSkype, PhoneOther)

func (PhoneNumberTypeEnum) Mapping() *enum.Mapping { return phoneNumberTypeMapping }

// UrlTypeEnum classifies a candidate URL.
type UrlTypeEnum string

const (
	UrlPersonal   UrlTypeEnum = "PERSONAL"
	UrlCompany    UrlTypeEnum = "COMPANY"
	UrlPortfolio  UrlTypeEnum = "PORTFOLIO"
	UrlBlog       UrlTypeEnum = "BLOG"
	UrlSocial     UrlTypeEnum = "SOCIAL_MEDIA"
	UrlOther      UrlTypeEnum = "OTHER"
	UrlJobPosting UrlTypeEnum = "JOB_POSTING"
)

var urlTypeMapping = enum.Define("UrlTypeEnum",
	UrlPersonal, UrlCompany, UrlPortfolio, UrlBlog, UrlSocial, UrlOther, UrlJobPosting)

func (UrlTypeEnum) Mapping() *enum.Mapping { return urlTypeMapping }
