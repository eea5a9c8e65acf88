package accounting

import "github.com/merge-api/merge-go-client/enum"

// InvoiceStatusEnum is the payment state of an invoice.
type InvoiceStatusEnum string

const (
	InvoicePaid          InvoiceStatusEnum = "PAID"
	InvoiceDraft         InvoiceStatusEnum = "DRAFT"
	InvoiceSubmitted     InvoiceStatusEnum = "SUBMITTED"
	InvoicePartiallyPaid InvoiceStatusEnum = "PARTIALLY_PAID"
	InvoiceOpen          InvoiceStatusEnum = "OPEN"
	InvoiceVoid          InvoiceStatusEnum = "VOID"
)

var invoiceStatusMapping = enum.Define("InvoiceStatusEnum",
	InvoicePaid, InvoiceDraft, InvoiceSubmitted, InvoicePartiallyPaid, InvoiceOpen, InvoiceVoid)

func (InvoiceStatusEnum) Mapping() *enum.Mapping { return invoiceStatusMapping }

// InvoiceTypeEnum tells receivables from payables.
type InvoiceTypeEnum string

const (
	AccountsReceivable InvoiceTypeEnum = "ACCOUNTS_RECEIVABLE"
	AccountsPayable    InvoiceTypeEnum = "ACCOUNTS_PAYABLE"
)

var invoiceTypeMapping = enum.Define("InvoiceTypeEnum", AccountsReceivable, AccountsPayable)

func (InvoiceTypeEnum) Mapping() *enum.Mapping { return invoiceTypeMapping }

// CurrencyEnum is an ISO 4217 currency code. Only the common codes are
// declared; any other code is kept as a raw value.
type CurrencyEnum string

const (
	CurrencyUSD CurrencyEnum = "USD"
	CurrencyEUR CurrencyEnum = "EUR"
	CurrencyGBP CurrencyEnum = "GBP"
	CurrencyJPY CurrencyEnum = "JPY"
	CurrencyCAD CurrencyEnum = "CAD"
	CurrencyAUD CurrencyEnum = "AUD"
	CurrencyCHF CurrencyEnum = "CHF"
	CurrencyINR CurrencyEnum = "INR"
)

var currencyMapping = enum.Define("CurrencyEnum",
	CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyCAD, CurrencyAUD, CurrencyCHF, CurrencyINR)

func (CurrencyEnum) Mapping() *enum.Mapping { return currencyMapping }
