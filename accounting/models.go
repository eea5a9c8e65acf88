// Package accounting is the accounting category of the Merge API.
//
// Monetary amounts are decimal.Decimal so that sums and comparisons are exact.
package accounting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/value"
)

// Invoice is a bill sent to or received from a contact.
type Invoice struct {
	model.Base

	ID               *string                       `json:"id"`
	RemoteID         *string                       `json:"remote_id"`
	Type             *enum.Open[InvoiceTypeEnum]   `json:"type"`
	Contact          *string                       `json:"contact"`
	Number           *string                       `json:"number"`
	IssueDate        *time.Time                    `json:"issue_date"`
	DueDate          *time.Time                    `json:"due_date"`
	PaidOnDate       *time.Time                    `json:"paid_on_date"`
	Memo             *string                       `json:"memo"`
	Company          *string                       `json:"company"`
	Currency         *enum.Open[CurrencyEnum]      `json:"currency"`
	ExchangeRate     *decimal.Decimal              `json:"exchange_rate"`
	TotalDiscount    *decimal.Decimal              `json:"total_discount"`
	SubTotal         *decimal.Decimal              `json:"sub_total"`
	Status           *enum.Open[InvoiceStatusEnum] `json:"status"`
	TotalTaxAmount   *decimal.Decimal              `json:"total_tax_amount"`
	TotalAmount      *decimal.Decimal              `json:"total_amount"`
	Balance          *decimal.Decimal              `json:"balance"`
	Payments         []string                      `json:"payments"`
	LineItems        []*InvoiceLineItem            `json:"line_items"`
	RemoteUpdatedAt  *time.Time                    `json:"remote_updated_at"`
	RemoteWasDeleted *bool                         `json:"remote_was_deleted"`
	CreatedAt        *time.Time                    `json:"created_at"`
	ModifiedAt       *time.Time                    `json:"modified_at"`
	FieldMappings    value.Value                   `json:"field_mappings"`
	RemoteData       []*shared.RemoteData          `json:"remote_data"`
}

func (i Invoice) MarshalJSON() ([]byte, error) { return model.Marshal(&i) }

func (i *Invoice) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, i) }

// LineItemTotal sums the line item totals. A line without total_amount
// contributes unit_price * quantity.
func (i *Invoice) LineItemTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range i.LineItems {
		if li != nil {
			sum = sum.Add(li.Amount())
		}
	}
	return sum
}

// Outstanding returns Balance, or TotalAmount when the provider omits the
// balance of an unpaid invoice.
func (i *Invoice) Outstanding() decimal.Decimal {
	switch {
	case i.Balance != nil:
		return *i.Balance
	case i.Status != nil && i.Status.Is(InvoicePaid):
		return decimal.Zero
	case i.TotalAmount != nil:
		return *i.TotalAmount
	}
	return decimal.Zero
}

// InvoiceLineItem is one line of an invoice.
type InvoiceLineItem struct {
	model.Base

	ID                 *string                  `json:"id"`
	RemoteID           *string                  `json:"remote_id"`
	Description        *string                  `json:"description"`
	UnitPrice          *decimal.Decimal         `json:"unit_price"`
	Quantity           *decimal.Decimal         `json:"quantity"`
	TotalAmount        *decimal.Decimal         `json:"total_amount"`
	Currency           *enum.Open[CurrencyEnum] `json:"currency"`
	ExchangeRate       *decimal.Decimal         `json:"exchange_rate"`
	Item               *string                  `json:"item"`
	Account            *string                  `json:"account"`
	TrackingCategories []string                 `json:"tracking_categories"`
	Company            *string                  `json:"company"`
	CreatedAt          *time.Time               `json:"created_at"`
	ModifiedAt         *time.Time               `json:"modified_at"`
}

func (li InvoiceLineItem) MarshalJSON() ([]byte, error) { return model.Marshal(&li) }

func (li *InvoiceLineItem) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, li) }

// Amount returns TotalAmount, or UnitPrice * Quantity when the total is absent.
func (li *InvoiceLineItem) Amount() decimal.Decimal {
	if li.TotalAmount != nil {
		return *li.TotalAmount
	}
	if li.UnitPrice == nil || li.Quantity == nil {
		return decimal.Zero
	}
	return li.UnitPrice.Mul(*li.Quantity)
}

// InvoiceRequest is the writable subset of Invoice.
type InvoiceRequest struct {
	Type        *enum.Open[InvoiceTypeEnum]   `json:"type" validate:"required"`
	Contact     *string                       `json:"contact"`
	Number      *string                       `json:"number"`
	IssueDate   *time.Time                    `json:"issue_date"`
	DueDate     *time.Time                    `json:"due_date"`
	Memo        *string                       `json:"memo"`
	Company     *string                       `json:"company"`
	Currency    *enum.Open[CurrencyEnum]      `json:"currency"`
	Status      *enum.Open[InvoiceStatusEnum] `json:"status"`
	TotalAmount *decimal.Decimal              `json:"total_amount"`
	LineItems   []*InvoiceLineItemRequest     `json:"line_items" validate:"omitempty,dive"`
}

func (r InvoiceRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *InvoiceRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }

// InvoiceLineItemRequest is a writable invoice line.
type InvoiceLineItemRequest struct {
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity    *decimal.Decimal `json:"quantity" validate:"required"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	Item        *string          `json:"item"`
	Account     *string          `json:"account"`
}

func (r InvoiceLineItemRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *InvoiceLineItemRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
