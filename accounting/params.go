package accounting

import (
	"time"

	"github.com/merge-api/merge-go-client/shared"
)

// InvoiceListParams filters the invoice list.
type InvoiceListParams struct {
	shared.ListParams

	ContactID       string     `url:"contact_id,omitempty"`
	CompanyID       string     `url:"company_id,omitempty"`
	Number          string     `url:"number,omitempty"`
	Status          string     `url:"status,omitempty"`
	Type            string     `url:"type,omitempty"`
	IssueDateAfter  *time.Time `url:"issue_date_after,omitempty"`
	IssueDateBefore *time.Time `url:"issue_date_before,omitempty"`
}
