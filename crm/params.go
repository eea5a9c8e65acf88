package crm

import "github.com/merge-api/merge-go-client/shared"

// ContactListParams filters the contact list.
type ContactListParams struct {
	shared.ListParams

	AccountID      string `url:"account_id,omitempty"`
	EmailAddresses string `url:"email_addresses,omitempty"`
	PhoneNumbers   string `url:"phone_numbers,omitempty"`
}

// AccountListParams filters the account list.
type AccountListParams struct {
	shared.ListParams

	Name    string `url:"name,omitempty"`
	OwnerID string `url:"owner_id,omitempty"`
}
