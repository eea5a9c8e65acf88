package crm

import "github.com/merge-api/merge-go-client/enum"

// AddressTypeEnum classifies a postal address.
type AddressTypeEnum string

const (
	AddressBilling  AddressTypeEnum = "BILLING"
	AddressShipping AddressTypeEnum = "SHIPPING"
)

var addressTypeMapping = enum.Define("AddressTypeEnum", AddressBilling, AddressShipping)

func (AddressTypeEnum) Mapping() *enum.Mapping { return addressTypeMapping }
