// Package pay holds the provider-agnostic payment domain model: a
// payment record with customer, addresses and lines, mutated by a
// gateway through a small set of fields (transaction ID, action URL,
// status, metadata).
package pay

import "time"

// Status is the canonical payment status.
type Status string

const (
	StatusOpen      Status = "Open"
	StatusSuccess   Status = "Success"
	StatusFailure   Status = "Failure"
	StatusCancelled Status = "Cancelled"
	StatusExpired   Status = "Expired"
)

// IsTerminal reports whether no further status changes are expected.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// Method is a generic payment method identifier.
type Method string

const (
	MethodBancontact  Method = "bancontact"
	MethodCreditCard  Method = "credit_card"
	MethodDirectDebit Method = "direct_debit"
	MethodGiropay     Method = "giropay"
	MethodIDeal       Method = "ideal"
	MethodMaestro     Method = "maestro"
	MethodSofort      Method = "sofort"
)

// Mode distinguishes test from live processing.
type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

// Line is one entry of a payment's line collection.
type Line struct {
	ID   string
	Name string
	// Description is nil when the line has no explicit description, in
	// which case the name (or a synthesized label) is used downstream.
	Description *string
	Quantity    int64
	UnitPrice   TaxedAmount
	TotalAmount TaxedAmount
}

// Payment is the generic payment record. It is owned by the host side of
// this service; the gateway only reads it and writes back transaction ID,
// action URL, status and metadata.
type Payment struct {
	ID          string
	Description string
	Method      Method
	TotalAmount Amount
	ReturnURL   string
	Issuer      string
	ConfigID    string
	Mode        Mode

	Customer        *Customer
	BillingAddress  *Address
	ShippingAddress *Address
	// Lines is nil when the payment carries no line collection at all,
	// which is distinct from an empty collection.
	Lines []Line

	TransactionID string
	ActionURL     string
	Status        Status

	meta map[string]string
}

// Meta returns the metadata value for key, or "" when unset.
func (p *Payment) Meta(key string) string {
	return p.meta[key]
}

// SetMeta stores an opaque metadata value on the payment.
func (p *Payment) SetMeta(key, value string) {
	if p.meta == nil {
		p.meta = make(map[string]string)
	}
	p.meta[key] = value
}

// Metadata returns a copy of all metadata entries.
func (p *Payment) Metadata() map[string]string {
	out := make(map[string]string, len(p.meta))
	for k, v := range p.meta {
		out[k] = v
	}
	return out
}

// SetMetadata replaces all metadata entries, used when loading a stored
// payment.
func (p *Payment) SetMetadata(meta map[string]string) {
	p.meta = nil
	for k, v := range meta {
		p.SetMeta(k, v)
	}
}

// Customer is the shopper attached to a payment. All fields are optional.
type Customer struct {
	IPAddress string
	Locale    string
	UserID    string
	Phone     string
	Name      *Name
	BirthDate *time.Time
	Gender    Gender
}

// Name is a customer name.
type Name struct {
	FirstName string
	LastName  string
}

// Gender is the generic gender tag of a customer.
type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
	GenderOther  Gender = "X"
)

// Address is a generic postal address.
type Address struct {
	Street      string
	HouseNumber string
	City        string
	PostalCode  string
	CountryCode string
}
