package models

import (
	"encoding/json"
	"time"

	"adyenbridge/internal/pay"
)

// Payment maps to the `payments` table. Structured customer, address,
// line and metadata values are stored as JSON text columns.
type Payment struct {
	ID          string  `gorm:"column:id;primaryKey;size:36"`
	Description string  `gorm:"column:description;size:1000"`
	Method      string  `gorm:"column:method;size:100"`
	Currency    string  `gorm:"column:currency;size:3"`
	Amount      float64 `gorm:"column:amount"`
	ReturnURL   string  `gorm:"column:return_url;size:2000"`
	Issuer      string  `gorm:"column:issuer;size:100"`
	ConfigID    string  `gorm:"column:config_id;size:100"`
	Mode        string  `gorm:"column:mode;size:10"`

	Customer        string `gorm:"column:customer;type:text"`
	BillingAddress  string `gorm:"column:billing_address;type:text"`
	ShippingAddress string `gorm:"column:shipping_address;type:text"`
	Lines           string `gorm:"column:lines;type:text"`
	Metadata        string `gorm:"column:metadata;type:text"`

	TransactionID string `gorm:"column:transaction_id;size:200"`
	ActionURL     string `gorm:"column:action_url;size:2000"`
	Status        string `gorm:"column:status;size:50"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// FromDomain serializes a domain payment into the storage model.
func (m *Payment) FromDomain(p *pay.Payment) error {
	m.ID = p.ID
	m.Description = p.Description
	m.Method = string(p.Method)
	m.Currency = p.TotalAmount.Currency
	m.Amount = p.TotalAmount.Value
	m.ReturnURL = p.ReturnURL
	m.Issuer = p.Issuer
	m.ConfigID = p.ConfigID
	m.Mode = string(p.Mode)
	m.TransactionID = p.TransactionID
	m.ActionURL = p.ActionURL
	m.Status = string(p.Status)

	for _, field := range []struct {
		value interface{}
		dst   *string
	}{
		{p.Customer, &m.Customer},
		{p.BillingAddress, &m.BillingAddress},
		{p.ShippingAddress, &m.ShippingAddress},
		{p.Lines, &m.Lines},
		{p.Metadata(), &m.Metadata},
	} {
		data, err := json.Marshal(field.value)
		if err != nil {
			return err
		}
		*field.dst = string(data)
	}

	return nil
}

// ToDomain deserializes the storage model into a domain payment.
func (m *Payment) ToDomain() (*pay.Payment, error) {
	p := &pay.Payment{
		ID:            m.ID,
		Description:   m.Description,
		Method:        pay.Method(m.Method),
		TotalAmount:   pay.NewAmount(m.Currency, m.Amount),
		ReturnURL:     m.ReturnURL,
		Issuer:        m.Issuer,
		ConfigID:      m.ConfigID,
		Mode:          pay.Mode(m.Mode),
		TransactionID: m.TransactionID,
		ActionURL:     m.ActionURL,
		Status:        pay.Status(m.Status),
	}

	for _, field := range []struct {
		src string
		dst interface{}
	}{
		{m.Customer, &p.Customer},
		{m.BillingAddress, &p.BillingAddress},
		{m.ShippingAddress, &p.ShippingAddress},
		{m.Lines, &p.Lines},
	} {
		if field.src == "" || field.src == "null" {
			continue
		}
		if err := json.Unmarshal([]byte(field.src), field.dst); err != nil {
			return nil, err
		}
	}

	if m.Metadata != "" && m.Metadata != "null" {
		meta := map[string]string{}
		if err := json.Unmarshal([]byte(m.Metadata), &meta); err != nil {
			return nil, err
		}
		p.SetMetadata(meta)
	}

	return p, nil
}
