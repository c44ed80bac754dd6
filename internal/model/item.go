package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// InvoiceItem is one embedded line of an invoice. Items have no identity
// outside the document that owns them.
type InvoiceItem struct {
	ID         string          `json:"id,omitempty"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
}

// OrderItem is one embedded line of a purchase order or bill. Unlike
// invoice items it carries no tax field.
type OrderItem struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
}

// InvoiceItems is stored as a single jsonb column on the owning row.
type InvoiceItems []InvoiceItem

func (items InvoiceItems) Value() (driver.Value, error) {
	if items == nil {
		return json.Marshal(InvoiceItems{})
	}
	return json.Marshal(items)
}

func (items *InvoiceItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, items)
}

// OrderItems is stored as a single jsonb column on the owning row.
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return json.Marshal(OrderItems{})
	}
	return json.Marshal(items)
}

func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, items)
}
