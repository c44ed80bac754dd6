package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// ParseInvoiceStatus validates a caller-supplied status string.
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch InvoiceStatus(s) {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return InvoiceStatus(s), nil
	}
	return "", fmt.Errorf("unknown invoice status %q", s)
}

// CanTransition reports whether moving to the target status is allowed.
// Invoices have no terminal state; every known status may replace any
// other. Only unknown values are rejected.
func (s InvoiceStatus) CanTransition(to InvoiceStatus) bool {
	_, err := ParseInvoiceStatus(string(to))
	return err == nil
}

// Invoice is a sales invoice. Line items are embedded as a jsonb column;
// subtotal, tax and total are recomputed from the items on every write.
// JSON keys are camelCase to match the wire format the client expects.
type Invoice struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	InvoiceNumber     string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"invoiceNumber"`
	InvoiceDate       time.Time       `gorm:"type:date" json:"invoiceDate"`
	DueDate           time.Time       `gorm:"type:date" json:"dueDate"`
	SellerCompanyName string          `gorm:"type:varchar(255)" json:"sellerCompanyName"`
	SellerAddress     string          `gorm:"type:text" json:"sellerAddress"`
	SellerPhone       string          `gorm:"type:varchar(50)" json:"sellerPhone"`
	SellerEmail       string          `gorm:"type:varchar(255)" json:"sellerEmail"`
	SellerGSTIN       string          `gorm:"type:varchar(15)" json:"sellerGSTIN"`
	BuyerName         string          `gorm:"type:varchar(255)" json:"buyerName"`
	BuyerAddress      string          `gorm:"type:text" json:"buyerAddress"`
	BuyerPhone        string          `gorm:"type:varchar(50)" json:"buyerPhone"`
	BuyerEmail        string          `gorm:"type:varchar(255)" json:"buyerEmail"`
	BuyerGSTIN        string          `gorm:"type:varchar(15)" json:"buyerGSTIN"`
	Items             InvoiceItems    `gorm:"type:jsonb" json:"items"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"subtotal"`
	TotalTax          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"totalTax"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"totalAmount"`
	Status            InvoiceStatus   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
