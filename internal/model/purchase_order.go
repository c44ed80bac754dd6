package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus enumerates the lifecycle states of a purchase order.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft    PurchaseOrderStatus = "draft"
	PurchaseOrderApproved PurchaseOrderStatus = "approved"
	PurchaseOrderBilled   PurchaseOrderStatus = "billed"
)

// ParsePurchaseOrderStatus validates a caller-supplied status string.
func ParsePurchaseOrderStatus(s string) (PurchaseOrderStatus, error) {
	switch PurchaseOrderStatus(s) {
	case PurchaseOrderDraft, PurchaseOrderApproved, PurchaseOrderBilled:
		return PurchaseOrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown purchase order status %q", s)
}

// CanTransition reports whether moving to the target status is allowed.
func (s PurchaseOrderStatus) CanTransition(to PurchaseOrderStatus) bool {
	_, err := ParsePurchaseOrderStatus(string(to))
	return err == nil
}

// PurchaseOrder references a vendor and embeds its line items as jsonb.
// TotalAmount is caller-supplied and stored verbatim, not recomputed from
// the items. AdvancePayment is informational only.
type PurchaseOrder struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	PONumber       string              `gorm:"column:po_number;type:varchar(50);uniqueIndex;not null" json:"po_number"`
	VendorID       uint                `gorm:"not null;index" json:"vendor_id"`
	Vendor         *Vendor             `gorm:"foreignKey:VendorID" json:"-"`
	Items          OrderItems          `gorm:"type:jsonb" json:"items"`
	TotalAmount    decimal.Decimal     `gorm:"type:decimal(18,4);not null" json:"total_amount"`
	AdvancePayment decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0" json:"advance_payment"`
	Status         PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
