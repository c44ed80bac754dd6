package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus enumerates the payment states of a bill.
type BillStatus string

const (
	BillUnpaid  BillStatus = "unpaid"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

// ParseBillStatus validates a caller-supplied status string.
func ParseBillStatus(s string) (BillStatus, error) {
	switch BillStatus(s) {
	case BillUnpaid, BillPaid, BillOverdue:
		return BillStatus(s), nil
	}
	return "", fmt.Errorf("unknown bill status %q", s)
}

// CanTransition reports whether moving to the target status is allowed.
func (s BillStatus) CanTransition(to BillStatus) bool {
	_, err := ParseBillStatus(string(to))
	return err == nil
}

// RecurrenceFrequency enum constants for recurring bills. The flag and
// frequency are recorded only; no scheduler regenerates future bills.
const (
	RecurrenceWeekly    = "weekly"
	RecurrenceMonthly   = "monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"
)

// ParseRecurrenceFrequency validates a caller-supplied frequency string.
func ParseRecurrenceFrequency(s string) (string, error) {
	switch s {
	case RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceYearly:
		return s, nil
	}
	return "", fmt.Errorf("unknown recurrence frequency %q", s)
}

// Bill is a payable raised against a purchase order. Items are copied
// from the referenced PO at creation time; later PO edits do not
// propagate.
type Bill struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	BillNumber          string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"bill_number"`
	VendorID            uint            `gorm:"not null;index" json:"vendor_id"`
	Vendor              *Vendor         `gorm:"foreignKey:VendorID" json:"-"`
	PurchaseOrderID     uint            `gorm:"not null;index" json:"purchase_order_id"`
	PurchaseOrder       *PurchaseOrder  `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	BillDate            time.Time       `gorm:"type:date;index" json:"bill_date"`
	DueDate             time.Time       `gorm:"type:date" json:"due_date"`
	Items               OrderItems      `gorm:"type:jsonb" json:"items"`
	TotalAmount         decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"`
	Status              BillStatus      `gorm:"type:varchar(20);not null;default:'unpaid';index" json:"status"`
	IsRecurring         bool            `gorm:"not null;default:false" json:"is_recurring"`
	RecurrenceFrequency string          `gorm:"type:varchar(20)" json:"recurrence_frequency"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}
