package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// VendorStatus enumerates the approval states of a vendor.
type VendorStatus string

const (
	VendorPending  VendorStatus = "pending"
	VendorApproved VendorStatus = "approved"
	VendorRejected VendorStatus = "rejected"
)

// ParseVendorStatus validates a caller-supplied status string.
func ParseVendorStatus(s string) (VendorStatus, error) {
	switch VendorStatus(s) {
	case VendorPending, VendorApproved, VendorRejected:
		return VendorStatus(s), nil
	}
	return "", fmt.Errorf("unknown vendor status %q", s)
}

// CanTransition reports whether moving to the target status is allowed.
// The vendor state machine has no terminal state: pending, approved and
// rejected each reach the other two, so any known status is accepted.
func (s VendorStatus) CanTransition(to VendorStatus) bool {
	_, err := ParseVendorStatus(string(to))
	return err == nil
}

// Vendor is a supplier record. CommunicationLogs is an append-only jsonb
// array; entries are free-form objects concatenated server-side and never
// removed. JSON keys follow the snake_case wire format of the
// accounts-payable resources, except the timestamps.
type Vendor struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`
	Address           string         `gorm:"type:text" json:"address"`
	Phone             string         `gorm:"type:varchar(20)" json:"phone"`
	Email             string         `gorm:"type:varchar(255)" json:"email"`
	GSTIN             string         `gorm:"type:varchar(15)" json:"gstin"`
	Status            VendorStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CommunicationLogs datatypes.JSON `gorm:"type:jsonb" json:"communication_logs"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
