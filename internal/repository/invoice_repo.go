package repository

import (
	"context"
	"time"

	"backend/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	Update(ctx context.Context, invoice *model.Invoice) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	CountByYear(ctx context.Context, year int) (int64, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	return GetDB(ctx, r.db).Save(invoice).Error
}

// Delete succeeds even when the row is already gone; callers cannot tell
// "deleted" from "was never there".
func (r *invoiceRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Invoice{}, id).Error
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := GetDB(ctx, r.db).First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns invoices newest first; an empty table yields an empty
// slice, never nil, so the wire body stays a JSON array.
func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	invoices := []model.Invoice{}
	if err := GetDB(ctx, r.db).Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// CountByYear counts invoices whose invoice date falls in the given
// calendar year, the scope the client uses to synthesize invoice numbers.
func (r *invoiceRepository) CountByYear(ctx context.Context, year int) (int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var count int64
	err := GetDB(ctx, r.db).Model(&model.Invoice{}).
		Where("invoice_date >= ? AND invoice_date < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
