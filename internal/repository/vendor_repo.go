package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	Update(ctx context.Context, vendor *model.Vendor) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
	UpdateStatus(ctx context.Context, id uint, status model.VendorStatus) error
	AppendCommunication(ctx context.Context, id uint, entry datatypes.JSON) error
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	return GetDB(ctx, r.db).Create(vendor).Error
}

func (r *vendorRepository) Update(ctx context.Context, vendor *model.Vendor) error {
	return GetDB(ctx, r.db).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uint) error {
	return GetDB(ctx, r.db).Delete(&model.Vendor{}, id).Error
}

func (r *vendorRepository) FindByID(ctx context.Context, id uint) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := GetDB(ctx, r.db).First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// List returns vendors alphabetically; an empty table yields an empty
// slice, never nil.
func (r *vendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	vendors := []model.Vendor{}
	if err := GetDB(ctx, r.db).Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) UpdateStatus(ctx context.Context, id uint, status model.VendorStatus) error {
	res := GetDB(ctx, r.db).Model(&model.Vendor{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AppendCommunication concatenates one entry onto the jsonb log array in a
// single statement, so concurrent appenders cannot lose each other's
// writes.
func (r *vendorRepository) AppendCommunication(ctx context.Context, id uint, entry datatypes.JSON) error {
	res := GetDB(ctx, r.db).Model(&model.Vendor{}).
		Where("id = ?", id).
		Update("communication_logs",
			gorm.Expr("COALESCE(communication_logs, '[]'::jsonb) || ?::jsonb", string(entry)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
