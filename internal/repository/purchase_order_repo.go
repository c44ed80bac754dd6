package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	Count(ctx context.Context) (int64, error)
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *model.PurchaseOrder) error {
	return GetDB(ctx, r.db).Create(po).Error
}

func (r *purchaseOrderRepository) FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := GetDB(ctx, r.db).First(&po, id).Error; err != nil {
		return nil, err
	}
	return &po, nil
}

// List returns purchase orders newest first; an empty table yields an
// empty slice, never nil.
func (r *purchaseOrderRepository) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	pos := []model.PurchaseOrder{}
	if err := GetDB(ctx, r.db).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, err
	}
	return pos, nil
}

func (r *purchaseOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.PurchaseOrder{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
