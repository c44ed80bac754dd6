package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BillRepository interface {
	Create(ctx context.Context, bill *model.Bill) error
	FindByID(ctx context.Context, id uint) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	Count(ctx context.Context) (int64, error)
	MarkPaid(ctx context.Context, ids []uint) ([]model.Bill, error)
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	return GetDB(ctx, r.db).Create(bill).Error
}

func (r *billRepository) FindByID(ctx context.Context, id uint) (*model.Bill, error) {
	var bill model.Bill
	if err := GetDB(ctx, r.db).First(&bill, id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// List returns bills by bill date descending; an empty table yields an
// empty slice, never nil.
func (r *billRepository) List(ctx context.Context) ([]model.Bill, error) {
	bills := []model.Bill{}
	if err := GetDB(ctx, r.db).Order("bill_date DESC").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.Bill{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkPaid sets every matching bill to "paid" in one statement and
// returns the rows that matched. IDs that match nothing are silently
// ignored.
func (r *billRepository) MarkPaid(ctx context.Context, ids []uint) ([]model.Bill, error) {
	bills := []model.Bill{}
	res := GetDB(ctx, r.db).Model(&bills).
		Clauses(clause.Returning{}).
		Where("id IN ?", ids).
		Update("status", model.BillPaid)
	if res.Error != nil {
		return nil, res.Error
	}
	return bills, nil
}
