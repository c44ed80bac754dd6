package service

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"
	"backend/pkg/finance"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateBillRequest struct {
	BillNumber          string            `json:"bill_number" binding:"required"`
	VendorID            uint              `json:"vendor_id" binding:"required"`
	PurchaseOrderID     uint              `json:"purchase_order_id" binding:"required"`
	BillDate            string            `json:"bill_date"`
	DueDate             string            `json:"due_date"`
	Items               []model.OrderItem `json:"items"`
	TotalAmount         decimal.Decimal   `json:"total_amount"`
	Status              string            `json:"status"`
	IsRecurring         bool              `json:"is_recurring"`
	RecurrenceFrequency string            `json:"recurrence_frequency"`
}

type BatchPaymentRequest struct {
	BillIDs []uint `json:"bill_ids" binding:"required"`
}

// --- Interface ---

type BillService interface {
	ListBills(ctx context.Context) ([]model.Bill, error)
	CreateBill(ctx context.Context, req CreateBillRequest) (*model.Bill, error)
	CountBills(ctx context.Context) (int64, error)
	BatchPay(ctx context.Context, req BatchPaymentRequest) ([]model.Bill, error)
}

type billService struct {
	billRepo  repository.BillRepository
	poRepo    repository.PurchaseOrderRepository
	txManager repository.TransactionManager
}

func NewBillService(
	billRepo repository.BillRepository,
	poRepo repository.PurchaseOrderRepository,
	txManager repository.TransactionManager,
) BillService {
	return &billService{
		billRepo:  billRepo,
		poRepo:    poRepo,
		txManager: txManager,
	}
}

// --- Implementation ---

func (s *billService) ListBills(ctx context.Context) ([]model.Bill, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bills: %w", err)
	}
	return bills, nil
}

// CreateBill inserts a bill against a purchase order. The referenced PO
// is loaded and the bill inserted inside one transaction; when the caller
// sends no items the PO's items are copied verbatim, with no live link to
// later PO edits.
func (s *billService) CreateBill(ctx context.Context, req CreateBillRequest) (*model.Bill, error) {
	billDate, err := parseDate(req.BillDate)
	if err != nil {
		return nil, apperror.NewBadRequestError("invalid bill_date: " + err.Error())
	}
	if billDate.IsZero() {
		billDate = today()
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, apperror.NewBadRequestError("invalid due_date: " + err.Error())
	}
	if dueDate.IsZero() {
		dueDate = finance.NextMonthDueDate(billDate)
	}

	status := model.BillUnpaid
	if req.Status != "" {
		status, err = model.ParseBillStatus(req.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
	}

	frequency := ""
	if req.RecurrenceFrequency != "" {
		frequency, err = model.ParseRecurrenceFrequency(req.RecurrenceFrequency)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
	}
	if req.IsRecurring && frequency == "" {
		return nil, apperror.NewBadRequestError("recurrence_frequency is required for recurring bills")
	}

	bill := &model.Bill{
		BillNumber:          req.BillNumber,
		VendorID:            req.VendorID,
		PurchaseOrderID:     req.PurchaseOrderID,
		BillDate:            billDate,
		DueDate:             dueDate,
		Items:               model.OrderItems(req.Items),
		TotalAmount:         req.TotalAmount,
		Status:              status,
		IsRecurring:         req.IsRecurring,
		RecurrenceFrequency: frequency,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		po, findErr := s.poRepo.FindByID(txCtx, req.PurchaseOrderID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return apperror.NewBadRequestError("referenced purchase order not found")
			}
			return fmt.Errorf("failed to load purchase order: %w", findErr)
		}

		if len(bill.Items) == 0 {
			bill.Items = po.Items
		}

		if createErr := s.billRepo.Create(txCtx, bill); createErr != nil {
			return fmt.Errorf("failed to create bill: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bill, nil
}

func (s *billService) CountBills(ctx context.Context) (int64, error) {
	count, err := s.billRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count bills: %w", err)
	}
	return count, nil
}

// BatchPay marks every matching bill paid in one statement and returns
// the rows that matched; IDs without a row are silently ignored.
func (s *billService) BatchPay(ctx context.Context, req BatchPaymentRequest) ([]model.Bill, error) {
	if len(req.BillIDs) == 0 {
		return []model.Bill{}, nil
	}

	bills, err := s.billRepo.MarkPaid(ctx, req.BillIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to process batch payment: %w", err)
	}
	return bills, nil
}
