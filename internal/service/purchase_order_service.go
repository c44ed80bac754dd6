package service

import (
	"context"
	"fmt"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// CreatePurchaseOrderRequest carries the PO as composed by the caller.
// TotalAmount is stored verbatim, not recomputed from the items.
type CreatePurchaseOrderRequest struct {
	PONumber       string            `json:"po_number" binding:"required"`
	VendorID       uint              `json:"vendor_id" binding:"required"`
	Items          []model.OrderItem `json:"items"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	AdvancePayment decimal.Decimal   `json:"advance_payment"`
	Status         string            `json:"status"`
}

// --- Interface ---

type PurchaseOrderService interface {
	ListPurchaseOrders(ctx context.Context) ([]model.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (*model.PurchaseOrder, error)
	CountPurchaseOrders(ctx context.Context) (int64, error)
}

type purchaseOrderService struct {
	poRepo repository.PurchaseOrderRepository
}

func NewPurchaseOrderService(poRepo repository.PurchaseOrderRepository) PurchaseOrderService {
	return &purchaseOrderService{poRepo: poRepo}
}

// --- Implementation ---

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context) ([]model.PurchaseOrder, error) {
	pos, err := s.poRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase orders: %w", err)
	}
	return pos, nil
}

func (s *purchaseOrderService) GetPurchaseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return po, nil
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (*model.PurchaseOrder, error) {
	status := model.PurchaseOrderDraft
	if req.Status != "" {
		parsed, err := model.ParsePurchaseOrderStatus(req.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		status = parsed
	}

	po := &model.PurchaseOrder{
		PONumber:       req.PONumber,
		VendorID:       req.VendorID,
		Items:          model.OrderItems(req.Items),
		TotalAmount:    req.TotalAmount,
		AdvancePayment: req.AdvancePayment,
		Status:         status,
	}

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, fmt.Errorf("failed to create purchase order: %w", err)
	}
	return po, nil
}

func (s *purchaseOrderService) CountPurchaseOrders(ctx context.Context) (int64, error) {
	count, err := s.poRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}
	return count, nil
}
