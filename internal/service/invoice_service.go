package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperror"
	"backend/pkg/finance"
)

const dateLayout = "2006-01-02"

// --- DTOs ---

// InvoiceRequest is the full invoice representation used by both create
// and the full-replace update. Client-computed totals are not part of the
// contract: the service recomputes subtotal, tax and total from the items
// and stores the recomputed values.
type InvoiceRequest struct {
	InvoiceNumber     string              `json:"invoiceNumber" binding:"required"`
	InvoiceDate       string              `json:"invoiceDate"`
	DueDate           string              `json:"dueDate"`
	SellerCompanyName string              `json:"sellerCompanyName"`
	SellerAddress     string              `json:"sellerAddress"`
	SellerPhone       string              `json:"sellerPhone"`
	SellerEmail       string              `json:"sellerEmail"`
	SellerGSTIN       string              `json:"sellerGSTIN"`
	BuyerName         string              `json:"buyerName"`
	BuyerAddress      string              `json:"buyerAddress"`
	BuyerPhone        string              `json:"buyerPhone"`
	BuyerEmail        string              `json:"buyerEmail"`
	BuyerGSTIN        string              `json:"buyerGSTIN"`
	Items             []model.InvoiceItem `json:"items"`
	Status            string              `json:"status"`
}

// --- Interface ---

type InvoiceService interface {
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, id uint) (*model.Invoice, error)
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*model.Invoice, error)
	UpdateInvoice(ctx context.Context, id uint, req InvoiceRequest) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, id uint) error
	CountCurrentYear(ctx context.Context) (int64, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

// --- Implementation ---

func (s *invoiceService) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id uint) (*model.Invoice, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req InvoiceRequest) (*model.Invoice, error) {
	invoice, err := s.buildInvoice(req)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

// UpdateInvoice replaces every field except the ID.
func (s *invoiceService) UpdateInvoice(ctx context.Context, id uint, req InvoiceRequest) (*model.Invoice, error) {
	existing, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildInvoice(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.invoiceRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return updated, nil
}

// DeleteInvoice is idempotent: deleting an ID that no longer exists is
// not an error.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

func (s *invoiceService) CountCurrentYear(ctx context.Context) (int64, error) {
	count, err := s.invoiceRepo.CountByYear(ctx, time.Now().Year())
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// buildInvoice validates the payload and derives dates, totals and status.
func (s *invoiceService) buildInvoice(req InvoiceRequest) (*model.Invoice, error) {
	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		return nil, apperror.NewBadRequestError("invalid invoiceDate: " + err.Error())
	}
	if invoiceDate.IsZero() {
		invoiceDate = today()
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, apperror.NewBadRequestError("invalid dueDate: " + err.Error())
	}
	if dueDate.IsZero() {
		dueDate = finance.DefaultInvoiceDueDate(invoiceDate)
	}

	status := model.InvoiceDraft
	if req.Status != "" {
		status, err = model.ParseInvoiceStatus(req.Status)
		if err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
	}

	items := model.InvoiceItems(req.Items)
	subtotal, totalTax, totalAmount := finance.Totals(invoiceLines(items))

	return &model.Invoice{
		InvoiceNumber:     req.InvoiceNumber,
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		SellerCompanyName: req.SellerCompanyName,
		SellerAddress:     req.SellerAddress,
		SellerPhone:       req.SellerPhone,
		SellerEmail:       req.SellerEmail,
		SellerGSTIN:       req.SellerGSTIN,
		BuyerName:         req.BuyerName,
		BuyerAddress:      req.BuyerAddress,
		BuyerPhone:        req.BuyerPhone,
		BuyerEmail:        req.BuyerEmail,
		BuyerGSTIN:        req.BuyerGSTIN,
		Items:             items,
		Subtotal:          subtotal,
		TotalTax:          totalTax,
		TotalAmount:       totalAmount,
		Status:            status,
	}, nil
}

// --- Helpers ---

func invoiceLines(items model.InvoiceItems) []finance.Line {
	lines := make([]finance.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, finance.Line{
			Quantity:   item.Quantity,
			Rate:       item.Rate,
			TaxPercent: item.TaxPercent,
		})
	}
	return lines
}

// parseDate accepts the client's YYYY-MM-DD form values as well as full
// RFC3339 timestamps. An empty string parses to the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
