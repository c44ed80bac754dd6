package service

import (
	"context"
	"testing"
	"time"

	"backend/internal/model"
	"backend/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// mockInvoiceRepo is an in-memory InvoiceRepository.
type mockInvoiceRepo struct {
	invoices map[uint]*model.Invoice
	nextID   uint
	deletes  int
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{invoices: map[uint]*model.Invoice{}, nextID: 1}
}

func (m *mockInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	invoice.ID = m.nextID
	m.nextID++
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt
	stored := *invoice
	m.invoices[invoice.ID] = &stored
	return nil
}

func (m *mockInvoiceRepo) Update(_ context.Context, invoice *model.Invoice) error {
	stored := *invoice
	m.invoices[invoice.ID] = &stored
	return nil
}

func (m *mockInvoiceRepo) Delete(_ context.Context, id uint) error {
	delete(m.invoices, id)
	m.deletes++
	return nil
}

func (m *mockInvoiceRepo) FindByID(_ context.Context, id uint) (*model.Invoice, error) {
	invoice, ok := m.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *invoice
	return &copied, nil
}

func (m *mockInvoiceRepo) List(_ context.Context) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range m.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (m *mockInvoiceRepo) CountByYear(_ context.Context, _ int) (int64, error) {
	return int64(len(m.invoices)), nil
}

func invoiceItem(qty, rate, tax int64) model.InvoiceItem {
	return model.InvoiceItem{
		Name:       "item",
		Quantity:   decimal.NewFromInt(qty),
		Rate:       decimal.NewFromInt(rate),
		TaxPercent: decimal.NewFromInt(tax),
	}
}

func TestCreateInvoiceRecomputesTotals(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	invoice, err := svc.CreateInvoice(context.Background(), InvoiceRequest{
		InvoiceNumber: "INV-2026-001",
		InvoiceDate:   "2026-03-01",
		Items: []model.InvoiceItem{
			invoiceItem(2, 100, 18),
			invoiceItem(1, 50, 0),
		},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(250).Equal(invoice.Subtotal), "subtotal = %s", invoice.Subtotal)
	assert.True(t, decimal.NewFromInt(36).Equal(invoice.TotalTax), "totalTax = %s", invoice.TotalTax)
	assert.True(t, decimal.NewFromInt(286).Equal(invoice.TotalAmount), "totalAmount = %s", invoice.TotalAmount)
}

func TestCreateInvoiceDefaultsDueDateAndStatus(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	invoice, err := svc.CreateInvoice(context.Background(), InvoiceRequest{
		InvoiceNumber: "INV-2026-002",
		InvoiceDate:   "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, model.InvoiceDraft, invoice.Status)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), invoice.DueDate)
}

func TestCreateInvoiceKeepsExplicitDueDate(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	invoice, err := svc.CreateInvoice(context.Background(), InvoiceRequest{
		InvoiceNumber: "INV-2026-003",
		InvoiceDate:   "2026-03-01",
		DueDate:       "2026-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), invoice.DueDate)
}

func TestCreateInvoiceRejectsUnknownStatus(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	_, err := svc.CreateInvoice(context.Background(), InvoiceRequest{
		InvoiceNumber: "INV-2026-004",
		Status:        "cancelled",
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusCode(err))
}

func TestUpdateInvoiceReplacesFieldsAndKeepsID(t *testing.T) {
	repo := newMockInvoiceRepo()
	svc := NewInvoiceService(repo)

	created, err := svc.CreateInvoice(context.Background(), InvoiceRequest{
		InvoiceNumber: "INV-2026-005",
		InvoiceDate:   "2026-03-01",
		BuyerName:     "Acme",
		Items:         []model.InvoiceItem{invoiceItem(1, 100, 0)},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateInvoice(context.Background(), created.ID, InvoiceRequest{
		InvoiceNumber: "INV-2026-005",
		InvoiceDate:   "2026-03-01",
		BuyerName:     "Globex",
		Status:        "sent",
		Items:         []model.InvoiceItem{invoiceItem(3, 100, 0)},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Globex", updated.BuyerName)
	assert.Equal(t, model.InvoiceSent, updated.Status)
	assert.True(t, decimal.NewFromInt(300).Equal(updated.Subtotal))
}

func TestUpdateInvoiceMissingIDIsNotFound(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	_, err := svc.UpdateInvoice(context.Background(), 999, InvoiceRequest{InvoiceNumber: "INV-x"})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.StatusCode(err))
}

func TestGetInvoiceMissingIDIsNotFound(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	_, err := svc.GetInvoice(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.StatusCode(err))
}

func TestDeleteInvoiceIsIdempotent(t *testing.T) {
	repo := newMockInvoiceRepo()
	svc := NewInvoiceService(repo)

	created, err := svc.CreateInvoice(context.Background(), InvoiceRequest{InvoiceNumber: "INV-2026-006"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInvoice(context.Background(), created.ID))
	require.NoError(t, svc.DeleteInvoice(context.Background(), created.ID))
	assert.Equal(t, 2, repo.deletes)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewInvoiceService(newMockInvoiceRepo())

	created, err := svc.CreateInvoice(context.Background(), InvoiceRequest{
		InvoiceNumber: "INV-2026-007",
		InvoiceDate:   "2026-03-01",
		SellerGSTIN:   "29ABCDE1234F2Z5",
		Items:         []model.InvoiceItem{invoiceItem(2, 100, 18)},
	})
	require.NoError(t, err)

	fetched, err := svc.GetInvoice(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNumber, fetched.InvoiceNumber)
	assert.Equal(t, created.SellerGSTIN, fetched.SellerGSTIN)
	assert.True(t, created.TotalAmount.Equal(fetched.TotalAmount))
	require.Len(t, fetched.Items, 1)
	assert.True(t, fetched.Items[0].Quantity.Equal(decimal.NewFromInt(2)))
}
