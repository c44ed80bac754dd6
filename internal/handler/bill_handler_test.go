package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/internal/model"
	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBillService struct {
	bills   []model.Bill
	paidIDs []uint
}

func (s *stubBillService) ListBills(_ context.Context) ([]model.Bill, error) {
	return s.bills, nil
}

func (s *stubBillService) CreateBill(_ context.Context, req service.CreateBillRequest) (*model.Bill, error) {
	bill := model.Bill{ID: uint(len(s.bills) + 1), BillNumber: req.BillNumber, Status: model.BillUnpaid}
	s.bills = append(s.bills, bill)
	return &bill, nil
}

func (s *stubBillService) CountBills(_ context.Context) (int64, error) {
	return int64(len(s.bills)), nil
}

func (s *stubBillService) BatchPay(_ context.Context, req service.BatchPaymentRequest) ([]model.Bill, error) {
	s.paidIDs = req.BillIDs
	var paid []model.Bill
	for _, bill := range s.bills {
		for _, id := range req.BillIDs {
			if bill.ID == id {
				bill.Status = model.BillPaid
				paid = append(paid, bill)
			}
		}
	}
	return paid, nil
}

func newBillRouter(svc service.BillService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBillHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func TestBatchPaymentReturnsUpdatedBills(t *testing.T) {
	svc := &stubBillService{bills: []model.Bill{
		{ID: 1, BillNumber: "BILL-2026-001", Status: model.BillUnpaid},
		{ID: 2, BillNumber: "BILL-2026-002", Status: model.BillUnpaid},
		{ID: 3, BillNumber: "BILL-2026-003", Status: model.BillUnpaid},
	}}
	router := newBillRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bills/batch-payment", strings.NewReader(`{"bill_ids":[1,3]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.Bill
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, model.BillPaid, got[0].Status)
	assert.Equal(t, model.BillPaid, got[1].Status)
	assert.Equal(t, []uint{1, 3}, svc.paidIDs)
}

func TestBatchPaymentBadBody(t *testing.T) {
	router := newBillRouter(&stubBillService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bills/batch-payment", strings.NewReader(`{"bill_ids":"oops"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Invalid request payload")
}

func TestCreateBillMissingRequiredFields(t *testing.T) {
	router := newBillRouter(&stubBillService{})

	// bill_number, vendor_id and purchase_order_id are all required
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bills", strings.NewReader(`{"bill_number":"BILL-2026-009"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountBillsBody(t *testing.T) {
	router := newBillRouter(&stubBillService{bills: []model.Bill{{ID: 1}, {ID: 2}}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bills/count", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
}
