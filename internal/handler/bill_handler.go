package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type BillHandler struct {
	billService service.BillService
}

func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

func (h *BillHandler) RegisterRoutes(router *gin.RouterGroup) {
	bills := router.Group("/api/bills")
	{
		bills.GET("", h.ListBills)
		bills.GET("/count", h.CountBills)
		bills.POST("", h.CreateBill)
		bills.POST("/batch-payment", h.BatchPayment)
	}
}

// ListBills returns all bills ordered by bill date descending
// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Success      200  {array}   model.Bill
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Bill not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, bills)
}

// CountBills returns the all-time bill count
// @Summary      Count bills
// @Tags         bills
// @Produce      json
// @Success      200  {object}  response.CountBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/bills/count [get]
func (h *BillHandler) CountBills(c *gin.Context) {
	count, err := h.billService.CountBills(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Bill not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response.Count(count))
}

// CreateBill stores a new bill against a purchase order
// @Summary      Create bill
// @Description  Copies items from the referenced purchase order when none are supplied
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBillRequest  true  "Bill payload"
// @Success      201      {object}  model.Bill
// @Failure      400      {object}  response.ErrorBody
// @Router       /api/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req service.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Bill not found", "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// BatchPayment marks the listed bills paid in one statement
// @Summary      Batch bill payment
// @Description  Sets every matching bill to "paid"; IDs without a row are silently ignored
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        payload  body      service.BatchPaymentRequest  true  "Bill IDs"
// @Success      200      {array}   model.Bill
// @Failure      400      {object}  response.ErrorBody
// @Router       /api/bills/batch-payment [post]
func (h *BillHandler) BatchPayment(c *gin.Context) {
	var req service.BatchPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	bills, err := h.billService.BatchPay(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Bill not found", "Failed to process batch payment")
		return
	}
	c.JSON(http.StatusOK, bills)
}
