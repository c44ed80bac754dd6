package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("", h.CreateInvoice)
		invoices.PUT("/:id", h.UpdateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
	}

	// The client synthesizes invoice numbers from this count.
	router.GET("/api/invoice-count", h.CountInvoices)
}

// ListInvoices returns all invoices, newest first
// @Summary      List invoices
// @Description  Returns every invoice ordered by creation time descending
// @Tags         invoices
// @Produce      json
// @Success      200  {array}   model.Invoice
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Invoice not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice returns a single invoice by ID
// @Summary      Get invoice
// @Tags         invoices
// @Produce      json
// @Param        id   path      int  true  "Invoice ID"
// @Success      200  {object}  model.Invoice
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Invoice not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice stores a new invoice
// @Summary      Create invoice
// @Description  Persists the invoice; subtotal, tax and total are recomputed from the item list
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      service.InvoiceRequest  true  "Invoice payload"
// @Success      201      {object}  model.Invoice
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req service.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Invoice not found", "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoice replaces all fields of an invoice
// @Summary      Update invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Invoice ID"
// @Param        payload  body      service.InvoiceRequest  true  "Invoice payload"
// @Success      200      {object}  model.Invoice
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Invoice not found", "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice; deleting a missing ID still succeeds
// @Summary      Delete invoice
// @Tags         invoices
// @Param        id  path  int  true  "Invoice ID"
// @Success      204
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Invoice not found", "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// CountInvoices returns the number of invoices dated in the current year
// @Summary      Count invoices for the current calendar year
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.CountBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/invoice-count [get]
func (h *InvoiceHandler) CountInvoices(c *gin.Context) {
	count, err := h.invoiceService.CountCurrentYear(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Invoice not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response.Count(count))
}
