package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PurchaseOrderHandler struct {
	poService service.PurchaseOrderService
}

func NewPurchaseOrderHandler(poService service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

func (h *PurchaseOrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/api/purchase-orders")
	{
		pos.GET("", h.ListPurchaseOrders)
		// /count must be registered before /:id
		pos.GET("/count", h.CountPurchaseOrders)
		pos.GET("/:id", h.GetPurchaseOrder)
		pos.POST("", h.CreatePurchaseOrder)
	}
}

// ListPurchaseOrders returns all purchase orders, newest first
// @Summary      List purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Success      200  {array}   model.PurchaseOrder
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	pos, err := h.poService.ListPurchaseOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Purchase order not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, pos)
}

// CountPurchaseOrders returns the all-time purchase order count
// @Summary      Count purchase orders
// @Tags         purchase-orders
// @Produce      json
// @Success      200  {object}  response.CountBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/purchase-orders/count [get]
func (h *PurchaseOrderHandler) CountPurchaseOrders(c *gin.Context) {
	count, err := h.poService.CountPurchaseOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Purchase order not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, response.Count(count))
}

// GetPurchaseOrder returns a single purchase order by ID
// @Summary      Get purchase order
// @Tags         purchase-orders
// @Produce      json
// @Param        id   path      int  true  "Purchase order ID"
// @Success      200  {object}  model.PurchaseOrder
// @Failure      404  {object}  response.ErrorBody
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	po, err := h.poService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Purchase order not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, po)
}

// CreatePurchaseOrder stores a new purchase order
// @Summary      Create purchase order
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePurchaseOrderRequest  true  "Purchase order payload"
// @Success      201      {object}  model.PurchaseOrder
// @Failure      400      {object}  response.ErrorBody
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req service.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	po, err := h.poService.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Purchase order not found", "Failed to create purchase order")
		return
	}
	c.JSON(http.StatusCreated, po)
}
