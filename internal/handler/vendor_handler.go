package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	vendorService service.VendorService
}

func NewVendorHandler(vendorService service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) RegisterRoutes(router *gin.RouterGroup) {
	vendors := router.Group("/api/vendors")
	{
		vendors.GET("", h.ListVendors)
		vendors.POST("", h.CreateVendor)
		vendors.PUT("/:id", h.UpdateVendor)
		vendors.DELETE("/:id", h.DeleteVendor)
		vendors.PUT("/:id/status", h.UpdateVendorStatus)
		vendors.POST("/:id/communications", h.AppendCommunication)
	}
}

// ListVendors returns all vendors alphabetically
// @Summary      List vendors
// @Tags         vendors
// @Produce      json
// @Success      200  {array}   model.Vendor
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Vendor not found", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// CreateVendor stores a new vendor with status forced to "pending"
// @Summary      Create vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateVendorRequest  true  "Vendor payload"
// @Success      201      {object}  model.Vendor
// @Failure      400      {object}  response.ErrorBody
// @Router       /api/vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req service.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Vendor not found", "Failed to create vendor")
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// UpdateVendor replaces the vendor's contact fields
// @Summary      Update vendor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id       path      int                          true  "Vendor ID"
// @Param        payload  body      service.UpdateVendorRequest  true  "Vendor payload"
// @Success      200      {object}  model.Vendor
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Vendor not found", "Failed to update vendor")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// DeleteVendor removes a vendor; deleting a missing ID still succeeds
// @Summary      Delete vendor
// @Tags         vendors
// @Param        id  path  int  true  "Vendor ID"
// @Success      204
// @Failure      500  {object}  response.ErrorBody
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vendorService.DeleteVendor(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Vendor not found", "Failed to delete vendor")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateVendorStatus sets the vendor's approval status
// @Summary      Update vendor status
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id       path      int                                true  "Vendor ID"
// @Param        payload  body      service.UpdateVendorStatusRequest  true  "Target status"
// @Success      200      {object}  model.Vendor
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/vendors/{id}/status [put]
func (h *VendorHandler) UpdateVendorStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateVendorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	vendor, err := h.vendorService.UpdateVendorStatus(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Vendor not found", "Failed to update vendor status")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// AppendCommunication appends one entry to the vendor's communication log
// @Summary      Append a communication log entry
// @Description  Concatenates the entry onto the jsonb log array in a single atomic statement
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id       path      int                                 true  "Vendor ID"
// @Param        payload  body      service.AppendCommunicationRequest  true  "Log entry"
// @Success      200      {object}  model.Vendor
// @Failure      404      {object}  response.ErrorBody
// @Router       /api/vendors/{id}/communications [post]
func (h *VendorHandler) AppendCommunication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.AppendCommunicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	vendor, err := h.vendorService.AppendCommunication(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "Vendor not found", "Failed to add communication log")
		return
	}
	c.JSON(http.StatusOK, vendor)
}
