package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/service"
)

type VendorHandler struct {
	svc *service.Service
}

func NewVendorHandler(svc *service.Service) *VendorHandler {
	return &VendorHandler{svc: svc}
}

// List returns all vendors
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.svc.ListVendors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// Create adds a new vendor
func (h *VendorHandler) Create(c *gin.Context) {
	var req service.VendorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	vendor, err := h.svc.CreateVendor(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// Update rewrites an existing vendor
func (h *VendorHandler) Update(c *gin.Context) {
	var req service.VendorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	vendor, err := h.svc.UpdateVendor(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// Delete removes a vendor not referenced by any contract
func (h *VendorHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteVendor(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted"})
}
