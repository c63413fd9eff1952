package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/service"
)

type ContractHandler struct {
	svc *service.Service
}

func NewContractHandler(svc *service.Service) *ContractHandler {
	return &ContractHandler{svc: svc}
}

// contractRequest mirrors the JSON body for contract create and update.
// TagIDs stays a pointer: absent means keep the stored list, present means
// replace it. A tagIds value that is not an array fails binding outright.
type contractRequest struct {
	Description         string               `json:"description"`
	ContractAmount      float64              `json:"contractAmount"`
	EstimatedCompletion string               `json:"estimatedCompletion"`
	VendorID            string               `json:"vendorId"`
	NewVendor           *service.VendorInput `json:"newVendor"`
	TagIDs              *[]string            `json:"tagIds"`
}

func (r *contractRequest) toInput() service.ContractInput {
	return service.ContractInput{
		Description:         r.Description,
		ContractAmount:      r.ContractAmount,
		EstimatedCompletion: r.EstimatedCompletion,
		Vendor:              service.VendorRef{ID: r.VendorID, New: r.NewVendor},
		TagIDs:              r.TagIDs,
	}
}

// List returns all contracts with derived totals and resolved references
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.svc.ListContracts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// Get returns a single populated contract
func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.svc.GetContract(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Create adds a contract, creating its vendor inline when no vendorId is
// supplied
func (h *ContractHandler) Create(c *gin.Context) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result, err := h.svc.CreateContract(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Update rewrites a contract against an existing vendor
func (h *ContractHandler) Update(c *gin.Context) {
	var req contractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	contract, err := h.svc.UpdateContract(c.Param("id"), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Delete removes a contract and best-effort deletes its stored files
func (h *ContractHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteContract(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contract deleted"})
}
