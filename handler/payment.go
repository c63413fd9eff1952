package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/service"
)

type PaymentHandler struct {
	svc *service.Service
}

func NewPaymentHandler(svc *service.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Create adds a payment to a contract
func (h *PaymentHandler) Create(c *gin.Context) {
	var req service.PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	payment, err := h.svc.AddPayment(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// Update rewrites one payment on a contract
func (h *PaymentHandler) Update(c *gin.Context) {
	var req service.PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	payment, err := h.svc.UpdatePayment(c.Param("id"), c.Param("paymentId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// Delete removes one payment from a contract
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.svc.DeletePayment(c.Param("id"), c.Param("paymentId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
