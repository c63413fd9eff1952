package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/service"
)

type ReportHandler struct {
	svc *service.Service
}

func NewReportHandler(svc *service.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// VendorSpend returns payments accumulated per vendor plus grand totals
func (h *ReportHandler) VendorSpend(c *gin.Context) {
	report, err := h.svc.SpendByVendor()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// TagSpend returns payments accumulated per tag. Buckets overlap: a
// multi-tagged contract counts fully toward each of its tags.
func (h *ReportHandler) TagSpend(c *gin.Context) {
	report, err := h.svc.SpendByTag()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
