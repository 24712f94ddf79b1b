package handlers

import (
	"context"
	"errors"
	"net/http"

	"aiquizzer/internal/middleware"
	"aiquizzer/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// List returns the caller's historical results. Entries older than a day
// have already been expired by the store.
func (h *ReportHandler) List(c *gin.Context) {
	views, err := h.Reports.ResultsFor(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": views})
}

func (h *ReportHandler) ExportPDF(c *gin.Context) {
	pdf, err := h.Reports.ExportPDF(context.Background(), c.Param("id"), middleware.Username(c))
	if err != nil {
		if errors.Is(err, service.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": "This result does not belong to you."})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Result not found"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="quiz_results.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
