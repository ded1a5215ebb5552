package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/service"
)

type exportRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

func (h *Handler) exportReport(c *gin.Context) {
	h.export(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", h.reports.ExportExcel)
}

func (h *Handler) exportReportPDF(c *gin.Context) {
	h.export(c, "application/pdf", h.reports.ExportPDF)
}

func (h *Handler) export(
	c *gin.Context,
	contentType string,
	generate func(ctx context.Context, year int, month time.Month) (*service.ExportResult, error),
) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Month < 1 || req.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	result, err := generate(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, contentType, result.Content)
}
