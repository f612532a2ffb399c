package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"legaladvisor-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportHandler handles HTTP requests for stored analysis reports
type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reportService: reportService, logger: logger}
}

// GetReport handles GET /api/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid report ID format")
		return
	}

	reader, err := h.reportService.Open(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Report not found")
			return
		}
		h.logger.Error("failed to open report", zap.String("id", id.String()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", fmt.Sprintf("Failed to download report: %v", err))
		return
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", fmt.Sprintf("Failed to read report: %v", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", service.ReportFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
}

// DeleteReport handles DELETE /api/reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid report ID format")
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete report", zap.String("id", id.String()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
