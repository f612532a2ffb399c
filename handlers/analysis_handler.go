package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"legaladvisor-backend/models"
	"legaladvisor-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultJurisdiction is used when a request names none
const DefaultJurisdiction = "USA"

// QueryHistory lists a user's past queries
type QueryHistory interface {
	ListByUsername(ctx context.Context, username string, limit int) ([]*models.QueryRecord, error)
}

// AnalysisHandler handles HTTP requests for legal analysis
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	reportService   *service.ReportService
	history         QueryHistory
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler. reportService and history may be nil.
func NewAnalysisHandler(analysisService *service.AnalysisService, reportService *service.ReportService, history QueryHistory, logger *zap.Logger) *AnalysisHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisHandler{
		analysisService: analysisService,
		reportService:   reportService,
		history:         history,
		logger:          logger,
	}
}

// AnalyzeRequest represents the request body for an analysis
type AnalyzeRequest struct {
	Text         string   `json:"text"`
	Jurisdiction string   `json:"jurisdiction"`
	Username     string   `json:"username"`
	URLs         []string `json:"urls"`
}

// AnalyzeResponse is the analysis result plus the stored report ID, if any
type AnalyzeResponse struct {
	*service.AnalyzeResult
	ReportID string `json:"report_id,omitempty"`
}

// Analyze handles POST /api/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondError(c, http.StatusBadRequest, "EMPTY_TEXT", "Case details are required")
		return
	}

	jurisdiction := strings.TrimSpace(req.Jurisdiction)
	if jurisdiction == "" {
		jurisdiction = DefaultJurisdiction
	}

	result := h.analysisService.Analyze(c.Request.Context(), service.AnalyzeRequest{
		Text:         req.Text,
		Jurisdiction: jurisdiction,
		Username:     req.Username,
		URLs:         req.URLs,
	})

	resp := AnalyzeResponse{AnalyzeResult: result}
	if h.reportService != nil {
		id, err := h.reportService.Save(c.Request.Context(), result)
		if err != nil {
			// Log error but don't fail the analysis
			h.logger.Warn("failed to store analysis report", zap.Error(err))
		} else {
			resp.ReportID = id.String()
		}
	}

	respondOK(c, http.StatusOK, resp)
}

// ListLaws handles GET /api/laws
func (h *AnalysisHandler) ListLaws(c *gin.Context) {
	jurisdiction := strings.TrimSpace(c.Query("jurisdiction"))
	if jurisdiction == "" {
		jurisdiction = DefaultJurisdiction
	}

	corpus := h.analysisService.LoadCorpus(c.Request.Context(), jurisdiction)
	local := corpus.Local
	if local == nil {
		local = []models.Law{}
	}

	respondOK(c, http.StatusOK, gin.H{
		"jurisdiction":   jurisdiction,
		"local":          local,
		"global_legal":   corpus.GlobalLegal,
		"global_illegal": corpus.GlobalIllegal,
	})
}

// ListJurisdictions handles GET /api/jurisdictions
func (h *AnalysisHandler) ListJurisdictions(c *gin.Context) {
	respondOK(c, http.StatusOK, models.Jurisdictions)
}

// GetHistory handles GET /api/history
func (h *AnalysisHandler) GetHistory(c *gin.Context) {
	if h.history == nil {
		respondError(c, http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "Query history is not configured")
		return
	}

	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		username = models.AnonymousUser
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.history.ListByUsername(c.Request.Context(), username, limit)
	if err != nil {
		h.logger.Error("failed to list query history", zap.String("username", username), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "RETRIEVAL_FAILED", "Failed to load query history")
		return
	}

	respondOK(c, http.StatusOK, records)
}
