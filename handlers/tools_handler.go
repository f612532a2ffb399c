package handlers

import (
	"net/http"
	"strings"

	"legaladvisor-backend/models"
	"legaladvisor-backend/service"

	"github.com/gin-gonic/gin"
)

// ToolsHandler serves the tax optimizer and the legal chatbot
type ToolsHandler struct{}

// NewToolsHandler creates a new tools handler
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// OptimizeTax handles POST /api/tax/optimize
func (h *ToolsHandler) OptimizeTax(c *gin.Context) {
	var req models.TaxInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	respondOK(c, http.StatusOK, service.OptimizeTax(req))
}

// ChatRequest represents the request body for the chatbot
type ChatRequest struct {
	Question string `json:"question"`
}

// Chat handles POST /api/chat
func (h *ToolsHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respondError(c, http.StatusBadRequest, "EMPTY_QUESTION", "Question is required")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"question": req.Question,
		"answer":   service.AnswerQuestion(req.Question),
	})
}
