package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig carries the handlers and middleware mounted by NewRouter
type RouterConfig struct {
	Analysis    *AnalysisHandler
	Reports     *ReportHandler // optional
	Tools       *ToolsHandler
	RateLimiter *RateLimiter // optional
	Logger      *zap.Logger
}

// NewRouter builds the gin engine with all API routes
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware())
	}
	{
		// Analysis endpoints
		api.POST("/analyze", cfg.Analysis.Analyze)
		api.GET("/laws", cfg.Analysis.ListLaws)
		api.GET("/jurisdictions", cfg.Analysis.ListJurisdictions)
		api.GET("/history", cfg.Analysis.GetHistory)

		// Report endpoints
		if cfg.Reports != nil {
			api.GET("/reports/:id", cfg.Reports.GetReport)
			api.DELETE("/reports/:id", cfg.Reports.DeleteReport)
		}

		// Tool endpoints
		api.POST("/tax/optimize", cfg.Tools.OptimizeTax)
		api.POST("/chat", cfg.Tools.Chat)
	}

	return r
}
