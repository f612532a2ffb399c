package main

import (
	"context"
	"log"

	"legaladvisor-backend/config"
	"legaladvisor-backend/handlers"
	"legaladvisor-backend/keyword"
	"legaladvisor-backend/repository"
	"legaladvisor-backend/research"
	"legaladvisor-backend/service"
	"legaladvisor-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	envLoaded := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Warn("no .env file found, using environment variables")
	}

	// Initialize database connections
	pool, err := initPostgres(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to initialize Postgres", zap.Error(err))
	}
	defer pool.Close()
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	// Initialize storage
	fileStorage, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	logger.Info("storage initialized", zap.String("type", string(cfg.Storage.Type)))

	// Initialize repositories
	queryRepo := repository.NewQueryRepository(db)
	if err := queryRepo.CreateSchema(context.Background()); err != nil {
		logger.Warn("failed to ensure query_history schema", zap.Error(err))
	}
	lawRepo := repository.NewLawRepository(fileStorage, cfg.LawsPrefix, logger)

	// Initialize collaborators
	extractor, err := initExtractor(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize keyword extractor", zap.Error(err))
	}

	researchClient := research.NewClient(
		research.WithEndpoint(cfg.ResearchEndpoint),
		research.WithMaxParagraphs(cfg.ScrapeParagraphs),
		research.WithLogger(logger),
	)

	// Initialize services
	analysisService := service.NewAnalysisService(
		service.AnalysisWithExtractor(extractor),
		service.AnalysisWithLawStore(lawRepo),
		service.AnalysisWithResearcher(researchClient),
		service.AnalysisWithScraper(researchClient),
		service.AnalysisWithQueryRecorder(queryRepo),
		service.AnalysisWithMaxWebResults(cfg.ResearchMaxResults),
		service.AnalysisWithLogger(logger),
	)
	reportService := service.NewReportService(service.ReportWithStorage(fileStorage))

	// Initialize handlers
	router := handlers.NewRouter(handlers.RouterConfig{
		Analysis:    handlers.NewAnalysisHandler(analysisService, reportService, queryRepo, logger),
		Reports:     handlers.NewReportHandler(reportService, logger),
		Tools:       handlers.NewToolsHandler(),
		RateLimiter: handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:      logger,
	})

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func initPostgres(connString string, logger *zap.Logger) (*pgxpool.Pool, error) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("Postgres connection established")
	return pool, nil
}

// initExtractor prefers Gemini when an API key is configured and always keeps
// the rule-based extractor as a fallback
func initExtractor(cfg *config.Config, logger *zap.Logger) (keyword.Extractor, error) {
	rules := keyword.NewRuleExtractor()
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, using rule-based keyword extraction")
		return rules, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}

	logger.Info("Gemini client initialized", zap.String("model", cfg.GeminiModel))
	return keyword.NewFallbackExtractor(keyword.NewGeminiExtractor(client, cfg.GeminiModel), rules, logger), nil
}
