// Command lawctl administers the legal advisor backend: schema creation,
// law file seeding, query history inspection and offline analysis.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"legaladvisor-backend/config"
	"legaladvisor-backend/repository"
	"legaladvisor-backend/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lawctl",
	Short: "Administer the legal advisor backend",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadDotEnv()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		zc := zap.NewDevelopmentConfig()
		if !verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	seedCmd.Flags().Bool("force", false, "Overwrite existing law files")
	historyCmd.Flags().Int("limit", 0, "Maximum number of queries to show (0 = all)")
	analyzeCmd.Flags().StringP("jurisdiction", "j", "USA", "Jurisdiction whose local laws are searched")
	analyzeCmd.Flags().Bool("web", false, "Include web research")

	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDB connects to Postgres and returns a database/sql handle over the pool
func openDB(ctx context.Context) (*sql.DB, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	cleanup := func() {
		db.Close()
		pool.Close()
	}
	return db, cleanup, nil
}

func openLawRepository() (*repository.LawRepository, error) {
	st, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return repository.NewLawRepository(st, cfg.LawsPrefix, logger), nil
}
