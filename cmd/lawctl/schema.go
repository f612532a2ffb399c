package main

import (
	"legaladvisor-backend/repository"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the query_history table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, cleanup, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := repository.NewQueryRepository(db).CreateSchema(ctx); err != nil {
			return err
		}
		logger.Info("query_history table ready")
		return nil
	},
}
