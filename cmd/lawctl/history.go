package main

import (
	"fmt"

	"legaladvisor-backend/repository"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <username>",
	Short: "Print a user's query history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")

		db, cleanup, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := repository.NewQueryRepository(db).ListByUsername(ctx, args[0], limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No queries yet.")
			return nil
		}
		for i, record := range records {
			fmt.Fprintf(out, "%d. %s\n", i+1, record.Query)
		}
		return nil
	},
}
