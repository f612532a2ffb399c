package main

import (
	"fmt"
	"strings"

	"legaladvisor-backend/research"
	"legaladvisor-backend/service"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <case details>",
	Short: "Analyze a legal question offline and print the text report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jurisdiction, _ := cmd.Flags().GetString("jurisdiction")
		web, _ := cmd.Flags().GetBool("web")

		repo, err := openLawRepository()
		if err != nil {
			return err
		}

		opts := []service.AnalysisServiceOption{
			service.AnalysisWithLawStore(repo),
			service.AnalysisWithLogger(logger),
		}
		if web {
			client := research.NewClient(
				research.WithEndpoint(cfg.ResearchEndpoint),
				research.WithMaxParagraphs(cfg.ScrapeParagraphs),
				research.WithLogger(logger),
			)
			opts = append(opts,
				service.AnalysisWithResearcher(client),
				service.AnalysisWithMaxWebResults(cfg.ResearchMaxResults),
			)
		}

		result := service.NewAnalysisService(opts...).Analyze(cmd.Context(), service.AnalyzeRequest{
			Text:         strings.Join(args, " "),
			Jurisdiction: jurisdiction,
		})

		out := cmd.OutOrStdout()
		if len(result.MatchedLaws) == 0 {
			fmt.Fprintln(out, "No relevant laws found.")
		}
		fmt.Fprint(out, service.BuildReport(result))
		return nil
	},
}
