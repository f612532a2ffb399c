package main

import (
	"legaladvisor-backend/models"
	"legaladvisor-backend/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write sample law files for every jurisdiction that has none",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		force, _ := cmd.Flags().GetBool("force")

		repo, err := openLawRepository()
		if err != nil {
			return err
		}

		for _, jurisdiction := range models.Jurisdictions {
			if !force {
				exists, err := repo.Exists(ctx, jurisdiction)
				if err != nil {
					return err
				}
				if exists {
					logger.Debug("law file exists, skipping", zap.String("jurisdiction", jurisdiction))
					continue
				}
			}

			if err := repo.Save(ctx, jurisdiction, repository.SampleLaws()); err != nil {
				return err
			}
			logger.Info("seeded sample laws", zap.String("jurisdiction", jurisdiction))
		}
		return nil
	},
}
