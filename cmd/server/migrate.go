package main

import (
	"workshop-site/internal/data"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if data.IsInMemory(cfg.DB) {
			log.Warn("The database is in memory; migrations are applied when the server starts.")
			return nil
		}
		log.Info("Applying database migrations...")
		if err := data.ApplyMigrations(cfg.DB); err != nil {
			return err
		}
		log.Info("Migrations applied successfully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
