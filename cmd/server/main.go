package main

import (
	"fmt"
	"os"
	"workshop-site/internal/config"
	"workshop-site/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "workshop-site",
	Short: "Public site and operator dashboard for the workshop studio",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log = logger.New(cfg.Log, nil)
		return nil
	},
	SilenceUsage: true,
	// Running without a subcommand serves the site.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// The logger may not be initialized yet.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
