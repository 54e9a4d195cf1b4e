package main

import (
	"time"
	"workshop-site/internal/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load site content from a YAML seed file and its markdown posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := seed.Load(args[0])
		if err != nil {
			return err
		}
		a, err := openApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()
		return seed.Apply(cmd.Context(), a.repos, site, time.Now(), log)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
