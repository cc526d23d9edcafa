// Package cmd implements the CLI commands for the cloudtrack server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cloudtrack",
	Short: "Track product prices and stock with alerting",
	Long: "An API-first service that tracks e-commerce product listings, " +
		"re-evaluates their price and stock on a schedule, and sends alerts " +
		"by email or Telegram when a target is hit or an item comes back in stock.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
