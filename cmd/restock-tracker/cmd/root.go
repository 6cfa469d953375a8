// Package cmd implements the CLI commands for restock-tracker.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restock-tracker",
	Short: "Watch a storefront for products coming back in stock",
	Long: "An API-first service that polls a storefront inventory feed on a schedule, " +
		"detects products transitioning from out of stock to in stock, and notifies " +
		"subscribers by email and Telegram.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
