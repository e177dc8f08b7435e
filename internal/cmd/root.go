// Package cmd implements the appforge command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appforge",
	Short: "appforge - scaffold full applications from a requirement file",
	Long: `appforge turns a structured application requirement (tables, API
endpoints, UI components) into frontend, backend and database source trees,
through a registry of pluggable tool providers.

Generation is fully in-process: providers are local stubs, and "deployment"
fabricates repository metadata without touching the network.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(watchCmd)
}
