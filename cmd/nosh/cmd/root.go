// Package cmd provides the CLI commands for nosh.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "nosh",
	Short: "nosh - discover your next favorite dish",
	Long: `nosh is a terminal food discovery app. Swipe through dishes,
track your taste profile, and get restaurant recommendations
matched to your liked cuisines and current mood.

State lives under .nosh/ in the working directory: config.yaml,
session.json, logs/ and cache/.`,
	// When nosh is called with no subcommand, start the TUI (same as "nosh swipe")
	RunE: runRoot,
}

// runRoot is called when nosh is invoked with no subcommand.
func runRoot(cmd *cobra.Command, args []string) error {
	return runSwipe(cmd, args)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default .nosh/config.yaml)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("nosh {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
