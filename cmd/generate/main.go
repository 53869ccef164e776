// Package main provides the generate CLI for exporting and checking portfolio content.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sagar88.com.np/internal/logging"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:          "generate",
	Short:        "Portfolio site generator",
	Long:         "Renders the portfolio into a static directory, validates content files and lists the icon catalog.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

// commandLogger writes diagnostics to the command's stderr
func commandLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(logLevel, logFormat, cmd.ErrOrStderr())
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
