package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sagar88.com.np/internal/content"
	"sagar88.com.np/internal/export"
	"sagar88.com.np/internal/services"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Render the portfolio to a static directory",
	Long:  "Loads the content file (or the built-in defaults) and writes index.html, one fragment per section, portfolio.json and a copy of the static assets.",
	RunE:  runSite,
}

var (
	siteContent string
	siteOut     string
	siteStatic  string
)

func init() {
	siteCmd.Flags().StringVarP(&siteContent, "content", "c", "", "Path to content YAML or JSON (defaults to built-in content)")
	siteCmd.Flags().StringVarP(&siteOut, "out", "o", "", "Output directory (required)")
	siteCmd.Flags().StringVar(&siteStatic, "static", "static", "Static asset directory copied to <out>/static")

	if err := siteCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, _ []string) error {
	logger := commandLogger(cmd)
	snapshot, err := content.NewLoader(logger).Load(siteContent)
	if err != nil {
		return err
	}

	static := siteStatic
	if _, err := os.Stat(static); err != nil && !cmd.Flags().Changed("static") {
		logger.Warn("default static directory not found, assets not copied", slog.String("dir", static))
		static = ""
	}

	result, err := export.Site(cmd.Context(), siteOut, static, services.NewPortfolioService(snapshot).PageData())
	if err != nil {
		return fmt.Errorf("failed to export site: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, f := range result.Files {
		_, _ = fmt.Fprintf(out, "  Created %s\n", filepath.Join(siteOut, f))
	}
	if n := len(snapshot.Rejected); n > 0 {
		_, _ = fmt.Fprintf(out, "Done with %d rejected record(s), run validate for details\n", n)
		return nil
	}
	_, _ = fmt.Fprintln(out, "Done!")
	return nil
}
