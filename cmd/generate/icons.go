package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sagar88.com.np/internal/icons"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Print the icon catalog as markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), icons.CatalogMarkdown())
		return err
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)
}
