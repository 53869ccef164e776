package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sagar88.com.np/internal/content"
)

// errRejected signals that the content file loaded but dropped records
var errRejected = errors.New("content has rejected records")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a content file",
	Long:  "Loads the content file and prints every rejected record. Exits non-zero when the profile is invalid or any record is rejected.",
	RunE:  runValidate,
}

var validateContent string

func init() {
	validateCmd.Flags().StringVarP(&validateContent, "content", "c", "", "Path to content YAML or JSON (defaults to built-in content)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	snapshot, err := content.NewLoader(commandLogger(cmd)).Load(validateContent)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "profile: %s\n", snapshot.Profile.Name)
	_, _ = fmt.Fprintf(out, "projects: %d\n", len(snapshot.Projects))
	_, _ = fmt.Fprintf(out, "skills: %d\n", len(snapshot.Skills))
	_, _ = fmt.Fprintf(out, "timeline: %d experience, %d education\n",
		len(snapshot.Timeline.Experience), len(snapshot.Timeline.Education))

	if len(snapshot.Rejected) == 0 {
		_, _ = fmt.Fprintln(out, "OK")
		return nil
	}
	for _, rec := range snapshot.Rejected {
		_, _ = fmt.Fprintf(out, "REJECTED %v\n", rec)
	}
	return fmt.Errorf("%w: %d", errRejected, len(snapshot.Rejected))
}
