package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the stageshift CLI: a one-shot comparison of two
// snapshot files, without going through the job service.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stageshift",
		Short:   "Compare two registrant snapshots and report stage transitions",
		Version: version,
		Long: `Stageshift compares a previous and a current snapshot of registrants,
classifies every registrant into their furthest-reached signup stage, and
reports new arrivals plus the full stage transition matrix.`,
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a previous and a current snapshot file",
		RunE:  RunCompare,
	}
	compareCmd.Flags().String("prev", "", "Previous snapshot file or URL (required)")
	compareCmd.Flags().String("curr", "", "Current snapshot file or URL (required)")
	compareCmd.Flags().String("type", "", "Source type: csv|json|xlsx (default: from file extension)")
	compareCmd.Flags().String("prev-sheet", "", "Worksheet name in the previous workbook (xlsx)")
	compareCmd.Flags().String("curr-sheet", "", "Worksheet name in the current workbook (xlsx)")
	compareCmd.Flags().String("id-column", "", "Identifier column name (default: Email_ID)")
	compareCmd.Flags().String("completed-value", "", "Status value that marks a step completed (default: Completed)")
	compareCmd.Flags().Bool("departed", false, "Also report identifiers that left between snapshots")
	compareCmd.Flags().Bool("lenient", false, "Tolerate malformed styling metadata in xlsx input")
	compareCmd.Flags().String("out", "", "Directory to export CSV report files into")
	compareCmd.Flags().StringSlice("format", []string{"csv"}, "Export formats: csv,json")
	compareCmd.Flags().String("config", "", "Path to a YAML config file")
	compareCmd.MarkFlagRequired("prev")
	compareCmd.MarkFlagRequired("curr")

	rootCmd.AddCommand(compareCmd)
	return rootCmd
}
