package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"stage-shift/internal/compare"
	"stage-shift/internal/config"
	"stage-shift/internal/export"
	"stage-shift/internal/loader"
	"stage-shift/internal/model"
	"stage-shift/pkg/utils"
)

// RunCompare loads both snapshots, runs the comparison and prints the three
// result tables. With --out it also writes the report files.
func RunCompare(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	schema := cfg.Schema
	if idColumn, _ := cmd.Flags().GetString("id-column"); idColumn != "" {
		schema.IDColumn = idColumn
	}
	if completed, _ := cmd.Flags().GetString("completed-value"); completed != "" {
		schema.CompletedValue = completed
	}

	prevURL, _ := cmd.Flags().GetString("prev")
	currURL, _ := cmd.Flags().GetString("curr")
	srcType, _ := cmd.Flags().GetString("type")
	prevSheet, _ := cmd.Flags().GetString("prev-sheet")
	currSheet, _ := cmd.Flags().GetString("curr-sheet")
	departed, _ := cmd.Flags().GetBool("departed")
	lenient, _ := cmd.Flags().GetBool("lenient")

	spec := model.ComparisonJobSpec{
		Previous: model.Source{Type: sourceType(srcType, prevURL), URL: prevURL, Sheet: prevSheet},
		Current:  model.Source{Type: sourceType(srcType, currURL), URL: currURL, Sheet: currSheet},
		Schema:   schema,
		Options:  model.Options{IncludeDeparted: departed, Lenient: lenient},
	}

	ctx := cmd.Context()
	previous, err := loader.LoadSnapshot(ctx, "previous", spec.Previous, spec.Options)
	if err != nil {
		return err
	}
	current, err := loader.LoadSnapshot(ctx, "current", spec.Current, spec.Options)
	if err != nil {
		return err
	}
	if err := loader.CheckColumns(previous, current, schema); err != nil {
		return err
	}

	result, err := compare.Compare(ctx, previous, current, spec)
	if err != nil {
		return err
	}

	printResult(cmd, result)

	if outDir, _ := cmd.Flags().GetString("out"); outDir != "" {
		formats, _ := cmd.Flags().GetStringSlice("format")
		om := utils.NewOutputManager(outDir)
		jobID := time.Now().Format("20060102-150405")
		for _, er := range export.ExportComparison(jobID, result, formats, om) {
			if !er.Success {
				return fmt.Errorf("export failed: %s: %s", er.Path, er.Error)
			}
		}
		cmd.Printf("\nReports written to %s\n", filepath.Join(outDir, jobID))
	}
	return nil
}

// sourceType resolves an explicit --type flag, falling back to the file
// extension and finally to csv.
func sourceType(explicit, url string) string {
	if explicit != "" {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(url)) {
	case ".xlsx", ".xls":
		return "xlsx"
	case ".json":
		return "json"
	default:
		return "csv"
	}
}

func printResult(cmd *cobra.Command, res *model.ComparisonResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "📌 Registration Summary")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Metric\tCount")
	for _, row := range res.Summary {
		fmt.Fprintf(w, "%s\t%d\n", row.Metric, row.Count)
	}
	w.Flush()

	fmt.Fprintln(out, "\n🔁 Stage Transitions")
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Previous Stage\tCurrent Stage\tCount")
	for _, tr := range res.Transitions {
		if tr.Count > 0 {
			fmt.Fprintf(w, "%s\t%s\t%d\n", tr.Previous, tr.Current, tr.Count)
		}
	}
	w.Flush()

	fmt.Fprintln(out, "\n📊 Stage Transition Matrix")
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "Previous Stage")
	for _, s := range res.Matrix.Stages {
		fmt.Fprintf(w, "\t%s", s)
	}
	fmt.Fprintln(w)
	for i, s := range res.Matrix.Stages {
		fmt.Fprintf(w, "%s", s)
		for _, c := range res.Matrix.Cells[i] {
			fmt.Fprintf(w, "\t%d", c)
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	if res.Departed != nil {
		fmt.Fprintln(out, "\n👋 Departed Users")
		w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Last Known Stage\tCount")
		for _, sc := range res.Departed.ByStage {
			fmt.Fprintf(w, "%s\t%d\n", sc.Stage, sc.Count)
		}
		w.Flush()
	}
}
