package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stage-shift/internal/compare"
	"stage-shift/internal/export"
	"stage-shift/internal/loader"
	"stage-shift/internal/model"
	"stage-shift/internal/store"
	"stage-shift/pkg/utils"
)

// Run executes one comparison job end to end: load both snapshots, validate
// the schema columns, run the classification-and-diff core, persist the
// result, export report files. Status and logs go to the store as each
// stage starts and finishes.
func Run(ctx context.Context, jobID string, spec model.ComparisonJobSpec, om *utils.OutputManager) (err error) {
	start := time.Now()
	fmt.Printf("🚀 Starting comparison job: %s\n", jobID)

	store.UpdateComparisonStatus(jobID, "running")
	defer func() {
		if err != nil {
			store.UpdateComparisonStatus(jobID, "failed")
			store.SaveComparisonError(jobID, err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, utils.ParseDuration(spec.JobTimeout))
	defer cancel()

	schema := spec.Schema.WithDefaults()

	// --- LOADING STAGE ---
	store.UpdateComparisonStatus(jobID, "loading")
	store.SaveComparisonLog(jobID, "loading", "info", "Loading snapshots", map[string]interface{}{
		"previous": spec.Previous.URL,
		"current":  spec.Current.URL,
	})

	var previous, current model.Snapshot
	var prevErr, currErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		previous, prevErr = loader.LoadSnapshot(ctx, "previous", spec.Previous, spec.Options)
	}()
	go func() {
		defer wg.Done()
		current, currErr = loader.LoadSnapshot(ctx, "current", spec.Current, spec.Options)
	}()
	wg.Wait()

	if prevErr != nil {
		return prevErr
	}
	if currErr != nil {
		return currErr
	}
	store.SaveComparisonLog(jobID, "loading", "info", "Snapshots loaded", map[string]interface{}{
		"previous_rows": len(previous.Rows),
		"current_rows":  len(current.Rows),
	})

	// --- VALIDATION STAGE ---
	store.UpdateComparisonStatus(jobID, "validating")
	if err := loader.CheckColumns(previous, current, schema); err != nil {
		store.SaveComparisonLog(jobID, "validation", "error", err.Error(), nil)
		return fmt.Errorf("column validation failed: %w", err)
	}
	fmt.Println("🔍 Column validation passed.")

	// --- COMPARISON STAGE ---
	store.UpdateComparisonStatus(jobID, "comparing")
	result, err := compare.Compare(ctx, previous, current, spec)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	store.SaveComparisonLog(jobID, "comparison", "info", "Comparison completed", map[string]interface{}{
		"total_previous": result.TotalPrevious,
		"total_current":  result.TotalCurrent,
		"total_new":      result.TotalNew,
		"total_retained": result.TotalRetained,
	})

	if err := store.SaveResult(jobID, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	// --- EXPORT STAGE ---
	if spec.Export != nil {
		store.UpdateComparisonStatus(jobID, "exporting")
		if spec.Export.Dir != "" {
			om = utils.NewOutputManager(spec.Export.Dir)
		}
		exportResults := export.ExportComparison(jobID, result, spec.Export.Formats, om)
		failed := 0
		for _, er := range exportResults {
			if !er.Success {
				failed++
				store.SaveComparisonError(jobID, fmt.Errorf("export %s failed: %s", er.Path, er.Error))
			}
		}
		store.SaveComparisonLog(jobID, "export", "info", "Export stage completed", map[string]interface{}{
			"files":  len(exportResults),
			"failed": failed,
		})
	}

	fmt.Printf("🏁 Comparison job %s completed in %v\n", jobID, time.Since(start))
	store.UpdateComparisonStatus(jobID, "completed")
	return nil
}
