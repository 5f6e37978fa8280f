package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stage-shift/internal/export"
	"stage-shift/internal/model"
	"stage-shift/internal/store"
	"stage-shift/pkg/utils"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.InitDB(filepath.Join(dir, "jobs.db")))

	prev := writeCSV(t, dir, "prev.csv",
		"Email_ID,Personal_Status,Academic_Status,Upload_Status,Payment_Status\n"+
			"id1,,,,Completed\n"+
			"id2,,Completed,,\n")
	curr := writeCSV(t, dir, "curr.csv",
		"Email_ID,Personal_Status,Academic_Status,Upload_Status,Payment_Status\n"+
			"id1,,,,Completed\n"+
			"id2,,,Completed,\n"+
			"id3,Completed,,,\n")

	jobID := "run-e2e"
	spec := model.ComparisonJobSpec{
		Previous: model.Source{Type: "csv", URL: prev},
		Current:  model.Source{Type: "csv", URL: curr},
		Export:   &model.Export{Formats: []string{"csv"}},
	}
	require.NoError(t, store.SaveComparison(jobID, spec))

	om := utils.NewOutputManager(filepath.Join(dir, "output"))
	require.NoError(t, Run(context.Background(), jobID, spec, om))

	status, _, err := store.GetComparison(jobID)
	require.NoError(t, err)
	assert.Equal(t, "completed", status)

	result, err := store.GetResult(jobID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalPrevious)
	assert.Equal(t, 1, result.TotalNew)
	assert.Equal(t, []string{"id3"}, result.NewIDs)
	assert.Equal(t, 1, result.Matrix.Cell(model.StagePayment, model.StagePayment))
	assert.Equal(t, 1, result.Matrix.Cell(model.StageAcademic, model.StageUpload))
	assert.Equal(t, 2, result.Matrix.Total())

	for _, name := range []string{export.SummaryFile, export.TransitionsFile, export.MatrixFile} {
		_, err := os.Stat(filepath.Join(dir, "output", jobID, name))
		assert.NoError(t, err, "expected export file %s", name)
	}
}

func TestRunMissingColumns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.InitDB(filepath.Join(dir, "jobs.db")))

	prev := writeCSV(t, dir, "prev.csv", "Email_ID\nid1\n")
	curr := writeCSV(t, dir, "curr.csv", "Email_ID\nid1\n")

	jobID := "run-missing"
	spec := model.ComparisonJobSpec{
		Previous: model.Source{Type: "csv", URL: prev},
		Current:  model.Source{Type: "csv", URL: curr},
	}
	require.NoError(t, store.SaveComparison(jobID, spec))

	err := Run(context.Background(), jobID, spec, utils.NewOutputManager(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column validation failed")

	status, _, err := store.GetComparison(jobID)
	require.NoError(t, err)
	assert.Equal(t, "failed", status)

	errors, err := store.GetComparisonErrors(jobID)
	require.NoError(t, err)
	assert.NotEmpty(t, errors)
}
