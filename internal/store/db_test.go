package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stage-shift/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestComparisonLifecycle(t *testing.T) {
	initTestDB(t)

	spec := model.ComparisonJobSpec{
		Previous: model.Source{Type: "csv", URL: "prev.csv"},
		Current:  model.Source{Type: "csv", URL: "curr.csv"},
	}
	require.NoError(t, SaveComparison("job-1", spec))

	status, got, err := GetComparison("job-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", status)
	assert.Equal(t, "prev.csv", got.Previous.URL)

	require.NoError(t, UpdateComparisonStatus("job-1", "completed"))
	status, _, err = GetComparison("job-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", status)

	jobs, err := ListComparisons()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0]["id"])
}

func TestErrorsAndLogs(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveComparison("job-2", model.ComparisonJobSpec{}))

	require.NoError(t, SaveComparisonError("job-2", assert.AnError))
	errors, err := GetComparisonErrors("job-2")
	require.NoError(t, err)
	require.Len(t, errors, 1)

	require.NoError(t, SaveComparisonLog("job-2", "loading", "info", "started", map[string]interface{}{"rows": 10}))
	logs, err := GetComparisonLogs("job-2", 100)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "loading", logs[0]["stage"])
}

func TestResultRoundTrip(t *testing.T) {
	initTestDB(t)

	_, err := GetResult("job-3")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	result := &model.ComparisonResult{
		Summary:       []model.SummaryRow{{Metric: model.MetricTotalPrevious, Count: 7}},
		TotalPrevious: 7,
	}
	require.NoError(t, SaveResult("job-3", result))

	got, err := GetResult("job-3")
	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalPrevious)
	require.Len(t, got.Summary, 1)
	assert.Equal(t, model.MetricTotalPrevious, got.Summary[0].Metric)
}
