package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stage-shift/internal/model"
	"stage-shift/pkg/utils"
)

func sampleResult() *model.ComparisonResult {
	order := model.CanonicalStages()
	cells := make([][]int, len(order))
	for i := range cells {
		cells[i] = make([]int, len(order))
	}
	cells[4][4] = 1 // Payment -> Payment
	cells[2][3] = 1 // Academic -> Upload

	var transitions []model.Transition
	for i, prev := range order {
		for j, curr := range order {
			transitions = append(transitions, model.Transition{Previous: prev, Current: curr, Count: cells[i][j]})
		}
	}

	return &model.ComparisonResult{
		Summary: []model.SummaryRow{
			{Metric: model.MetricTotalPrevious, Count: 2},
			{Metric: model.MetricNewUsers, Count: 1},
		},
		Transitions:   transitions,
		Matrix:        model.TransitionMatrix{Stages: order, Cells: cells},
		TotalPrevious: 2,
		TotalNew:      1,
		TotalRetained: 2,
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCSVTables(t *testing.T) {
	om := utils.NewOutputManager(t.TempDir())
	results := ExportComparison("job-1", sampleResult(), []string{"csv"}, om)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Success, "export of %s failed: %s", r.Path, r.Error)
	}

	summary := readCSV(t, filepath.Join(om.BaseOutputDir, "job-1", SummaryFile))
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"Metric", "Count"}, summary[0])
	assert.Equal(t, []string{model.MetricTotalPrevious, "2"}, summary[1])

	transitions := readCSV(t, filepath.Join(om.BaseOutputDir, "job-1", TransitionsFile))
	require.Len(t, transitions, 26) // header + all 25 cells
	assert.Equal(t, []string{"Previous Stage", "Current Stage", "Count"}, transitions[0])

	matrix := readCSV(t, filepath.Join(om.BaseOutputDir, "job-1", MatrixFile))
	require.Len(t, matrix, 6) // header + 5 stage rows
	assert.Equal(t, "Previous Stage", matrix[0][0])
	assert.Equal(t, "1", matrix[5][5]) // Payment -> Payment
	assert.Equal(t, "1", matrix[3][4]) // Academic -> Upload
}

func TestExportJSON(t *testing.T) {
	om := utils.NewOutputManager(t.TempDir())
	results := ExportComparison("job-2", sampleResult(), []string{"json"}, om)

	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	data, err := os.ReadFile(filepath.Join(om.BaseOutputDir, "job-2", ResultFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"comparison_result"`)
	assert.Contains(t, string(data), model.MetricNewUsers)
}

func TestExportDepartedTable(t *testing.T) {
	res := sampleResult()
	res.Departed = &model.DepartedReport{
		Total: 1,
		ByStage: []model.StageCount{
			{Stage: model.StageRegistered, Count: 0},
			{Stage: model.StagePersonal, Count: 1},
		},
	}

	om := utils.NewOutputManager(t.TempDir())
	results := ExportComparison("job-3", res, []string{"csv"}, om)
	require.Len(t, results, 4)

	departed := readCSV(t, filepath.Join(om.BaseOutputDir, "job-3", DepartedFile))
	require.Len(t, departed, 3)
	assert.Equal(t, []string{string(model.StagePersonal), "1"}, departed[2])
}

func TestExportUnknownFormat(t *testing.T) {
	om := utils.NewOutputManager(t.TempDir())
	results := ExportComparison("job-4", sampleResult(), []string{"xml"}, om)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "unknown export format")
}
