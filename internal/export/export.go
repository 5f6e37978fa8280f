package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"stage-shift/internal/model"
	"stage-shift/pkg/utils"
)

// Export file names. Kept stable so downstream consumers can rely on them.
const (
	SummaryFile     = "registration_summary.csv"
	TransitionsFile = "stage_transitions.csv"
	MatrixFile      = "stage_matrix.csv"
	DepartedFile    = "departed_users.csv"
	ResultFile      = "comparison_result.json"
)

// ExportComparison writes the result tables of one comparison job to disk.
// CSV produces one file per table; JSON produces the whole result in one
// file. One ExportResult is returned per file attempted, failures included.
func ExportComparison(jobID string, res *model.ComparisonResult, formats []string, om *utils.OutputManager) []model.ExportResult {
	if len(formats) == 0 {
		formats = []string{"csv"}
	}

	var results []model.ExportResult
	for _, format := range formats {
		switch format {
		case "csv":
			results = append(results, exportCSVTables(jobID, res, om)...)
		case "json":
			results = append(results, exportJSON(jobID, res, om))
		default:
			results = append(results, model.ExportResult{
				Type:       format,
				Success:    false,
				Error:      fmt.Sprintf("unknown export format: %s", format),
				ExportedAt: time.Now(),
			})
		}
	}

	for _, r := range results {
		if r.Success {
			fmt.Printf("✅ Export: %d records written to %s (%s)\n", r.RecordCount, r.Path, r.Type)
		} else {
			fmt.Printf("❌ Export failed for %s: %s\n", r.Path, r.Error)
		}
	}
	return results
}

func exportCSVTables(jobID string, res *model.ComparisonResult, om *utils.OutputManager) []model.ExportResult {
	results := []model.ExportResult{
		writeCSV(jobID, SummaryFile, om, summaryRows(res.Summary)),
		writeCSV(jobID, TransitionsFile, om, transitionRows(res.Transitions)),
		writeCSV(jobID, MatrixFile, om, matrixRows(res.Matrix)),
	}
	if res.Departed != nil {
		results = append(results, writeCSV(jobID, DepartedFile, om, departedRows(res.Departed)))
	}
	return results
}

func summaryRows(summary []model.SummaryRow) [][]string {
	rows := [][]string{{"Metric", "Count"}}
	for _, s := range summary {
		rows = append(rows, []string{s.Metric, strconv.Itoa(s.Count)})
	}
	return rows
}

func transitionRows(transitions []model.Transition) [][]string {
	rows := [][]string{{"Previous Stage", "Current Stage", "Count"}}
	for _, tr := range transitions {
		rows = append(rows, []string{string(tr.Previous), string(tr.Current), strconv.Itoa(tr.Count)})
	}
	return rows
}

func matrixRows(m model.TransitionMatrix) [][]string {
	header := []string{"Previous Stage"}
	for _, s := range m.Stages {
		header = append(header, string(s))
	}
	rows := [][]string{header}
	for i, s := range m.Stages {
		row := []string{string(s)}
		for _, c := range m.Cells[i] {
			row = append(row, strconv.Itoa(c))
		}
		rows = append(rows, row)
	}
	return rows
}

func departedRows(dep *model.DepartedReport) [][]string {
	rows := [][]string{{"Last Known Stage", "Count"}}
	for _, sc := range dep.ByStage {
		rows = append(rows, []string{string(sc.Stage), strconv.Itoa(sc.Count)})
	}
	return rows
}

func writeCSV(jobID, fileName string, om *utils.OutputManager, rows [][]string) model.ExportResult {
	result := model.ExportResult{Type: "csv", ExportedAt: time.Now()}

	path, err := om.GetOutputFilePath(jobID, fileName)
	if err != nil {
		result.Path = fileName
		result.Error = err.Error()
		return result
	}
	result.Path = path

	file, err := os.Create(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create file: %v", err)
		return result
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		result.Error = fmt.Sprintf("failed to write rows: %v", err)
		return result
	}

	result.Success = true
	result.RecordCount = len(rows) - 1 // minus header
	return result
}

func exportJSON(jobID string, res *model.ComparisonResult, om *utils.OutputManager) model.ExportResult {
	result := model.ExportResult{Type: "json", ExportedAt: time.Now()}

	path, err := om.GetOutputFilePath(jobID, ResultFile)
	if err != nil {
		result.Path = ResultFile
		result.Error = err.Error()
		return result
	}
	result.Path = path

	file, err := os.Create(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create file: %v", err)
		return result
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	payload := map[string]interface{}{
		"export_info": map[string]interface{}{
			"job_id":      jobID,
			"exported_at": time.Now().UTC(),
			"export_type": "comparison_result",
		},
		"result": res,
	}
	if err := encoder.Encode(payload); err != nil {
		result.Error = fmt.Sprintf("failed to encode JSON: %v", err)
		return result
	}

	result.Success = true
	result.RecordCount = len(res.Transitions)
	return result
}
