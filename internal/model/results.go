package model

import "time"

// Metric labels of the registration summary table.
const (
	MetricTotalPrevious = "Total in Previous Sheet"
	MetricNewUsers      = "New Users in Current Sheet"
	MetricDeparted      = "Departed Users"
)

// SummaryRow is one metric line of the registration summary table.
type SummaryRow struct {
	Metric string `json:"metric"`
	Count  int    `json:"count"`
}

// Transition is one (previous stage, current stage) cell of the flat
// pair-list table.
type Transition struct {
	Previous Stage `json:"previousStage"`
	Current  Stage `json:"currentStage"`
	Count    int   `json:"count"`
}

// StageCount is a per-stage tally, used for the departed report.
type StageCount struct {
	Stage Stage `json:"stage"`
	Count int   `json:"count"`
}

// TransitionMatrix is the complete, zero-filled count table over all stage
// pairs. Rows index the previous stage, columns the current stage, both in
// canonical order.
type TransitionMatrix struct {
	Stages []Stage `json:"stages"`
	Cells  [][]int `json:"cells"`
}

// Cell returns the count for one (previous, current) pair. Unknown stages
// count zero.
func (m TransitionMatrix) Cell(previous, current Stage) int {
	row, col := -1, -1
	for i, s := range m.Stages {
		if s == previous {
			row = i
		}
		if s == current {
			col = i
		}
	}
	if row < 0 || col < 0 {
		return 0
	}
	return m.Cells[row][col]
}

// Total sums every cell. For a well-formed comparison this equals the number
// of retained identifiers.
func (m TransitionMatrix) Total() int {
	total := 0
	for _, row := range m.Cells {
		for _, c := range row {
			total += c
		}
	}
	return total
}

// DepartedReport covers identifiers present only in the previous snapshot.
// Produced only when Options.IncludeDeparted is set.
type DepartedReport struct {
	Total   int          `json:"total"`
	ByStage []StageCount `json:"byStage"` // last-known stage, canonical order
}

// ComparisonResult bundles everything one comparison run produces.
type ComparisonResult struct {
	Summary       []SummaryRow     `json:"summary"`
	Transitions   []Transition     `json:"transitions"`
	Matrix        TransitionMatrix `json:"matrix"`
	Departed      *DepartedReport  `json:"departed,omitempty"`
	NewIDs        []string         `json:"newIds"`
	TotalPrevious int              `json:"totalPrevious"`
	TotalCurrent  int              `json:"totalCurrent"`
	TotalNew      int              `json:"totalNew"`
	TotalRetained int              `json:"totalRetained"`
}

// ExportResult represents the outcome of one export operation.
type ExportResult struct {
	Type        string    `json:"type"` // "csv", "json"
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}
