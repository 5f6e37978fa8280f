package compare

import "stage-shift/internal/model"

// Summarize builds the registration summary table from the diff
// cardinalities. Purely presentational; no further computation.
func Summarize(totalPrevious, totalNew int) []model.SummaryRow {
	return []model.SummaryRow{
		{Metric: model.MetricTotalPrevious, Count: totalPrevious},
		{Metric: model.MetricNewUsers, Count: totalNew},
	}
}

// DepartedByStage tallies the last-known stage of departed identifiers in
// canonical order. Part of the optional attrition report.
func DepartedByStage(departed []string, previous map[string]model.Stage, order []model.Stage) []model.StageCount {
	tally := make(map[model.Stage]int, len(order))
	for _, id := range departed {
		tally[previous[id]]++
	}
	out := make([]model.StageCount, 0, len(order))
	for _, s := range order {
		out = append(out, model.StageCount{Stage: s, Count: tally[s]})
	}
	return out
}
