package compare

import "stage-shift/internal/model"

// ProjectMatrix renders aggregated pair counts onto the complete stage grid.
// Every (previous, current) cell appears, zero when never observed, rows and
// columns both in the supplied canonical order. Pairs whose stages are not
// in the order are dropped; with a rule chain and order built from the same
// schema that cannot happen.
func ProjectMatrix(counts map[StagePair]int, order []model.Stage) model.TransitionMatrix {
	cells := make([][]int, len(order))
	for i := range cells {
		cells[i] = make([]int, len(order))
	}

	pos := make(map[model.Stage]int, len(order))
	for i, s := range order {
		pos[s] = i
	}

	for pair, n := range counts {
		row, ok := pos[pair.Previous]
		if !ok {
			continue
		}
		col, ok := pos[pair.Current]
		if !ok {
			continue
		}
		cells[row][col] += n
	}

	stages := make([]model.Stage, len(order))
	copy(stages, order)
	return model.TransitionMatrix{Stages: stages, Cells: cells}
}

// PairList is the flat form of the same aggregation: one (previous, current,
// count) triple per cell in canonical row-major order, zero-filled like the
// matrix. Both forms always agree cell for cell.
func PairList(counts map[StagePair]int, order []model.Stage) []model.Transition {
	list := make([]model.Transition, 0, len(order)*len(order))
	for _, prev := range order {
		for _, curr := range order {
			list = append(list, model.Transition{
				Previous: prev,
				Current:  curr,
				Count:    counts[StagePair{Previous: prev, Current: curr}],
			})
		}
	}
	return list
}
