package compare

import (
	"context"

	"stage-shift/internal/model"
)

// Compare runs the full classification-and-diff over two decoded snapshots:
// classify each snapshot, split current's identifiers into new and retained,
// count stage pairs over retained identifiers, and project the complete
// transition matrix. The inputs are borrowed, never mutated; every output
// collection is freshly built.
func Compare(ctx context.Context, previous, current model.Snapshot, spec model.ComparisonJobSpec) (*model.ComparisonResult, error) {
	schema := spec.Schema.WithDefaults()
	classifier := NewClassifier(schema)
	order := model.CanonicalStages()

	prevStages := ClassifySnapshot(ctx, classifier, previous, spec.Workers)
	currStages := ClassifySnapshot(ctx, classifier, current, spec.Workers)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prevIndex, prevIDs, err := StageIndex(previous, prevStages, schema.IDColumn)
	if err != nil {
		return nil, err
	}
	currIndex, currIDs, err := StageIndex(current, currStages, schema.IDColumn)
	if err != nil {
		return nil, err
	}

	diff := DiffIdentifiers(prevIDs, currIDs, spec.Options.IncludeDeparted)

	counts, err := AggregateTransitions(diff.Retained, prevIndex, currIndex)
	if err != nil {
		return nil, err
	}

	result := &model.ComparisonResult{
		Summary:       Summarize(diff.TotalPrevious, len(diff.New)),
		Transitions:   PairList(counts, order),
		Matrix:        ProjectMatrix(counts, order),
		NewIDs:        diff.New,
		TotalPrevious: diff.TotalPrevious,
		TotalCurrent:  diff.TotalCurrent,
		TotalNew:      len(diff.New),
		TotalRetained: len(diff.Retained),
	}

	if spec.Options.IncludeDeparted {
		result.Departed = &model.DepartedReport{
			Total:   len(diff.Departed),
			ByStage: DepartedByStage(diff.Departed, prevIndex, order),
		}
		result.Summary = append(result.Summary, model.SummaryRow{
			Metric: model.MetricDeparted,
			Count:  len(diff.Departed),
		})
	}

	return result, nil
}
