package compare

import (
	"fmt"
	"strings"

	"stage-shift/internal/model"
)

// StagePair is one (previous stage, current stage) observation key.
type StagePair struct {
	Previous model.Stage
	Current  model.Stage
}

// StageIndex resolves a classified snapshot to a single stage per distinct
// identifier. It returns the index plus the distinct identifiers in
// first-seen order.
//
// Preconditions surface as ErrInvalidPrecondition: every row must carry a
// non-empty identifier, and duplicate rows for one identifier must agree on
// a stage. Duplicates that classify identically collapse silently.
func StageIndex(snap model.Snapshot, stages []model.Stage, idColumn string) (map[string]model.Stage, []string, error) {
	if len(stages) != len(snap.Rows) {
		return nil, nil, fmt.Errorf("%w: %s snapshot has %d rows but %d classified stages",
			ErrInvalidPrecondition, snap.Label, len(snap.Rows), len(stages))
	}

	index := make(map[string]model.Stage, len(snap.Rows))
	ids := make([]string, 0, len(snap.Rows))

	for i, rec := range snap.Rows {
		id := identifier(rec, idColumn)
		if id == "" {
			return nil, nil, fmt.Errorf("%w: %s snapshot row %d has no %q value",
				ErrInvalidPrecondition, snap.Label, i+1, idColumn)
		}
		if prior, seen := index[id]; seen {
			if prior != stages[i] {
				return nil, nil, fmt.Errorf("%w: %s snapshot has duplicate identifier %q with conflicting stages %s and %s",
					ErrInvalidPrecondition, snap.Label, id, prior, stages[i])
			}
			continue
		}
		index[id] = stages[i]
		ids = append(ids, id)
	}

	return index, ids, nil
}

// AggregateTransitions counts one (previous, current) stage pair per
// retained identifier. Order within the map carries no meaning; backward
// moves count like any other pair.
func AggregateTransitions(retained []string, previous, current map[string]model.Stage) (map[StagePair]int, error) {
	counts := make(map[StagePair]int)
	for _, id := range retained {
		prevStage, ok := previous[id]
		if !ok {
			return nil, fmt.Errorf("%w: retained identifier %q missing from previous snapshot", ErrInvalidPrecondition, id)
		}
		currStage, ok := current[id]
		if !ok {
			return nil, fmt.Errorf("%w: retained identifier %q missing from current snapshot", ErrInvalidPrecondition, id)
		}
		counts[StagePair{Previous: prevStage, Current: currStage}]++
	}
	return counts, nil
}

// identifier extracts and normalizes the join key from a row. Loaders may
// type numeric-looking cells, so any scalar is accepted and rendered back to
// its string form.
func identifier(rec model.GenericRecord, idColumn string) string {
	val, ok := rec[idColumn]
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", val))
}
