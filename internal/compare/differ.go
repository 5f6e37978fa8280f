package compare

// DiffResult partitions the current snapshot's distinct identifiers against
// the previous snapshot's. New and Retained together cover exactly the
// current identifiers; Departed is filled only when asked for.
type DiffResult struct {
	New      []string
	Retained []string
	Departed []string

	TotalPrevious int
	TotalCurrent  int
}

// DiffIdentifiers splits current's identifiers into new arrivals (absent
// from previous) and retained identifiers (present in both). Inputs are
// distinct identifier lists; output slices keep the input order so results
// are deterministic run to run.
func DiffIdentifiers(previous, current []string, includeDeparted bool) DiffResult {
	prevSet := make(map[string]struct{}, len(previous))
	for _, id := range previous {
		prevSet[id] = struct{}{}
	}

	res := DiffResult{
		TotalPrevious: len(previous),
		TotalCurrent:  len(current),
	}

	currSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currSet[id] = struct{}{}
		if _, ok := prevSet[id]; ok {
			res.Retained = append(res.Retained, id)
		} else {
			res.New = append(res.New, id)
		}
	}

	if includeDeparted {
		for _, id := range previous {
			if _, ok := currSet[id]; !ok {
				res.Departed = append(res.Departed, id)
			}
		}
	}

	return res
}
