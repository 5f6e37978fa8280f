package loader

import (
	"fmt"
	"strings"

	"stage-shift/internal/model"
)

// MissingColumns lists the schema columns a snapshot lacks. An empty
// snapshot has no columns, so everything required is missing.
func MissingColumns(snap model.Snapshot, schema model.Schema) []string {
	present := make(map[string]bool)
	for _, c := range snap.Columns() {
		present[c] = true
	}

	var missing []string
	for _, c := range schema.RequiredColumns() {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// CheckColumns verifies both snapshots carry the identifier column and the
// four status columns before the comparison runs. The error names every
// missing column per sheet so the caller can report them all at once.
func CheckColumns(previous, current model.Snapshot, schema model.Schema) error {
	schema = schema.WithDefaults()
	missingPrev := MissingColumns(previous, schema)
	missingCurr := MissingColumns(current, schema)
	if len(missingPrev) == 0 && len(missingCurr) == 0 {
		return nil
	}

	var parts []string
	if len(missingPrev) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns in previous sheet: [%s]", strings.Join(missingPrev, ", ")))
	}
	if len(missingCurr) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns in current sheet: [%s]", strings.Join(missingCurr, ", ")))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
