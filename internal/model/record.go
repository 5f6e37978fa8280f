package model

// GenericRecord is a schema-agnostic row decoded from a snapshot sheet.
type GenericRecord map[string]interface{}

// Snapshot is one decoded sheet: the rows in file order plus the label the
// sheet plays in a comparison ("previous" or "current"). Rows are never
// mutated after loading.
type Snapshot struct {
	Label string          `json:"label"`
	Rows  []GenericRecord `json:"rows"`
}

// Columns returns the attribute names of the first row. A CSV or XLSX sheet
// has the same keys on every row, so the first row is enough to check a
// schema against. An empty snapshot has no columns.
func (s Snapshot) Columns() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(s.Rows[0]))
	for k := range s.Rows[0] {
		cols = append(cols, k)
	}
	return cols
}
