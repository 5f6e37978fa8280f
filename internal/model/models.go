package model

// Source points at one snapshot file or URL.
type Source struct {
	Type  string `json:"type"` // csv, json, xlsx
	URL   string `json:"url"`
	Sheet string `json:"sheet,omitempty"` // xlsx worksheet name; first sheet when empty
}

// Options toggles optional comparison behavior.
type Options struct {
	// IncludeDeparted also reports identifiers present only in the previous
	// snapshot, with their last-known stage.
	IncludeDeparted bool `json:"includeDeparted"`
	// Lenient makes the XLSX loader tolerate malformed optional styling
	// metadata instead of failing the load.
	Lenient bool `json:"lenient"`
}

// Export defines where result tables are written after a comparison.
type Export struct {
	Formats []string `json:"formats"` // csv, json; csv when empty
	Dir     string   `json:"dir"`     // overrides the server output dir
}

// ComparisonJobSpec is the struct for POST /api/v1/comparisons.
type ComparisonJobSpec struct {
	Previous   Source  `json:"previous"`
	Current    Source  `json:"current"`
	Schema     Schema  `json:"schema"`
	Options    Options `json:"options"`
	Export     *Export `json:"export,omitempty"`
	Workers    int     `json:"workers"`    // classification workers per snapshot
	JobTimeout string  `json:"jobTimeout"` // e.g. "5m"
}
