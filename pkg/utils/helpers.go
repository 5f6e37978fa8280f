package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses a duration string like "5m", falling back to five
// minutes on empty or malformed input.
func ParseDuration(d string) time.Duration {
	if d == "" {
		return 5 * time.Minute
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return 5 * time.Minute
	}
	return duration
}

// ParseValue types a raw cell: int first, then float, otherwise the trimmed
// string.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)

	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
