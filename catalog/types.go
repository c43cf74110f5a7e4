package catalog

import "strings"

// Station is a single metro stop. Key is the canonical lookup form of the
// name (trimmed, case-folded, inner whitespace collapsed); Name keeps the
// display form from the dataset. Lines is sorted and non-empty once loaded.
type Station struct {
	Name     string
	Key      string
	Lines    []string
	Lat      float64
	Lon      float64
	HasCoord bool
}

// Line is a named route. Stations holds station keys; the first SeqCount
// entries are ordered by explicit sequence numbers, the remainder is
// membership-only in dataset insertion order. Ordered reports whether the
// line carries enough explicit ordering to contribute graph edges.
type Line struct {
	ID       string
	Name     string
	Stations []string
	SeqCount int
}

// Ordered reports whether the line has an explicit station ordering.
func (l *Line) Ordered() bool { return l.SeqCount >= 2 }

// OrderedStations returns the explicitly sequenced part of the line.
func (l *Line) OrderedStations() []string { return l.Stations[:l.SeqCount] }

// Normalize maps a raw station or line name to its canonical key.
func Normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ConfigError reports a malformed dataset: a required column that cannot
// be resolved, or an ambiguous header mapping. It is fatal at load time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "catalog: " + e.Reason }
