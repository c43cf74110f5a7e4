package routing

import (
	"fmt"
	"sort"

	"metro-routing/network"
)

// Route is a computed journey. Stations is the ordered key sequence; Legs
// carry one entry per edge with the line chosen for that segment; Steps
// collapse consecutive same-line legs into ride instructions; Interchanges
// lists the stations where the rider must change lines.
type Route struct {
	Stations     []string      `json:"stations"`
	Hops         int           `json:"hops"`
	TotalKM      float64       `json:"totalKM"`
	Legs         []Leg         `json:"legs"`
	Steps        []Step        `json:"steps"`
	Interchanges []Interchange `json:"interchanges"`
}

// Leg is a single edge traversal.
type Leg struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Line  string   `json:"line"`
	KM    float64  `json:"km"`
	Lines []string `json:"lines"`
}

// Step is a contiguous ride on one line.
type Step struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Line  string `json:"line"`
	Stops int    `json:"stops"`
}

// Interchange is a station where the incoming and outgoing edges share no
// line, plus the lines available there.
type Interchange struct {
	Station string   `json:"station"`
	Lines   []string `json:"lines"`
}

// BuildRoute derives leg line assignment, ride steps and interchanges
// from a node path. The path must come from the same graph; a missing
// edge between consecutive path stations is a corrupted-state defect and
// panics.
func BuildRoute(g *network.Graph, path []string) *Route {
	r := &Route{Stations: path}
	if len(path) < 2 {
		return r
	}
	r.Hops = len(path) - 1

	edges := make([]*network.Edge, r.Hops)
	current := ""
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.EdgeBetween(path[i], path[i+1])
		if !ok {
			panic(fmt.Sprintf("routing: path stations %q and %q are not adjacent", path[i], path[i+1]))
		}
		edges[i] = e
		line := pickLine(e.Lines, current)
		r.Legs = append(r.Legs, Leg{From: path[i], To: path[i+1], Line: line, KM: e.KM, Lines: e.Lines})
		r.TotalKM += e.KM
		current = line
	}

	// Collapse consecutive same-line legs into steps.
	stepStart := 0
	for i := 1; i <= len(r.Legs); i++ {
		if i < len(r.Legs) && r.Legs[i].Line == r.Legs[stepStart].Line {
			continue
		}
		r.Steps = append(r.Steps, Step{
			From:  r.Legs[stepStart].From,
			To:    r.Legs[i-1].To,
			Line:  r.Legs[stepStart].Line,
			Stops: i - stepStart,
		})
		stepStart = i
	}

	// A station is an interchange on this route when its incoming and
	// outgoing edges share no line.
	for i := 1; i < len(path)-1; i++ {
		in, out := edges[i-1], edges[i]
		if linesIntersect(in.Lines, out.Lines) {
			continue
		}
		r.Interchanges = append(r.Interchanges, Interchange{
			Station: path[i],
			Lines:   unionSorted(in.Lines, out.Lines),
		})
	}
	return r
}

// pickLine keeps the rider on the current line when the edge allows it,
// else takes the first id in sorted order.
func pickLine(lines []string, current string) string {
	if len(lines) == 0 {
		return ""
	}
	if current != "" {
		for _, l := range lines {
			if l == current {
				return current
			}
		}
	}
	return lines[0]
}

func linesIntersect(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func unionSorted(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range a {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range b {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
