package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Recognized header spellings for each canonical dataset field. Matching is
// case-insensitive; two distinct headers resolving to the same field is an
// ambiguity and fails the load.
var fieldAliases = map[string][]string{
	"name":  {"station", "station_name", "name", "stop_name"},
	"lines": {"line", "lines", "line_name"},
	"lat":   {"latitude", "lat"},
	"lon":   {"longitude", "lon", "lng"},
	"seq":   {"sequence", "seq", "stop_sequence", "order"},
}

// requiredFields must resolve in the primary stations dataset.
var requiredFields = []string{"name", "lines"}

// Load builds a catalog from the primary stations CSV.
func Load(stations io.Reader) (*Catalog, error) {
	c := New()
	if err := c.consumeStations(stations); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadWithRoutes builds a catalog from the stations CSV and overlays the
// ordered-route dataset. Explicit route ordering is preferred over any
// ordering derived from per-row sequence numbers.
func LoadWithRoutes(stations, routes io.Reader) (*Catalog, error) {
	c, err := Load(stations)
	if err != nil {
		return nil, err
	}
	if err := c.consumeRoutes(routes); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFiles is a convenience wrapper over Load/LoadWithRoutes for on-disk
// datasets. routesPath may be empty.
func LoadFiles(stationsPath, routesPath string) (*Catalog, error) {
	sf, err := os.Open(stationsPath)
	if err != nil {
		return nil, fmt.Errorf("open stations dataset: %w", err)
	}
	defer sf.Close()
	if routesPath == "" {
		return Load(sf)
	}
	rf, err := os.Open(routesPath)
	if err != nil {
		return nil, fmt.Errorf("open routes dataset: %w", err)
	}
	defer rf.Close()
	return LoadWithRoutes(sf, rf)
}

// resolveHeader maps a CSV header row to canonical field indices.
func resolveHeader(head []string) (map[string]int, error) {
	cols := map[string]int{}
	for field, aliases := range fieldAliases {
		for i, h := range head {
			h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
			for _, a := range aliases {
				if strings.EqualFold(h, a) {
					if prev, dup := cols[field]; dup && prev != i {
						return nil, &ConfigError{Reason: fmt.Sprintf(
							"ambiguous columns %q and %q both resolve to field %q",
							head[prev], head[i], field)}
					}
					cols[field] = i
				}
			}
		}
	}
	return cols, nil
}

func (c *Catalog) consumeStations(r io.Reader) error {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return fmt.Errorf("read stations dataset: %w", err)
	}
	if len(rec) == 0 {
		return &ConfigError{Reason: "stations dataset is empty"}
	}
	cols, err := resolveHeader(rec[0])
	if err != nil {
		return err
	}
	for _, field := range requiredFields {
		if _, ok := cols[field]; !ok {
			return &ConfigError{Reason: fmt.Sprintf("no column resolves to required field %q", field)}
		}
	}

	cell := func(row []string, field string) string {
		i, ok := cols[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	type seqEntry struct {
		key string
		seq int
		ord int
	}
	seqs := map[string][]seqEntry{}

	for n, row := range rec[1:] {
		name := cell(row, "name")
		if name == "" {
			continue
		}
		var memberships []string
		for _, part := range strings.Split(cell(row, "lines"), ",") {
			if part = strings.TrimSpace(part); part != "" {
				memberships = append(memberships, part)
			}
		}
		// Every loaded station belongs to at least one line.
		if len(memberships) == 0 {
			log.Printf("catalog: station %q has no line membership, skipping row", name)
			continue
		}
		lat, lon, hasCoord := parseCoord(cell(row, "lat"), cell(row, "lon"))
		s := c.upsertStation(name, lat, lon, hasCoord)

		seq, hasSeq := parseSeq(cell(row, "seq"))
		for _, part := range memberships {
			l := c.addMembership(s, part)
			if hasSeq {
				seqs[l.ID] = append(seqs[l.ID], seqEntry{key: s.Key, seq: seq, ord: n})
			}
		}
	}
	if len(c.order) == 0 {
		return &ConfigError{Reason: "stations dataset has no usable rows"}
	}

	// Apply per-row sequence numbers: a line becomes ordered when at least
	// two of its stations carry one.
	for id, entries := range seqs {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].seq != entries[j].seq {
				return entries[i].seq < entries[j].seq
			}
			return entries[i].ord < entries[j].ord
		})
		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			if !containsString(keys, e.key) {
				keys = append(keys, e.key)
			}
		}
		c.reorderLine(c.lines[id], keys)
	}
	return nil
}

// consumeRoutes overlays explicit per-line orderings. Expected fields:
// line, sequence, station name (same alias table as the primary dataset).
func (c *Catalog) consumeRoutes(r io.Reader) error {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return fmt.Errorf("read routes dataset: %w", err)
	}
	if len(rec) == 0 {
		return nil
	}
	cols, err := resolveHeader(rec[0])
	if err != nil {
		return err
	}
	for _, field := range []string{"lines", "seq", "name"} {
		if _, ok := cols[field]; !ok {
			return &ConfigError{Reason: fmt.Sprintf("routes dataset: no column resolves to required field %q", field)}
		}
	}

	type entry struct {
		key string
		seq int
		ord int
	}
	byLine := map[string][]entry{}
	var lineOrder []string

	for n, row := range rec[1:] {
		get := func(field string) string {
			i := cols[field]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		lineName, station := get("lines"), get("name")
		if lineName == "" || station == "" {
			continue
		}
		s, ok := c.Get(station)
		if !ok {
			log.Printf("catalog: routes dataset references unknown station %q (line %q), skipping", station, lineName)
			continue
		}
		l := c.addMembership(s, lineName)
		seq, _ := parseSeq(get("seq"))
		if _, seen := byLine[l.ID]; !seen {
			lineOrder = append(lineOrder, l.ID)
		}
		byLine[l.ID] = append(byLine[l.ID], entry{key: s.Key, seq: seq, ord: n})
	}

	for _, id := range lineOrder {
		entries := byLine[id]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].seq != entries[j].seq {
				return entries[i].seq < entries[j].seq
			}
			return entries[i].ord < entries[j].ord
		})
		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			if !containsString(keys, e.key) {
				keys = append(keys, e.key)
			}
		}
		c.reorderLine(c.lines[id], keys)
	}
	return nil
}

// reorderLine moves the explicitly sequenced keys to the front of the
// line's station list, keeping membership-only stations behind them.
func (c *Catalog) reorderLine(l *Line, orderedKeys []string) {
	rest := make([]string, 0, len(l.Stations))
	for _, key := range l.Stations {
		if !containsString(orderedKeys, key) {
			rest = append(rest, key)
		}
	}
	l.Stations = append(append([]string{}, orderedKeys...), rest...)
	l.SeqCount = len(orderedKeys)
}

func parseCoord(latRaw, lonRaw string) (lat, lon float64, ok bool) {
	if latRaw == "" || lonRaw == "" {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(latRaw, 64)
	lon, err2 := strconv.ParseFloat(lonRaw, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func parseSeq(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
