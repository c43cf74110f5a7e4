package catalog

import (
	"sort"
	"strings"

	"metro-routing/internal"
)

// Catalog stores stations and lines in memory for fast lookups.
type Catalog struct {
	stations map[string]*Station // key -> station
	order    []string            // station keys in dataset insertion order
	lines    map[string]*Line    // line id -> line
	lineIDs  []string            // line ids in dataset insertion order
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		stations: map[string]*Station{},
		lines:    map[string]*Line{},
	}
}

// Get returns the station for a raw name using exact case/space-insensitive
// lookup.
func (c *Catalog) Get(name string) (*Station, bool) {
	s, ok := c.stations[Normalize(name)]
	return s, ok
}

// Search returns stations whose display name contains the query,
// case-insensitively, in dataset insertion order.
func (c *Catalog) Search(query string) []*Station {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*Station
	for _, key := range c.order {
		s := c.stations[key]
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

// LinesOf returns the sorted line ids a station belongs to.
func (c *Catalog) LinesOf(name string) []string {
	s, ok := c.Get(name)
	if !ok {
		return nil
	}
	return s.Lines
}

// Stations returns all stations in dataset insertion order.
func (c *Catalog) Stations() []*Station {
	out := make([]*Station, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.stations[key])
	}
	return out
}

// Names returns all display names in dataset insertion order. This is the
// candidate list handed to the fuzzy resolver.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.stations[key].Name)
	}
	return out
}

// LineIDs returns all line ids, sorted.
func (c *Catalog) LineIDs() []string {
	out := make([]string, 0, len(c.lineIDs))
	out = append(out, c.lineIDs...)
	sort.Strings(out)
	return out
}

// Line returns a line by raw id or name.
func (c *Catalog) Line(id string) (*Line, bool) {
	l, ok := c.lines[Normalize(id)]
	return l, ok
}

// Lines returns all lines in dataset insertion order.
func (c *Catalog) Lines() []*Line {
	out := make([]*Line, 0, len(c.lineIDs))
	for _, id := range c.lineIDs {
		out = append(out, c.lines[id])
	}
	return out
}

// Len returns the number of stations.
func (c *Catalog) Len() int { return len(c.order) }

// NearbyStation pairs a station with its distance from a query point.
type NearbyStation struct {
	Station *Station
	KM      float64
}

// Nearby returns stations with coordinates within radiusKM of the query
// point, closest first.
func (c *Catalog) Nearby(lat, lon, radiusKM float64) []NearbyStation {
	var out []NearbyStation
	for _, key := range c.order {
		s := c.stations[key]
		if !s.HasCoord {
			continue
		}
		d := internal.HaversineKM(lat, lon, s.Lat, s.Lon)
		if d <= radiusKM {
			out = append(out, NearbyStation{Station: s, KM: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].KM < out[j].KM })
	return out
}

// upsertStation merges a dataset row into the catalog. Duplicate rows union
// line memberships; a coordinate only fills in when the station previously
// lacked one.
func (c *Catalog) upsertStation(name string, lat, lon float64, hasCoord bool) *Station {
	key := Normalize(name)
	s, ok := c.stations[key]
	if !ok {
		s = &Station{Name: strings.TrimSpace(name), Key: key}
		c.stations[key] = s
		c.order = append(c.order, key)
	}
	if hasCoord && !s.HasCoord {
		s.Lat, s.Lon = lat, lon
		s.HasCoord = true
	}
	return s
}

// addMembership records that a station belongs to a line, keeping both
// sides of the index consistent.
func (c *Catalog) addMembership(s *Station, lineName string) *Line {
	id := Normalize(lineName)
	l, ok := c.lines[id]
	if !ok {
		l = &Line{ID: id, Name: strings.TrimSpace(lineName)}
		c.lines[id] = l
		c.lineIDs = append(c.lineIDs, id)
	}
	if !containsString(s.Lines, id) {
		s.Lines = append(s.Lines, id)
		sort.Strings(s.Lines)
	}
	if !containsString(l.Stations, s.Key) {
		l.Stations = append(l.Stations, s.Key)
	}
	return l
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
