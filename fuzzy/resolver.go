package fuzzy

import (
	"errors"
	"sort"
	"strings"
)

// Default tuning, matching the resolver's interactive use.
const (
	DefaultLimit         = 8
	DefaultMinScore      = 60
	AutocompleteMinScore = 40
)

// ErrEmptyQuery rejects blank resolver input before any scoring runs.
var ErrEmptyQuery = errors.New("fuzzy: empty query")

// Method describes how a match was made.
type Method string

const (
	MethodExact Method = "exact"
	MethodFuzzy Method = "fuzzy"
	MethodNone  Method = "none"
)

// Match is one scored candidate for a query.
type Match struct {
	Query  string `json:"query"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Method Method `json:"method"`
}

// Options tunes a Resolve call. Zero values fall back to package defaults
// (limit 8, min score 60, weighted scorer). A negative MinScore disables
// the cutoff entirely.
type Options struct {
	Limit    int
	MinScore int
	Scorer   ScorerKind
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.MinScore == 0 {
		o.MinScore = DefaultMinScore
	} else if o.MinScore < 0 {
		o.MinScore = 0
	}
	if o.Scorer == "" {
		o.Scorer = ScorerWRatio
	}
	return o
}

// Resolve ranks candidates against the query, highest score first. Ties
// keep candidate input order. An exact case/space-insensitive match scores
// 100 and ranks ahead of every fuzzy match regardless of scorer choice.
// An empty candidate list yields an empty result, not an error.
func Resolve(query string, candidates []string, opts Options) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if len(candidates) == 0 {
		return []Match{}, nil
	}
	opts = opts.withDefaults()
	score := opts.Scorer.Func()
	canonQuery := canonical(query)

	matches := make([]Match, 0, len(candidates))
	for _, cand := range candidates {
		m := Match{Query: query, Name: cand}
		if canonical(cand) == canonQuery {
			m.Score = 100
			m.Method = MethodExact
		} else {
			m.Score = score(query, cand)
			m.Method = MethodFuzzy
			if m.Score < opts.MinScore {
				continue
			}
		}
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if (matches[i].Method == MethodExact) != (matches[j].Method == MethodExact) {
			return matches[i].Method == MethodExact
		}
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches, nil
}

// BestMatch returns the single best candidate at or above minScore. The
// second return value reports whether such a match exists; an invalid
// query surfaces as ErrEmptyQuery rather than a plain no-match.
func BestMatch(query string, candidates []string, minScore int) (Match, bool, error) {
	res, err := Resolve(query, candidates, Options{Limit: 1, MinScore: minScore})
	if err != nil {
		return Match{Query: query, Method: MethodNone}, false, err
	}
	if len(res) == 0 {
		return Match{Query: query, Method: MethodNone}, false, nil
	}
	return res[0], true, nil
}

// Autocomplete suggests candidates for a partial query, tuned with a lower
// cutoff for interactive use.
func Autocomplete(prefix string, candidates []string, limit int) ([]Match, error) {
	return Resolve(prefix, candidates, Options{Limit: limit, MinScore: AutocompleteMinScore})
}

// canonical is the exact-match form: trimmed, case-folded, inner
// whitespace collapsed.
func canonical(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
