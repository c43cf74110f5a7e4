package fuzzy

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ScoreFunc computes a similarity score in [0,100] between two strings.
type ScoreFunc func(a, b string) int

// ScorerKind selects one of the named scorer variants.
type ScorerKind string

const (
	// ScorerRatio is normalized edit-distance similarity.
	ScorerRatio ScorerKind = "ratio"
	// ScorerPartial is best-aligned substring similarity.
	ScorerPartial ScorerKind = "partial"
	// ScorerTokenSort compares whitespace tokens in sorted order.
	ScorerTokenSort ScorerKind = "token_sort"
	// ScorerTokenSet compares sorted unique-token intersections.
	ScorerTokenSet ScorerKind = "token_set"
	// ScorerWRatio is a heuristic blend of the other variants and the
	// general-purpose default.
	ScorerWRatio ScorerKind = "wratio"
)

// Func returns the scoring function for the kind.
func (k ScorerKind) Func() ScoreFunc {
	switch k {
	case ScorerRatio:
		return Ratio
	case ScorerPartial:
		return PartialRatio
	case ScorerTokenSort:
		return TokenSortRatio
	case ScorerTokenSet:
		return TokenSetRatio
	default:
		return WRatio
	}
}

// ParseScorer maps a config string to a ScorerKind.
func ParseScorer(s string) (ScorerKind, error) {
	switch ScorerKind(strings.ToLower(strings.TrimSpace(s))) {
	case ScorerRatio:
		return ScorerRatio, nil
	case ScorerPartial:
		return ScorerPartial, nil
	case ScorerTokenSort:
		return ScorerTokenSort, nil
	case ScorerTokenSet:
		return ScorerTokenSet, nil
	case ScorerWRatio, "":
		return ScorerWRatio, nil
	}
	return "", fmt.Errorf("fuzzy: unknown scorer %q", s)
}

// Ratio is the simple normalized edit-distance similarity.
func Ratio(a, b string) int {
	return ratioRunes([]rune(normalize(a)), []rune(normalize(b)))
}

// PartialRatio slides the shorter string along the longer one and returns
// the best window similarity.
func PartialRatio(a, b string) int {
	return partialRunes([]rune(normalize(a)), []rune(normalize(b)))
}

// TokenSortRatio tokenizes on whitespace, sorts the tokens and compares
// the rejoined strings, making the score word-order insensitive.
func TokenSortRatio(a, b string) int {
	return ratioRunes([]rune(sortedTokens(a)), []rune(sortedTokens(b)))
}

// TokenSetRatio compares on sorted unique tokens, scoring the shared token
// core against each side's remainder. Duplicate words cannot drag the
// score down.
func TokenSetRatio(a, b string) int {
	return tokenSet(a, b, ratioRunes)
}

// WRatio blends the other scorers with weights depending on how different
// the input lengths are.
func WRatio(a, b string) int {
	pa, pb := []rune(normalize(a)), []rune(normalize(b))
	if len(pa) == 0 || len(pb) == 0 {
		return 0
	}
	base := float64(ratioRunes(pa, pb))
	longer, shorter := len(pa), len(pb)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	lenRatio := float64(longer) / float64(shorter)

	const unbaseScale = 0.95
	if lenRatio < 1.5 {
		ts := unbaseScale * float64(TokenSortRatio(a, b))
		tt := unbaseScale * float64(TokenSetRatio(a, b))
		return clampScore(math.Max(base, math.Max(ts, tt)))
	}

	partialScale := 0.90
	if lenRatio > 8 {
		partialScale = 0.60
	}
	p := partialScale * float64(partialRunes(pa, pb))
	pts := unbaseScale * partialScale * float64(partialTokenSortRatio(a, b))
	ptt := unbaseScale * partialScale * float64(partialTokenSetRatio(a, b))
	return clampScore(math.Max(base, math.Max(p, math.Max(pts, ptt))))
}

func partialTokenSortRatio(a, b string) int {
	return partialRunes([]rune(sortedTokens(a)), []rune(sortedTokens(b)))
}

func partialTokenSetRatio(a, b string) int {
	return tokenSet(a, b, partialRunes)
}

// normalize case-folds and replaces non-alphanumeric runes with spaces,
// collapsing runs of whitespace.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func sortedTokens(s string) string {
	toks := strings.Fields(normalize(s))
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

// tokenSet implements the token-set comparison over a base similarity
// function: the sorted token intersection is scored against the
// intersection plus each side's sorted remainder, and the remainders
// against each other; the best of the three wins.
func tokenSet(a, b string, sim func(x, y []rune) int) int {
	ta := strings.Fields(normalize(a))
	tb := strings.Fields(normalize(b))
	setA := map[string]bool{}
	for _, t := range ta {
		setA[t] = true
	}
	setB := map[string]bool{}
	for _, t := range tb {
		setB[t] = true
	}
	var inter, diffA, diffB []string
	for t := range setA {
		if setB[t] {
			inter = append(inter, t)
		} else {
			diffA = append(diffA, t)
		}
	}
	for t := range setB {
		if !setA[t] {
			diffB = append(diffB, t)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	sect := strings.Join(inter, " ")
	combined1 := strings.TrimSpace(sect + " " + strings.Join(diffA, " "))
	combined2 := strings.TrimSpace(sect + " " + strings.Join(diffB, " "))

	best := sim([]rune(sect), []rune(combined1))
	if v := sim([]rune(sect), []rune(combined2)); v > best {
		best = v
	}
	if v := sim([]rune(combined1), []rune(combined2)); v > best {
		best = v
	}
	return best
}

// ratioRunes is 100*(1 - d/(len(a)+len(b))) where d is the edit distance
// with substitutions costing 2, i.e. the classic difflib-style ratio.
func ratioRunes(a, b []rune) int {
	lensum := len(a) + len(b)
	if lensum == 0 {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	d := editDistance(a, b)
	return clampScore(100.0 * float64(lensum-d) / float64(lensum))
}

// editDistance computes Levenshtein distance with substitution cost 2
// (insert/delete cost 1) using a rolling row.
func editDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += 2
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			m := sub
			if del < m {
				m = del
			}
			if ins < m {
				m = ins
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// partialRunes finds the best ratio between the shorter string and any
// equally long window of the longer one.
func partialRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		if len(a) == len(b) {
			return 100
		}
		return 0
	}
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == len(longer) {
		return ratioRunes(shorter, longer)
	}
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		v := ratioRunes(shorter, longer[i:i+len(shorter)])
		if v > best {
			best = v
			if best == 100 {
				break
			}
		}
	}
	return best
}

func clampScore(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
