package fuzzy_test

import (
	"testing"

	"metro-routing/fuzzy"
)

var allScorers = []fuzzy.ScorerKind{
	fuzzy.ScorerRatio,
	fuzzy.ScorerPartial,
	fuzzy.ScorerTokenSort,
	fuzzy.ScorerTokenSet,
	fuzzy.ScorerWRatio,
}

func TestScorers_ExactMatchScores100(t *testing.T) {
	for _, kind := range allScorers {
		t.Run(string(kind), func(t *testing.T) {
			score := kind.Func()
			if got := score("Rajiv Chowk", "  rajiv   chowk "); got != 100 {
				t.Errorf("case/space-insensitive exact match = %d, want 100", got)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "abcd", b: "abcd", want: 100},
		{name: "one substitution", a: "abcd", b: "abce", want: 75},
		{name: "one empty", a: "abcd", b: "", want: 0},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fuzzy.Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPartialRatio_SubstringScores100(t *testing.T) {
	if got := fuzzy.PartialRatio("rajiv", "Rajiv Chowk"); got != 100 {
		t.Errorf("contained substring = %d, want 100", got)
	}
	if got := fuzzy.PartialRatio("abcd", "abce"); got != 75 {
		t.Errorf("equal-length inputs fall back to ratio, got %d", got)
	}
}

func TestTokenSortRatio_WordOrderInsensitive(t *testing.T) {
	if got := fuzzy.TokenSortRatio("Chowk Rajiv", "Rajiv Chowk"); got != 100 {
		t.Errorf("reordered words = %d, want 100", got)
	}
}

func TestTokenSetRatio_DuplicatesAndExtras(t *testing.T) {
	if got := fuzzy.TokenSetRatio("rajiv rajiv chowk", "Rajiv Chowk"); got != 100 {
		t.Errorf("duplicate words = %d, want 100", got)
	}
	if got := fuzzy.TokenSetRatio("rajiv chowk metro station", "rajiv chowk"); got != 100 {
		t.Errorf("shared token core = %d, want 100", got)
	}
}

func TestWRatio_TypoToleranceAndRanking(t *testing.T) {
	hit := fuzzy.WRatio("rajeev chok", "Rajiv Chowk")
	if hit <= 60 {
		t.Errorf("WRatio for close typo = %d, want > 60", hit)
	}
	miss := fuzzy.WRatio("rajeev chok", "Rajouri Garden")
	if miss >= hit {
		t.Errorf("wrong candidate scored %d, should be below %d", miss, hit)
	}
}

func TestWRatio_EmptyInput(t *testing.T) {
	if got := fuzzy.WRatio("", "Rajiv Chowk"); got != 0 {
		t.Errorf("empty query = %d, want 0", got)
	}
}

func TestParseScorer(t *testing.T) {
	tests := []struct {
		in      string
		want    fuzzy.ScorerKind
		wantErr bool
	}{
		{in: "ratio", want: fuzzy.ScorerRatio},
		{in: "WRATIO", want: fuzzy.ScorerWRatio},
		{in: "", want: fuzzy.ScorerWRatio},
		{in: "token_sort", want: fuzzy.ScorerTokenSort},
		{in: "nope", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := fuzzy.ParseScorer(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseScorer(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
