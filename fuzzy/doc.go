// Package fuzzy resolves raw, possibly misspelled station text against
// catalog names.
//
// Scoring follows the rapidfuzz family of string similarity measures:
// simple ratio, partial (best-substring) ratio, token-sort, token-set and
// a weighted blend. Every scorer is a stateless pure function returning a
// similarity in [0,100]; variants are selected by ScorerKind. Input is
// case-folded and stripped of non-alphanumerics before comparison, so an
// exact case/space-insensitive match always scores 100 under every scorer.
package fuzzy
