// Package catalog loads the station dataset and indexes it in memory.
//
// The catalog is data-source agnostic - it accepts io.Reader over CSV rows
// and builds normalized name indices. Column headers are matched through an
// alias-resolution table, so datasets with differing header spellings load
// without per-dataset code. A catalog is built once and treated as
// immutable; all lookups are safe for concurrent use.
package catalog
