// SPDX-License-Identifier: MIT

// Package entity: domain types and construction options for the base
// incidence store. This file intentionally contains ONLY domain-facing
// types and the Option set; errors live in errors.go and weight
// reductions in aggregate.go per the package conventions.
package entity

import "fmt"

// tupleSep separates level labels inside internal row keys. The unit
// separator is assumed absent from item labels.
const tupleSep = "\x1f"

// Default level names for inputs that carry none of their own.
const (
	levelEdges = "edges"
	levelNodes = "nodes"
)

// defaultLevelName names level i when the input supplies no name.
func defaultLevelName(i int) string {
	switch i {
	case 0:
		return levelEdges
	case 1:
		return levelNodes
	}
	return fmt.Sprintf("level%d", i)
}

// Table is a minimal column-oriented data table used as tabular
// construction input. ColumnNames and Columns are parallel: Columns[i]
// holds the values of the label column named ColumnNames[i], and all
// columns must share one length. Numeric holds optional numeric columns
// (e.g. cell weights) keyed by name; a numeric column is selected as the
// weight source via WithWeightColumn.
type Table struct {
	ColumnNames []string
	Columns     [][]string
	Numeric     map[string][]float64
}

// LevelLabels is the ordered unique-label set for one level, used with the
// integer-array construction input. Label order defines the level's index.
type LevelLabels struct {
	Name   string
	Labels []string
}

// NamedSet is one level-0 item together with its ordered level-1 members.
// The nested-mapping construction input is a slice of these, so first-seen
// ordering stays deterministic (Go maps do not iterate in order).
type NamedSet struct {
	Name     string
	Elements []string
}

// Cell is one row of the canonical table: the per-level item labels and
// the aggregated cell weight.
type Cell struct {
	Items  []string
	Weight float64
}

// levelIndex is one level's unique-label index: labels in first-seen (or
// caller-supplied) order plus the reverse lookup. The index is
// append-only; removing rows never unregisters labels, keeping indices
// stable for the instance's lifetime.
type levelIndex struct {
	name  string
	order []string
	index map[string]int
}

// add registers label if unseen. O(1) amortized.
func (li *levelIndex) add(label string) {
	if _, ok := li.index[label]; ok {
		return
	}
	li.index[label] = len(li.order)
	li.order = append(li.order, label)
}

// viewKind keys the derived-view cache.
type viewKind uint8

const (
	// viewElements caches the level-0 → level-1 dual view.
	viewElements viewKind = iota
	// viewMemberships caches the level-1 → level-0 dual view, or a view
	// explicitly seeded via CacheMemberships.
	viewMemberships
)

// Entity is the base labeled incidence store. See the package
// documentation for the data model and ordering guarantees.
//
// Construction either fully succeeds or returns an error before any field
// is observable; there is no partially constructed state.
type Entity struct {
	uid    string
	static bool

	levels  []levelIndex // one index per level; len == dimensionality
	rows    [][]string   // canonical table; len(rows[r]) == len(levels)
	weights []float64    // cell weights, parallel to rows

	props map[string]map[string]any        // item label → property set
	cache map[viewKind]map[string][]string // derived-view cache
}

// config collects constructor options before validation.
type config struct {
	uid       string
	mutable   bool
	project   bool
	level0    int
	level1    int
	weights   []float64
	weightCol string
	agg       AggregateBy
	props     map[string]map[string]any
}

// newConfig applies opts over the defaults: static, active levels (0,1),
// weight aggregation by sum.
func newConfig(opts []Option) config {
	cfg := config{level0: 0, level1: 1, agg: AggregateSum}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option configures construction of an Entity.
type Option func(*config)

// WithUID attaches a unique identifier to the constructed instance.
func WithUID(uid string) Option {
	return func(c *config) { c.uid = uid }
}

// WithMutable permits post-construction row mutation. Entities are static
// (immutable) by default, which makes derived-view caches permanent.
func WithMutable() Option {
	return func(c *config) { c.mutable = true }
}

// WithLevels requests projection of input carrying more than 2 dimensions
// onto the two designated active levels: the first becomes level 0 of the
// result, the second level 1. Without this option the base store keeps
// every input level. (The setsystem package always projects, defaulting
// to levels 0 and 1.)
func WithLevels(level0, level1 int) Option {
	return func(c *config) {
		c.project = true
		c.level0, c.level1 = level0, level1
	}
}

// WithWeights supplies per-row (or, for set-mapping input, per-member)
// cell weights. Length must match the expected cell count; mismatch is an
// input error at construction.
func WithWeights(weights []float64) Option {
	return func(c *config) { c.weights = weights }
}

// WithWeightColumn names a numeric column of tabular input to use as the
// weight source. A name that resolves to no column falls back to weight 1
// for every cell. Ignored for non-tabular input.
func WithWeightColumn(name string) Option {
	return func(c *config) { c.weightCol = name }
}

// WithAggregateBy selects the reduction applied to cell weights of
// duplicate rows. Default is AggregateSum; AggregateNone drops duplicates
// keeping the first-seen weight.
func WithAggregateBy(agg AggregateBy) Option {
	return func(c *config) { c.agg = agg }
}

// WithProperties supplies initial per-item properties as
// item label → property name → value.
func WithProperties(props map[string]map[string]any) Option {
	return func(c *config) { c.props = props }
}
