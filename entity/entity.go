// Package entity: constructors and table normalization.
//
// Every constructor follows one pipeline: validate the input shape fully,
// normalize it into canonical (names, rows, weights) form, then delegate
// to fromRows, which merges duplicate rows and builds the per-level
// unique-label indices. Construction either fully succeeds or returns an
// error before any field is observable.

package entity

import "strings"

// New constructs an empty Entity: zero rows, dimensionality 0.
func New(opts ...Option) (*Entity, error) {
	return fromRows(nil, nil, nil, nil, newConfig(opts))
}

// NewFromTable constructs an Entity from column-oriented tabular input.
//
// All label columns become levels unless WithLevels requests projection,
// in which case a table of more than 2 columns keeps only the two active
// levels; a numeric weight column named via WithWeightColumn survives the
// projection as the weight source. WithWeights takes precedence over
// WithWeightColumn; an unresolvable weight column name falls back to
// weight 1 per cell. Duplicate rows are merged per WithAggregateBy.
//
// Returns ErrRaggedTable, ErrLevelOutOfRange, ErrWeightLength or
// ErrUnknownAggregate. Complexity: O(R·D).
func NewFromTable(tbl *Table, opts ...Option) (*Entity, error) {
	cfg := newConfig(opts)
	if tbl == nil || len(tbl.ColumnNames) == 0 {
		return fromRows(nil, nil, nil, nil, cfg)
	}
	if len(tbl.Columns) != len(tbl.ColumnNames) {
		return nil, ErrRaggedTable
	}
	n := len(tbl.ColumnNames)
	rowCount := len(tbl.Columns[0])
	for _, col := range tbl.Columns {
		if len(col) != rowCount {
			return nil, ErrRaggedTable
		}
	}
	for _, col := range tbl.Numeric {
		if len(col) != rowCount {
			return nil, ErrRaggedTable
		}
	}
	if rowCount == 0 {
		return fromRows(nil, nil, nil, nil, cfg)
	}

	// Project onto the two active levels when requested and more than 2
	// columns are present.
	keep, err := keptLevels(cfg, n)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(keep))
	for i, j := range keep {
		names[i] = tbl.ColumnNames[j]
	}

	ws, err := resolveTableWeights(tbl, cfg, rowCount)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, rowCount)
	for r := 0; r < rowCount; r++ {
		row := make([]string, len(keep))
		for i, j := range keep {
			row[i] = tbl.Columns[j][r]
		}
		rows[r] = row
	}

	return fromRows(names, rows, ws, nil, cfg)
}

// NewFromData constructs an Entity from an M×N integer array plus ordered
// label sets: data[r][j] indexes into the level-j label set. labels must
// carry exactly N entries — or, when WithLevels requests projection of
// N > 2 columns, either N entries or just 2 describing the active pair.
// The supplied label order defines each level's unique-label index,
// including labels the data never references.
//
// Returns ErrRaggedTable, ErrLabelCount, ErrLabelIndex, ErrLevelOutOfRange,
// ErrWeightLength or ErrUnknownAggregate. Complexity: O(M·D).
func NewFromData(data [][]int, labels []LevelLabels, opts ...Option) (*Entity, error) {
	cfg := newConfig(opts)
	if len(data) == 0 {
		return fromRows(nil, nil, nil, nil, cfg)
	}
	n := len(data[0])
	if n == 0 {
		return nil, ErrRaggedTable
	}
	for _, row := range data {
		if len(row) != n {
			return nil, ErrRaggedTable
		}
	}
	if len(labels) != n && !(cfg.project && n > 2 && len(labels) == 2) {
		return nil, ErrLabelCount
	}

	keep, err := keptLevels(cfg, n)
	if err != nil {
		return nil, err
	}

	// Select the label sets for the kept levels. When only 2 sets were
	// given for projected N-dimensional data, they already describe the
	// active pair.
	sel := make([]LevelLabels, len(keep))
	for i, j := range keep {
		if len(labels) == n {
			sel[i] = labels[j]
		} else {
			sel[i] = labels[i]
		}
	}

	names := make([]string, len(sel))
	preset := make([][]string, len(sel))
	for i, ll := range sel {
		names[i] = ll.Name
		if names[i] == "" {
			names[i] = defaultLevelName(i)
		}
		preset[i] = ll.Labels
	}

	if cfg.weights != nil && len(cfg.weights) != len(data) {
		return nil, ErrWeightLength
	}

	rows := make([][]string, len(data))
	for r, codes := range data {
		row := make([]string, len(keep))
		for i, j := range keep {
			code := codes[j]
			if code < 0 || code >= len(sel[i].Labels) {
				return nil, ErrLabelIndex
			}
			row[i] = sel[i].Labels[code]
		}
		rows[r] = row
	}

	return fromRows(names, rows, cfg.weights, preset, cfg)
}

// NewFromSets constructs a two-level Entity from a system of sets: each
// NamedSet contributes one row per member. Weights supplied via
// WithWeights must match the total member count across all sets.
//
// Returns ErrWeightLength or ErrUnknownAggregate. Complexity: O(cells).
func NewFromSets(sets []NamedSet, opts ...Option) (*Entity, error) {
	cfg := newConfig(opts)
	total := 0
	for _, s := range sets {
		total += len(s.Elements)
	}
	if cfg.weights != nil && len(cfg.weights) != total {
		return nil, ErrWeightLength
	}
	if total == 0 {
		return fromRows(nil, nil, nil, nil, cfg)
	}
	rows := make([][]string, 0, total)
	for _, s := range sets {
		for _, el := range s.Elements {
			rows = append(rows, []string{s.Name, el})
		}
	}

	return fromRows([]string{levelEdges, levelNodes}, rows, cfg.weights, nil, cfg)
}

// NewFromEntity copies an existing Entity, applying any construction
// overrides. Existing cell weights are kept unless WithWeights supplies
// replacements (length must match the source row count); existing item
// properties are kept, with WithProperties entries overlaying them
// key-wise. When WithLevels requests projection of an input with more
// than 2 dimensions, the copy is restricted to the active pair and the
// weights — replacements included — are re-aggregated per WithAggregateBy.
//
// Returns ErrNilEntity, ErrWeightLength, ErrLevelOutOfRange or
// ErrUnknownAggregate.
func NewFromEntity(e *Entity, opts ...Option) (*Entity, error) {
	if e == nil {
		return nil, ErrNilEntity
	}
	cfg := newConfig(opts)
	if cfg.project && e.Dimsize() > 2 {
		if err := checkActiveLevels(cfg, e.Dimsize()); err != nil {
			return nil, err
		}
		src := e
		if cfg.weights != nil {
			// Replace the weights before projecting so re-aggregation
			// reduces the replacements, not the originals.
			base, err := NewFromEntity(e, WithWeights(cfg.weights))
			if err != nil {
				return nil, err
			}
			src = base
		}
		return src.RestrictToLevels([]int{cfg.level0, cfg.level1}, true, cfg.agg, opts...)
	}

	ws := cfg.weights
	if ws == nil {
		ws = append([]float64(nil), e.weights...)
	} else if len(ws) != len(e.rows) {
		return nil, ErrWeightLength
	}

	names := make([]string, len(e.levels))
	preset := make([][]string, len(e.levels))
	for i, li := range e.levels {
		names[i] = li.name
		preset[i] = li.order
	}
	rows := make([][]string, len(e.rows))
	for r, row := range e.rows {
		rows[r] = append([]string(nil), row...)
	}

	out, err := fromRows(names, rows, ws, preset, cfg)
	if err != nil {
		return nil, err
	}
	out.adoptProperties(e.props)

	return out, nil
}

// checkActiveLevels validates the configured active-level pair against a
// dimensionality of n.
func checkActiveLevels(cfg config, n int) error {
	if cfg.level0 < 0 || cfg.level0 >= n || cfg.level1 < 0 || cfg.level1 >= n || cfg.level0 == cfg.level1 {
		return ErrLevelOutOfRange
	}

	return nil
}

// keptLevels resolves which input columns survive construction. Projection
// onto the active pair applies only when WithLevels requested it and the
// input carries more than 2 columns; otherwise every column is kept.
func keptLevels(cfg config, n int) ([]int, error) {
	if cfg.project && n > 2 {
		if err := checkActiveLevels(cfg, n); err != nil {
			return nil, err
		}
		return []int{cfg.level0, cfg.level1}, nil
	}
	keep := make([]int, n)
	for j := range keep {
		keep[j] = j
	}

	return keep, nil
}

// resolveTableWeights picks the weight source for tabular input:
// WithWeights first, then a resolvable WithWeightColumn, else nil
// (meaning weight 1 per cell).
func resolveTableWeights(tbl *Table, cfg config, rowCount int) ([]float64, error) {
	if cfg.weights != nil {
		if len(cfg.weights) != rowCount {
			return nil, ErrWeightLength
		}
		return append([]float64(nil), cfg.weights...), nil
	}
	if cfg.weightCol != "" {
		if col, ok := tbl.Numeric[cfg.weightCol]; ok {
			return append([]float64(nil), col...), nil
		}
	}

	return nil, nil
}

// fromRows is the shared construction tail: it validates the aggregation
// name, merges duplicate rows (reducing their weights), and builds the
// per-level unique-label indices. preset, when non-nil, seeds each level's
// index with a caller-supplied label order. A nil ws means weight 1 per
// row. Complexity: O(R·D).
func fromRows(names []string, rows [][]string, ws []float64, preset [][]string, cfg config) (*Entity, error) {
	agg := normalizeAggregate(cfg.agg)
	if !validAggregate(agg) {
		return nil, ErrUnknownAggregate
	}

	e := &Entity{
		uid:    cfg.uid,
		static: !cfg.mutable,
		props:  clonePropertyMap(cfg.props),
		cache:  make(map[viewKind]map[string][]string),
	}
	// Named levels survive even when no row does (an empty restriction of
	// a d-dimensional structure stays d-dimensional); only nameless input
	// yields dimensionality 0.
	if len(names) == 0 {
		return e, nil
	}

	dim := len(names)
	e.levels = make([]levelIndex, dim)
	for i := 0; i < dim; i++ {
		li := levelIndex{name: names[i], index: make(map[string]int)}
		if preset != nil {
			for _, label := range preset[i] {
				li.add(label)
			}
		}
		e.levels[i] = li
	}

	if ws == nil {
		ws = make([]float64, len(rows))
		for i := range ws {
			ws[i] = 1
		}
	} else if len(ws) != len(rows) {
		return nil, ErrWeightLength
	}

	// Merge duplicate tuples, collecting their weights in first-seen order.
	type group struct {
		row []string
		ws  []float64
	}
	seen := make(map[string]int, len(rows))
	groups := make([]group, 0, len(rows))
	for r, row := range rows {
		if len(row) != dim {
			return nil, ErrRowArity
		}
		key := rowKey(row)
		if gi, ok := seen[key]; ok {
			groups[gi].ws = append(groups[gi].ws, ws[r])
			continue
		}
		seen[key] = len(groups)
		groups = append(groups, group{row: append([]string(nil), row...), ws: []float64{ws[r]}})
		for i, label := range row {
			e.levels[i].add(label)
		}
	}

	e.rows = make([][]string, len(groups))
	e.weights = make([]float64, len(groups))
	for i, g := range groups {
		e.rows[i] = g.row
		e.weights[i] = reduce(agg, g.ws)
	}

	return e, nil
}

// rowKey builds the duplicate-detection key for one tuple.
func rowKey(row []string) string {
	return strings.Join(row, tupleSep)
}
