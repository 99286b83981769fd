// Package entity: level and index restriction.

package entity

// RestrictToLevels projects the canonical table onto the given levels, in
// the given order (the first requested level becomes level 0 of the
// result). Rows made duplicate by the projection are merged; when weights
// is true and aggregateBy is not AggregateNone, their existing cell
// weights are re-aggregated by aggregateBy, otherwise every resulting
// cell gets weight 1. Item properties of surviving labels are carried
// over. The receiver is never mutated.
//
// The result's unique-label indices are rebuilt in first-seen order from
// the projected rows. Extra options configure the new instance (UID,
// mutability, ...); weight options are ignored here.
//
// Returns ErrNoLevels, ErrLevelOutOfRange or ErrUnknownAggregate.
// Complexity: O(R·K) over R rows and K kept levels.
func (e *Entity) RestrictToLevels(levels []int, weights bool, aggregateBy AggregateBy, opts ...Option) (*Entity, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	dim := len(e.levels)
	for _, l := range levels {
		if l < 0 || l >= dim {
			return nil, ErrLevelOutOfRange
		}
	}

	cfg := newConfig(opts)
	cfg.weights, cfg.weightCol = nil, ""

	aggregateBy = normalizeAggregate(aggregateBy)
	var ws []float64
	if weights && aggregateBy != AggregateNone {
		if !validAggregate(aggregateBy) {
			return nil, ErrUnknownAggregate
		}
		ws = append([]float64(nil), e.weights...)
		cfg.agg = aggregateBy
	} else {
		// No re-aggregation requested: drop duplicates and weight every
		// resulting cell 1.
		cfg.agg = AggregateNone
	}

	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = e.levels[l].name
	}
	rows := make([][]string, len(e.rows))
	for r, row := range e.rows {
		projected := make([]string, len(levels))
		for i, l := range levels {
			projected[i] = row[l]
		}
		rows[r] = projected
	}

	out, err := fromRows(names, rows, ws, nil, cfg)
	if err != nil {
		return nil, err
	}
	out.adoptProperties(e.props)

	return out, nil
}

// RestrictToIndices restricts the table to rows whose item at the given
// level is among the labels selected by indices into that level's
// unique-label index. Cell weights are preserved as-is; item properties
// of surviving labels are carried over. The receiver is never mutated.
//
// Returns ErrLevelOutOfRange or ErrIndexOutOfRange. Complexity: O(R·D).
func (e *Entity) RestrictToIndices(level int, indices []int, opts ...Option) (*Entity, error) {
	if level < 0 || level >= len(e.levels) {
		return nil, ErrLevelOutOfRange
	}
	li := e.levels[level]
	selected := make(map[string]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(li.order) {
			return nil, ErrIndexOutOfRange
		}
		selected[li.order[idx]] = struct{}{}
	}

	cfg := newConfig(opts)
	// Rows are unique already; keep their stored weights untouched.
	cfg.weights, cfg.weightCol = nil, ""
	cfg.agg = AggregateNone

	rows := make([][]string, 0, len(e.rows))
	ws := make([]float64, 0, len(e.rows))
	for r, row := range e.rows {
		if _, ok := selected[row[level]]; !ok {
			continue
		}
		rows = append(rows, append([]string(nil), row...))
		ws = append(ws, e.weights[r])
	}

	names := make([]string, len(e.levels))
	for i, lvl := range e.levels {
		names[i] = lvl.name
	}

	out, err := fromRows(names, rows, ws, nil, cfg)
	if err != nil {
		return nil, err
	}
	out.adoptProperties(e.props)

	return out, nil
}
