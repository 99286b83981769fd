// Package entity: query accessors over the canonical table and the
// per-level unique-label indices. All accessors return copies; internal
// state is never exposed for mutation.

package entity

// Dimsize returns the entity's dimensionality (number of levels).
// Complexity: O(1).
func (e *Entity) Dimsize() int {
	return len(e.levels)
}

// Empty reports whether the canonical table has no rows.
// Complexity: O(1).
func (e *Entity) Empty() bool {
	return len(e.rows) == 0
}

// NumRows returns the number of rows (cells) in the canonical table.
// Complexity: O(1).
func (e *Entity) NumRows() int {
	return len(e.rows)
}

// Size returns the number of unique level-0 items, or 0 for an empty
// entity. Complexity: O(1).
func (e *Entity) Size() int {
	if len(e.levels) == 0 {
		return 0
	}

	return len(e.levels[0].order)
}

// UID returns the identifier supplied at construction, if any.
func (e *Entity) UID() string {
	return e.uid
}

// IsStatic reports whether the entity is immutable. Static entities
// reject row mutation and keep derived-view caches for their lifetime.
func (e *Entity) IsStatic() bool {
	return e.static
}

// LevelNames returns the ordered level names. Complexity: O(D).
func (e *Entity) LevelNames() []string {
	names := make([]string, len(e.levels))
	for i, li := range e.levels {
		names[i] = li.name
	}

	return names
}

// Labels returns the unique-label index of the given level, in index
// order. Returns ErrLevelOutOfRange. Complexity: O(V).
func (e *Entity) Labels(level int) ([]string, error) {
	if level < 0 || level >= len(e.levels) {
		return nil, ErrLevelOutOfRange
	}

	return append([]string(nil), e.levels[level].order...), nil
}

// Index returns the position of label inside the named level's
// unique-label index. Returns ErrUnknownLevel or ErrUnknownLabel.
// Complexity: O(D) for the name lookup, O(1) for the label.
func (e *Entity) Index(levelName, label string) (int, error) {
	level, ok := e.levelByName(levelName)
	if !ok {
		return 0, ErrUnknownLevel
	}
	idx, ok := e.levels[level].index[label]
	if !ok {
		return 0, ErrUnknownLabel
	}

	return idx, nil
}

// Indices maps each label to its position inside the named level's
// unique-label index. Returns ErrUnknownLevel or ErrUnknownLabel.
func (e *Entity) Indices(levelName string, labels ...string) ([]int, error) {
	level, ok := e.levelByName(levelName)
	if !ok {
		return nil, ErrUnknownLevel
	}
	out := make([]int, len(labels))
	for i, label := range labels {
		idx, ok := e.levels[level].index[label]
		if !ok {
			return nil, ErrUnknownLabel
		}
		out[i] = idx
	}

	return out, nil
}

// Cells returns the canonical table as an ordered slice of (tuple, weight)
// cells. Complexity: O(R·D).
func (e *Entity) Cells() []Cell {
	out := make([]Cell, len(e.rows))
	for r, row := range e.rows {
		out[r] = Cell{
			Items:  append([]string(nil), row...),
			Weight: e.weights[r],
		}
	}

	return out
}

// Weights returns the cell weights in table order. Complexity: O(R).
func (e *Entity) Weights() []float64 {
	return append([]float64(nil), e.weights...)
}

// levelByName resolves a level name to its position.
func (e *Entity) levelByName(name string) (int, bool) {
	for i, li := range e.levels {
		if li.name == name {
			return i, true
		}
	}

	return 0, false
}
