// Package entity: post-construction row mutation.
//
// Mutation is permitted only on entities constructed with WithMutable.
// Every mutating entry point invalidates the derived-view caches before
// returning, per the lifecycle contract. Unique-label indices are
// append-only: removing rows never unregisters labels, keeping label
// indices stable for the instance's lifetime.

package entity

// AddRow appends one tuple with the given cell weight. When the tuple
// already exists, its cell weight accumulates instead (the table keeps one
// cell per tuple). On an entity of dimensionality 0, the first added row
// defines the dimensionality, with default level names.
//
// Returns ErrStaticEntity or ErrRowArity. Complexity: O(R·D).
func (e *Entity) AddRow(items []string, weight float64) error {
	if e.static {
		return ErrStaticEntity
	}
	if len(items) == 0 {
		return ErrRowArity
	}
	if len(e.levels) == 0 {
		e.levels = make([]levelIndex, len(items))
		for i := range e.levels {
			e.levels[i] = levelIndex{name: defaultLevelName(i), index: make(map[string]int)}
		}
	} else if len(items) != len(e.levels) {
		return ErrRowArity
	}

	key := rowKey(items)
	for r, row := range e.rows {
		if rowKey(row) == key {
			e.weights[r] += weight
			e.invalidate()
			return nil
		}
	}

	e.rows = append(e.rows, append([]string(nil), items...))
	e.weights = append(e.weights, weight)
	for i, label := range items {
		e.levels[i].add(label)
	}
	e.invalidate()

	return nil
}

// RemoveRow deletes the row matching the given tuple, along with its cell
// weight. The tuple's labels stay registered in the unique-label indices.
//
// Returns ErrStaticEntity, ErrRowArity or ErrRowNotFound.
// Complexity: O(R·D).
func (e *Entity) RemoveRow(items []string) error {
	if e.static {
		return ErrStaticEntity
	}
	if len(items) != len(e.levels) || len(items) == 0 {
		return ErrRowArity
	}

	key := rowKey(items)
	for r, row := range e.rows {
		if rowKey(row) != key {
			continue
		}
		e.rows = append(e.rows[:r], e.rows[r+1:]...)
		e.weights = append(e.weights[:r], e.weights[r+1:]...)
		e.invalidate()
		return nil
	}

	return ErrRowNotFound
}
