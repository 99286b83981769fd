// Package entity: cached derived views over the canonical table.
//
// Elements and Memberships are the dual set-system views over levels 0
// and 1. Both are computed lazily, cached under a viewKind key, and
// invalidated by every mutating entry point; on a static entity the cache
// never expires because the table cannot change.

package entity

// Elements maps each level-0 item to the ordered, deduplicated collection
// of level-1 items appearing with it. For 1-dimensional data every item
// maps to an empty collection (a pure set has no second level); for an
// empty entity the map is empty.
// Complexity: O(R) on first access, O(cells) per returned copy.
func (e *Entity) Elements() map[string][]string {
	switch {
	case len(e.levels) == 0:
		return map[string][]string{}
	case len(e.levels) == 1:
		out := make(map[string][]string, len(e.levels[0].order))
		for _, label := range e.levels[0].order {
			out[label] = []string{}
		}
		return out
	}

	return copyView(e.cachedView(viewElements, 0, 1))
}

// Memberships maps each level-1 item to the ordered, deduplicated
// collection of level-0 items appearing with it — the dual of Elements.
//
// For 1-dimensional data there is no second level to dualize, so
// Memberships returns only a view explicitly seeded via CacheMemberships
// (typically by a level restriction preserving the discarded level), or
// nil when none was seeded.
func (e *Entity) Memberships() map[string][]string {
	if len(e.levels) < 2 {
		if cached, ok := e.cache[viewMemberships]; ok {
			return copyView(cached)
		}
		return nil
	}

	return copyView(e.cachedView(viewMemberships, 1, 0))
}

// ElementsByLevel generalizes Elements to an arbitrary ordered level pair:
// each level0 item maps to the ordered, deduplicated level1 items
// appearing with it. Returns ErrLevelOutOfRange for an invalid pair.
// The result is computed fresh, not cached. Complexity: O(R).
func (e *Entity) ElementsByLevel(level0, level1 int) (map[string][]string, error) {
	dim := len(e.levels)
	if level0 < 0 || level0 >= dim || level1 < 0 || level1 >= dim || level0 == level1 {
		return nil, ErrLevelOutOfRange
	}

	return e.dualView(level0, level1), nil
}

// CacheMemberships seeds the memberships view, overriding any cached or
// derivable value. A level restriction down to one level uses this to
// preserve the discarded level's membership information, which is
// unrecoverable from the projected table alone.
func (e *Entity) CacheMemberships(m map[string][]string) {
	e.cache[viewMemberships] = copyView(m)
}

// cachedView returns the cached dual view for kind, computing and storing
// it on first access.
func (e *Entity) cachedView(kind viewKind, a, b int) map[string][]string {
	if cached, ok := e.cache[kind]; ok {
		return cached
	}
	view := e.dualView(a, b)
	e.cache[kind] = view

	return view
}

// dualView groups level-b items under level-a items in first-seen row
// order, deduplicating per group. Complexity: O(R).
func (e *Entity) dualView(a, b int) map[string][]string {
	out := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	for _, row := range e.rows {
		key, val := row[a], row[b]
		set, ok := seen[key]
		if !ok {
			set = make(map[string]struct{})
			seen[key] = set
		}
		if _, dup := set[val]; dup {
			continue
		}
		set[val] = struct{}{}
		out[key] = append(out[key], val)
	}

	return out
}

// invalidate clears every derived view. Called by each mutating entry
// point before it returns.
func (e *Entity) invalidate() {
	for kind := range e.cache {
		delete(e.cache, kind)
	}
}

// copyView deep-copies a derived view so callers cannot mutate cached
// state.
func copyView(view map[string][]string) map[string][]string {
	if view == nil {
		return nil
	}
	out := make(map[string][]string, len(view))
	for key, vals := range view {
		out[key] = append([]string(nil), vals...)
	}

	return out
}
