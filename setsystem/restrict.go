// Package setsystem: level and index restriction over the two-level
// extension.

package setsystem

import "github.com/szhorvat/HyperNetX/entity"

// RestrictToLevels extends the base projection (entity.RestrictToLevels)
// with membership preservation: when keepMemberships is true and exactly
// one level is retained — projecting a system of sets down to a pure set
// — the result's memberships view is seeded from the receiver's, since it
// is unrecoverable from the projected table alone. Restrictions retaining
// several levels get no such seeding; only the collapse-to-one-level case
// is supported.
//
// Cell properties are level-pair–specific and are always dropped; the
// result starts with an empty cell-property layer when it is 2-level
// (seedable via WithCellProperties). Returns a new instance; the receiver
// is never mutated.
//
// Returns entity.ErrNoLevels, entity.ErrLevelOutOfRange or
// entity.ErrUnknownAggregate.
func (s *SetSystem) RestrictToLevels(levels []int, weights bool, aggregateBy entity.AggregateBy, keepMemberships bool, opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	base, err := s.Entity.RestrictToLevels(levels, weights, aggregateBy, cfg.base...)
	if err != nil {
		return nil, err
	}
	out := wrap(base, cfg.cells)
	if keepMemberships && len(levels) == 1 {
		out.CacheMemberships(s.Memberships())
	}

	return out, nil
}

// RestrictTo restricts to the level-0 items selected by indices into the
// level-0 unique-label index — an alias of entity.RestrictToIndices with
// level 0. Cell properties are dropped.
//
// Returns entity.ErrLevelOutOfRange or entity.ErrIndexOutOfRange.
func (s *SetSystem) RestrictTo(indices []int, opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	base, err := s.Entity.RestrictToIndices(0, indices, cfg.base...)
	if err != nil {
		return nil, err
	}

	return wrap(base, cfg.cells), nil
}
