// Package setsystem: constructors.
//
// Each constructor resolves its Option set, delegates table normalization
// to the entity package, and then attaches the cell-property component
// when exactly 2 active levels came out of it. Unlike the entity
// constructors, projection onto a pair of levels is always on here: a
// SetSystem models edges over nodes, so input wider than 2 columns is
// reduced to the active pair (level 0 and 1 unless a forwarded WithLevels
// picks another pair).

package setsystem

import "github.com/szhorvat/HyperNetX/entity"

// projected prepends the default active pair so that wide input collapses
// to 2 levels; a forwarded entity.WithLevels runs later and wins.
func projected(base []entity.Option) []entity.Option {
	return append([]entity.Option{entity.WithLevels(0, 1)}, base...)
}

// New constructs an empty SetSystem: zero rows, dimensionality 0, no
// cell-property component.
func New(opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	e, err := entity.New(projected(cfg.base)...)
	if err != nil {
		return nil, err
	}

	return wrap(e, cfg.cells), nil
}

// NewFromTable constructs a SetSystem from column-oriented tabular input;
// see entity.NewFromTable for the projection and weight-source contract.
func NewFromTable(tbl *entity.Table, opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	e, err := entity.NewFromTable(tbl, projected(cfg.base)...)
	if err != nil {
		return nil, err
	}

	return wrap(e, cfg.cells), nil
}

// NewFromData constructs a SetSystem from an M×N integer array plus
// ordered label sets; see entity.NewFromData.
func NewFromData(data [][]int, labels []entity.LevelLabels, opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	e, err := entity.NewFromData(data, labels, projected(cfg.base)...)
	if err != nil {
		return nil, err
	}

	return wrap(e, cfg.cells), nil
}

// NewFromSets constructs a SetSystem from a system of sets; see
// entity.NewFromSets for the weight-length contract.
func NewFromSets(sets []entity.NamedSet, opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	e, err := entity.NewFromSets(sets, projected(cfg.base)...)
	if err != nil {
		return nil, err
	}

	return wrap(e, cfg.cells), nil
}

// NewFromEntity constructs a SetSystem over a copy of an existing base
// entity, keeping its cell weights unless overridden; input of more than
// 2 dimensions is projected onto the active levels. See
// entity.NewFromEntity.
func NewFromEntity(e *entity.Entity, opts ...Option) (*SetSystem, error) {
	cfg := newConfig(opts)
	base, err := entity.NewFromEntity(e, projected(cfg.base)...)
	if err != nil {
		return nil, err
	}

	return wrap(base, cfg.cells), nil
}
