// SPDX-License-Identifier: MIT

// Package setsystem: construction options.
//
// The setsystem package carries its own Option type, distinct from
// entity.Option, because construction here has one concern the base store
// knows nothing about: seeding the cell-property layer. Base-store options
// (UID, mutability, weights, level pair, ...) pass through via WithOptions.
package setsystem

import "github.com/szhorvat/HyperNetX/entity"

// Option configures construction of a SetSystem.
type Option func(*config)

// config collects constructor inputs before delegation to the entity
// package.
type config struct {
	base  []entity.Option
	cells NestedCellProperties
}

// newConfig applies opts over the zero defaults.
func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOptions forwards construction options to the embedded base entity.
// May be given several times; the forwarded options accumulate in order.
func WithOptions(opts ...entity.Option) Option {
	return func(c *config) { c.base = append(c.base, opts...) }
}

// WithCellProperties seeds the cell-property layer at construction from
// the nested mapping shape (level-0 item → level-1 item → property name →
// value). Pairs merge key-wise exactly as AssignCellProperties does, and
// like it the seed is silently ignored when the constructed system is not
// 2-level.
func WithCellProperties(props NestedCellProperties) Option {
	return func(c *config) { c.cells = props }
}
