// SPDX-License-Identifier: MIT

// Package setsystem: domain types for the two-level extension.
package setsystem

import "github.com/szhorvat/HyperNetX/entity"

// CellKey identifies one incidence cell: a (level-0 item, level-1 item)
// pair.
type CellKey struct {
	Edge string // level-0 item
	Node string // level-1 item
}

// CellProperties maps cells to their property sets. Keys not present in
// the canonical table are tolerated but meaningless.
type CellProperties map[CellKey]map[string]any

// NestedCellProperties is the assignment input shape:
// level-0 item → level-1 item → property name → value.
type NestedCellProperties map[string]map[string]map[string]any

// SetSystem is the two-level specialization of the base incidence store.
// The embedded Entity owns the canonical table, label indices, weights
// and item properties; cellProps is the optional cell-property component,
// non-nil exactly when the dimensionality is 2.
type SetSystem struct {
	*entity.Entity

	cellProps CellProperties
}

// wrap attaches the cell-property component when the measured
// dimensionality warrants one, seeding it from cells (nil for none).
func wrap(e *entity.Entity, cells NestedCellProperties) *SetSystem {
	s := &SetSystem{Entity: e}
	if e.Dimsize() == 2 {
		s.cellProps = make(CellProperties)
		s.AssignCellProperties(cells)
	}

	return s
}
