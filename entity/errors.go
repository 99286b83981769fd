// SPDX-License-Identifier: MIT
// Package entity: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// entity package. All operations return these sentinels and callers match
// them via errors.Is. Panics are reserved for programmer errors in private
// helpers (if any).

package entity

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "entity: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrRaggedTable indicates tabular input whose columns (label or
	// numeric) do not all share one length, or whose column/name counts
	// disagree.
	ErrRaggedTable = errors.New("entity: table columns must have equal length")

	// ErrWeightLength indicates a user-supplied weight array whose length
	// does not match the expected row (or total cell) count.
	ErrWeightLength = errors.New("entity: weight array length mismatch")

	// ErrLabelCount indicates a label-set list not covering all levels of
	// the accompanying data array (projected input may cover just the
	// active pair).
	ErrLabelCount = errors.New("entity: label sets must cover all levels")

	// ErrLabelIndex indicates an integer data code outside the range of the
	// supplied label set for its level.
	ErrLabelIndex = errors.New("entity: data code outside label range")

	// ErrLevelOutOfRange indicates a level index outside the entity's
	// dimensionality, or an operation requiring more levels than exist.
	ErrLevelOutOfRange = errors.New("entity: level index out of range")

	// ErrIndexOutOfRange indicates a label index outside a level's
	// unique-label index.
	ErrIndexOutOfRange = errors.New("entity: label index out of range")

	// ErrNoLevels indicates a level restriction requested with an empty
	// level list.
	ErrNoLevels = errors.New("entity: at least one level required")

	// ErrUnknownLevel indicates a level name not present in the entity.
	ErrUnknownLevel = errors.New("entity: unknown level name")

	// ErrUnknownLabel indicates an item label not present in the queried
	// level's unique-label index.
	ErrUnknownLabel = errors.New("entity: unknown item label")

	// ErrUnknownAggregate indicates an AggregateBy value outside the
	// supported reduction set.
	ErrUnknownAggregate = errors.New("entity: unknown aggregation name")

	// ErrStaticEntity indicates an attempted row mutation on a static
	// (immutable) instance.
	ErrStaticEntity = errors.New("entity: static entity cannot be mutated")

	// ErrRowArity indicates a mutation row whose item count does not match
	// the entity's dimensionality.
	ErrRowArity = errors.New("entity: row arity does not match dimensionality")

	// ErrRowNotFound indicates a RemoveRow target absent from the table.
	ErrRowNotFound = errors.New("entity: row not found")

	// ErrNilEntity indicates a nil *Entity passed where a value is required.
	ErrNilEntity = errors.New("entity: entity is nil")
)
