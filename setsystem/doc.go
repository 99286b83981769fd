// Package setsystem specializes the base incidence store to exactly two
// active levels — a "system of sets", where level-0 items are sets
// (hyperedges) and level-1 items are their elements — and layers per-cell
// properties on top.
//
// What:
//
//   - SetSystem composes an *entity.Entity with an optional cell-property
//     component, attached only when the measured dimensionality is
//     exactly 2 (cell properties are undefined for pure sets).
//   - Construction mirrors the entity package — tabular, integer-array,
//     set-mapping and copy inputs — projecting higher-dimensional input
//     onto the two active levels and preserving a named weight column
//     through the projection. Base-store options forward via WithOptions;
//     WithCellProperties seeds the cell-property layer at construction.
//   - AssignCellProperties merges nested (set → element → name → value)
//     properties into the cell-property layer, overlaying key-wise per
//     pair; it is a silent no-op off two levels.
//   - RestrictToLevels extends the base projection: when exactly one
//     level is retained, the result's memberships view is seeded from the
//     receiver, preserving the discarded level's membership information.
//   - CollapseIdenticalElements merges sets with identical element
//     signatures into one representative labeled "<first>: <count>";
//     CollapseWithClasses additionally reports the equivalence classes.
//
// Complexity:
//
//   - Construction: O(cells).
//   - RestrictToLevels / RestrictTo: O(R·K).
//   - Collapse: O(R + Σ|signature| log |signature|).
//
// Errors: construction and restriction propagate the entity package's
// sentinels (entity.ErrLevelOutOfRange, entity.ErrWeightLength, ...);
// collapse returns entity.ErrLevelOutOfRange for data below 2 levels.
package setsystem
