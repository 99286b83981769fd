// Package entity implements the base labeled incidence store: an ordered
// table of tuples linking items across labeled dimensions ("levels"),
// together with per-level unique-label indices, per-row cell weights,
// per-item properties, and cached dual views.
//
// What:
//
//   - Entity wraps a canonical table of rows, one label per level, with a
//     parallel cell-weight column (default 1 per row).
//   - Duplicate rows are merged at construction; their weights are combined
//     by a configurable reduction (AggregateBy), or dropped keeping the
//     first-seen weight when the reduction is AggregateNone.
//   - Elements/Memberships expose the dual set-system views over levels
//     0 and 1; both are cached and invalidated on mutation.
//   - RestrictToLevels projects the table onto a subset of levels, with
//     optional weight re-aggregation of rows made duplicate by the
//     projection; RestrictToIndices restricts rows by label index.
//   - IncidenceMatrix renders the table as a dense labeled matrix sized
//     (level-1 labels × level-0 labels).
//
// Why:
//
//   - Hypergraph construction: level-0 items as hyperedges, level-1 items
//     as vertices, cells as incidences.
//   - Bipartite/tabular modeling: any two-dimension relation with weights
//     and item metadata.
//
// Ordering: labels are indexed in first-seen order (or in the caller's
// order when label sets are supplied up front); no ordering beyond that is
// guaranteed. All operations are synchronous, in-memory, and
// single-threaded by contract — share a mutable Entity across goroutines
// only with external synchronization.
//
// Static vs mutable: a static Entity (the default) rejects row mutation,
// so its derived-view caches never need invalidation. Construct with
// WithMutable to allow AddRow/RemoveRow; every mutation invalidates the
// caches before returning.
//
// Complexity:
//
//   - Construction: O(R·D) over R input rows and D levels.
//   - Elements/Memberships: O(R) on first access, O(V) per cached copy.
//   - RestrictToLevels / RestrictToIndices: O(R·D).
//   - IncidenceMatrix: O(N·E + R) time and O(N·E) memory.
//
// Errors:
//
//   - ErrRaggedTable: table columns of differing lengths.
//   - ErrWeightLength: weight array length mismatched against rows/cells.
//   - ErrLabelCount: label sets must cover exactly 2 or all levels.
//   - ErrLabelIndex: data code outside the supplied label range.
//   - ErrLevelOutOfRange, ErrIndexOutOfRange: range violations.
//   - ErrNoLevels: restriction requested with no levels.
//   - ErrUnknownLevel, ErrUnknownLabel: lookup misses.
//   - ErrUnknownAggregate: unrecognized AggregateBy name.
//   - ErrStaticEntity: row mutation on a static instance.
//   - ErrRowArity, ErrRowNotFound: mutation argument violations.
package entity
