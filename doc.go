// Package hypernetx is an in-memory toolkit for modeling incidence data —
// tuples linking items across labeled dimensions — on the way to bipartite
// hypergraph representations.
//
// 🚀 What is HyperNetX (Go core)?
//
//	A small, focused library that brings together:
//		• entity: the labeled incidence store — canonical tuple table,
//		  per-level unique-label indices, cell weights with configurable
//		  duplicate aggregation, per-item properties, cached dual views
//		• setsystem: the two-level "system of sets" extension — per-cell
//		  properties, level restriction with weight re-aggregation and
//		  membership preservation, collapse of structurally identical sets
//
// ✨ Why?
//
//   - Deterministic – first-seen insertion order everywhere, no map-order leaks
//   - Rock-solid contracts – sentinel errors, construct-fully-or-fail
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	entity/    — base incidence store: construction, restriction, views, matrices
//	setsystem/ — 2-level extension: cell properties, restriction, collapse
//
// Quick ASCII example, a system of sets over two levels:
//
//	    P ── {A, C, K}
//	    R ── {A, E}
//
//	two sets (level 0) sharing element A (level 1): four incidence cells.
//
// Dive into the package docs for contracts, complexity notes and errors.
//
//	go get github.com/szhorvat/HyperNetX
package hypernetx
