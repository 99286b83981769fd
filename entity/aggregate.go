// Package entity: cell-weight reductions for duplicate rows.

package entity

import "sort"

// AggregateBy names the reduction applied to the cell weights of rows that
// collapse into one cell (duplicate tuples at construction, or rows made
// duplicate by a level restriction).
type AggregateBy string

const (
	// AggregateSum adds the duplicate weights (the default).
	AggregateSum AggregateBy = "sum"
	// AggregateMean averages the duplicate weights.
	AggregateMean AggregateBy = "mean"
	// AggregateMedian takes the median; even group sizes average the two
	// middle values.
	AggregateMedian AggregateBy = "median"
	// AggregateMax keeps the largest duplicate weight.
	AggregateMax AggregateBy = "max"
	// AggregateMin keeps the smallest duplicate weight.
	AggregateMin AggregateBy = "min"
	// AggregateCount replaces the weight with the duplicate count.
	AggregateCount AggregateBy = "count"
	// AggregateFirst keeps the first-seen duplicate weight.
	AggregateFirst AggregateBy = "first"
	// AggregateLast keeps the last-seen duplicate weight.
	AggregateLast AggregateBy = "last"
	// AggregateNone drops duplicate rows without aggregating, keeping the
	// first-seen weight.
	AggregateNone AggregateBy = "none"
)

// normalizeAggregate maps the empty string onto AggregateNone so callers
// may pass a zero value to mean "no aggregation".
func normalizeAggregate(agg AggregateBy) AggregateBy {
	if agg == "" {
		return AggregateNone
	}

	return agg
}

// validAggregate reports whether agg is a supported reduction.
func validAggregate(agg AggregateBy) bool {
	switch agg {
	case AggregateSum, AggregateMean, AggregateMedian, AggregateMax,
		AggregateMin, AggregateCount, AggregateFirst, AggregateLast,
		AggregateNone:
		return true
	}

	return false
}

// reduce collapses the weights of one duplicate group into a single cell
// weight. ws is the group's weights in first-seen order and must be
// non-empty. Complexity: O(n), O(n log n) for AggregateMedian.
func reduce(agg AggregateBy, ws []float64) float64 {
	switch agg {
	case AggregateSum:
		var sum float64
		for _, w := range ws {
			sum += w
		}
		return sum
	case AggregateMean:
		var sum float64
		for _, w := range ws {
			sum += w
		}
		return sum / float64(len(ws))
	case AggregateMedian:
		sorted := append([]float64(nil), ws...)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2
		}
		return sorted[mid]
	case AggregateMax:
		max := ws[0]
		for _, w := range ws[1:] {
			if w > max {
				max = w
			}
		}
		return max
	case AggregateMin:
		min := ws[0]
		for _, w := range ws[1:] {
			if w < min {
				min = w
			}
		}
		return min
	case AggregateCount:
		return float64(len(ws))
	case AggregateLast:
		return ws[len(ws)-1]
	}
	// AggregateFirst and AggregateNone keep the first-seen weight.
	return ws[0]
}
