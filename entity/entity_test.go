package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/szhorvat/HyperNetX/entity"
)

// musicTable is the tabular fixture: 6 rows over 2 label columns plus a
// numeric play-count column.
func musicTable() *entity.Table {
	return &entity.Table{
		ColumnNames: []string{"artist", "track"},
		Columns: [][]string{
			{"ayla", "ayla", "benny", "benny", "cora", "cora"},
			{"dawn", "ember", "dawn", "flux", "ember", "flux"},
		},
		Numeric: map[string][]float64{
			"plays": {3, 1, 4, 1, 5, 9},
		},
	}
}

func TestNew_Empty(t *testing.T) {
	e, err := entity.New()
	require.NoError(t, err)
	require.Equal(t, 0, e.Dimsize())
	require.True(t, e.Empty())
	require.Equal(t, 0, e.Size())
	require.Equal(t, 0, e.NumRows())
	require.True(t, e.IsStatic())
}

func TestNewFromSets_Basics(t *testing.T) {
	e, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C", "K"}},
		{Name: "R", Elements: []string{"A", "E"}},
	}, entity.WithUID("sbs"))
	require.NoError(t, err)

	require.Equal(t, "sbs", e.UID())
	require.Equal(t, 2, e.Dimsize())
	require.Equal(t, 2, e.Size())
	require.Equal(t, 5, e.NumRows())
	require.Equal(t, []string{"edges", "nodes"}, e.LevelNames())

	// Label order is first-seen across rows.
	edges, err := e.Labels(0)
	require.NoError(t, err)
	require.Equal(t, []string{"P", "R"}, edges)
	nodes, err := e.Labels(1)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "K", "E"}, nodes)

	// Every cell defaults to weight 1.
	require.Equal(t, []float64{1, 1, 1, 1, 1}, e.Weights())
}

func TestNewFromSets_WeightLength(t *testing.T) {
	_, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C"}},
	}, entity.WithWeights([]float64{1, 2, 3}))
	require.ErrorIs(t, err, entity.ErrWeightLength)
}

func TestNewFromSets_DuplicateAggregation(t *testing.T) {
	// P/A appears twice; default aggregation sums the weights.
	sets := []entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C", "A"}},
		{Name: "R", Elements: []string{"A"}},
	}
	e, err := entity.NewFromSets(sets, entity.WithWeights([]float64{2, 5, 7, 11}))
	require.NoError(t, err)
	require.Equal(t, 3, e.NumRows())
	require.Equal(t, []float64{9, 5, 11}, e.Weights())

	// AggregateNone keeps the first-seen weight instead.
	e, err = entity.NewFromSets(sets,
		entity.WithWeights([]float64{2, 5, 7, 11}),
		entity.WithAggregateBy(entity.AggregateNone))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 11}, e.Weights())
}

func TestNewFromSets_AggregationReductions(t *testing.T) {
	// One tuple repeated three times with weights 4, 1, 3.
	sets := []entity.NamedSet{{Name: "P", Elements: []string{"A", "A", "A"}}}
	ws := []float64{4, 1, 3}

	tests := []struct {
		agg  entity.AggregateBy
		want float64
	}{
		{entity.AggregateSum, 8},
		{entity.AggregateMedian, 3},
		{entity.AggregateMax, 4},
		{entity.AggregateMin, 1},
		{entity.AggregateCount, 3},
		{entity.AggregateFirst, 4},
		{entity.AggregateLast, 3},
		{entity.AggregateNone, 4},
	}
	for _, tc := range tests {
		t.Run(string(tc.agg), func(t *testing.T) {
			e, err := entity.NewFromSets(sets,
				entity.WithWeights(ws), entity.WithAggregateBy(tc.agg))
			require.NoError(t, err)
			require.Equal(t, []float64{tc.want}, e.Weights())
		})
	}

	e, err := entity.NewFromSets(sets,
		entity.WithWeights(ws), entity.WithAggregateBy(entity.AggregateMean))
	require.NoError(t, err)
	require.InDelta(t, 8.0/3.0, e.Weights()[0], 1e-12)

	// Even group size: the median averages the two middle values.
	even := []entity.NamedSet{{Name: "P", Elements: []string{"A", "A", "A", "A"}}}
	e, err = entity.NewFromSets(even,
		entity.WithWeights([]float64{4, 1, 3, 7}),
		entity.WithAggregateBy(entity.AggregateMedian))
	require.NoError(t, err)
	require.Equal(t, []float64{3.5}, e.Weights())

	_, err = entity.NewFromSets(sets, entity.WithAggregateBy("mode"))
	require.ErrorIs(t, err, entity.ErrUnknownAggregate)
}

func TestNewFromTable_Basics(t *testing.T) {
	e, err := entity.NewFromTable(musicTable(), entity.WithWeightColumn("plays"))
	require.NoError(t, err)

	require.Equal(t, 2, e.Dimsize())
	require.Equal(t, []string{"artist", "track"}, e.LevelNames())
	require.Equal(t, 3, e.Size())
	require.Equal(t, 6, e.NumRows())
	require.Equal(t, []float64{3, 1, 4, 1, 5, 9}, e.Weights())

	cells := e.Cells()
	require.Equal(t, []string{"ayla", "dawn"}, cells[0].Items)
	require.Equal(t, 3.0, cells[0].Weight)
}

func TestNewFromTable_UnresolvableWeightColumn(t *testing.T) {
	// A weight column name with no numeric column behind it falls back to
	// weight 1 per cell.
	e, err := entity.NewFromTable(musicTable(), entity.WithWeightColumn("missing"))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1, 1, 1}, e.Weights())
}

func TestNewFromTable_Errors(t *testing.T) {
	t.Run("ragged columns", func(t *testing.T) {
		_, err := entity.NewFromTable(&entity.Table{
			ColumnNames: []string{"a", "b"},
			Columns:     [][]string{{"x", "y"}, {"u"}},
		})
		require.ErrorIs(t, err, entity.ErrRaggedTable)
	})
	t.Run("ragged numeric", func(t *testing.T) {
		_, err := entity.NewFromTable(&entity.Table{
			ColumnNames: []string{"a", "b"},
			Columns:     [][]string{{"x"}, {"u"}},
			Numeric:     map[string][]float64{"w": {1, 2}},
		})
		require.ErrorIs(t, err, entity.ErrRaggedTable)
	})
	t.Run("weight length", func(t *testing.T) {
		_, err := entity.NewFromTable(musicTable(), entity.WithWeights([]float64{1}))
		require.ErrorIs(t, err, entity.ErrWeightLength)
	})
	t.Run("nil table is empty", func(t *testing.T) {
		e, err := entity.NewFromTable(nil)
		require.NoError(t, err)
		require.Equal(t, 0, e.Dimsize())
	})
}

func TestNewFromTable_WideKeepsAllLevels(t *testing.T) {
	tbl := &entity.Table{
		ColumnNames: []string{"region", "store", "item", "batch"},
		Columns: [][]string{
			{"north", "north", "south"},
			{"s1", "s2", "s3"},
			{"apples", "pears", "apples"},
			{"b1", "b2", "b3"},
		},
	}
	e, err := entity.NewFromTable(tbl)
	require.NoError(t, err)
	require.Equal(t, 4, e.Dimsize())
	require.Equal(t, []string{"region", "store", "item", "batch"}, e.LevelNames())
}

func TestNewFromTable_ProjectionWithWeightColumn(t *testing.T) {
	tbl := &entity.Table{
		ColumnNames: []string{"region", "store", "item", "batch"},
		Columns: [][]string{
			{"north", "north", "south"},
			{"s1", "s2", "s1"},
			{"apples", "pears", "apples"},
			{"b1", "b2", "b3"},
		},
		Numeric: map[string][]float64{"qty": {10, 20, 30}},
	}
	e, err := entity.NewFromTable(tbl,
		entity.WithLevels(1, 2), entity.WithWeightColumn("qty"))
	require.NoError(t, err)

	require.Equal(t, 2, e.Dimsize())
	require.Equal(t, []string{"store", "item"}, e.LevelNames())
	// (s1, apples) appears twice; projection keeps the numeric weights and
	// the duplicate merges by the default sum.
	require.Equal(t, 2, e.NumRows())
	require.Equal(t, []float64{40, 20}, e.Weights())

	_, err = entity.NewFromTable(tbl, entity.WithLevels(1, 7))
	require.ErrorIs(t, err, entity.ErrLevelOutOfRange)
	_, err = entity.NewFromTable(tbl, entity.WithLevels(2, 2))
	require.ErrorIs(t, err, entity.ErrLevelOutOfRange)
}

func TestNewFromData_PresetLabels(t *testing.T) {
	labels := []entity.LevelLabels{
		{Name: "edges", Labels: []string{"e0", "e1", "e2"}},
		{Name: "nodes", Labels: []string{"n0", "n1"}},
	}
	e, err := entity.NewFromData([][]int{{2, 0}, {0, 1}}, labels)
	require.NoError(t, err)

	// Preset order wins over first-seen order, and unreferenced labels
	// (e1) stay indexed.
	got, err := e.Labels(0)
	require.NoError(t, err)
	require.Equal(t, []string{"e0", "e1", "e2"}, got)
	require.Equal(t, 3, e.Size())
	require.Equal(t, 2, e.NumRows())

	idx, err := e.Index("edges", "e2")
	require.NoError(t, err)
	require.Equal(t, 2, idx)
}

func TestNewFromData_Errors(t *testing.T) {
	labels := []entity.LevelLabels{
		{Name: "edges", Labels: []string{"e0"}},
		{Name: "nodes", Labels: []string{"n0"}},
	}
	t.Run("label count", func(t *testing.T) {
		_, err := entity.NewFromData([][]int{{0, 0, 0}}, labels)
		require.ErrorIs(t, err, entity.ErrLabelCount)
	})
	t.Run("two sets only valid with projection", func(t *testing.T) {
		_, err := entity.NewFromData([][]int{{0, 0, 0}}, labels, entity.WithLevels(0, 1))
		require.NoError(t, err)
	})
	t.Run("label index", func(t *testing.T) {
		_, err := entity.NewFromData([][]int{{0, 1}}, labels)
		require.ErrorIs(t, err, entity.ErrLabelIndex)
	})
	t.Run("ragged rows", func(t *testing.T) {
		_, err := entity.NewFromData([][]int{{0, 0}, {0}}, labels)
		require.ErrorIs(t, err, entity.ErrRaggedTable)
	})
	t.Run("weight length", func(t *testing.T) {
		_, err := entity.NewFromData([][]int{{0, 0}}, labels,
			entity.WithWeights([]float64{1, 2}))
		require.ErrorIs(t, err, entity.ErrWeightLength)
	})
	t.Run("empty data", func(t *testing.T) {
		e, err := entity.NewFromData(nil, nil)
		require.NoError(t, err)
		require.True(t, e.Empty())
	})
}

func TestNewFromEntity_CopyAndOverride(t *testing.T) {
	src, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C"}},
		{Name: "R", Elements: []string{"A"}},
	}, entity.WithWeights([]float64{2, 3, 4}))
	require.NoError(t, err)
	src.AssignProperties(map[string]map[string]any{"A": {"color": "red"}})

	cp, err := entity.NewFromEntity(src, entity.WithUID("copy"))
	require.NoError(t, err)
	require.Equal(t, "copy", cp.UID())
	require.Equal(t, src.NumRows(), cp.NumRows())
	require.Equal(t, []float64{2, 3, 4}, cp.Weights())
	require.Equal(t, map[string]any{"color": "red"}, cp.Properties("A"))

	// Replacement weights must match the row count.
	cp, err = entity.NewFromEntity(src, entity.WithWeights([]float64{7, 8, 9}))
	require.NoError(t, err)
	require.Equal(t, []float64{7, 8, 9}, cp.Weights())
	_, err = entity.NewFromEntity(src, entity.WithWeights([]float64{7}))
	require.ErrorIs(t, err, entity.ErrWeightLength)

	_, err = entity.NewFromEntity(nil)
	require.ErrorIs(t, err, entity.ErrNilEntity)
}

func TestNewFromEntity_ProjectionReaggregatesReplacementWeights(t *testing.T) {
	tbl := &entity.Table{
		ColumnNames: []string{"edges", "nodes", "years"},
		Columns: [][]string{
			{"P", "P", "R"},
			{"A", "A", "A"},
			{"1999", "2004", "1999"},
		},
	}
	src, err := entity.NewFromTable(tbl)
	require.NoError(t, err)
	require.Equal(t, 3, src.Dimsize())

	// Replacement weights are applied before the projection merges rows,
	// so the re-aggregation sums the replacements.
	cp, err := entity.NewFromEntity(src,
		entity.WithLevels(0, 1), entity.WithWeights([]float64{2, 3, 4}))
	require.NoError(t, err)
	require.Equal(t, 2, cp.Dimsize())
	cells := cp.Cells()
	require.Equal(t, []string{"P", "A"}, cells[0].Items)
	require.Equal(t, 5.0, cells[0].Weight)
	require.Equal(t, []string{"R", "A"}, cells[1].Items)
	require.Equal(t, 4.0, cells[1].Weight)

	_, err = entity.NewFromEntity(src,
		entity.WithLevels(0, 1), entity.WithWeights([]float64{2}))
	require.ErrorIs(t, err, entity.ErrWeightLength)
}

func TestIndices(t *testing.T) {
	e, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C", "K"}},
	})
	require.NoError(t, err)

	got, err := e.Indices("nodes", "K", "A")
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, got)

	_, err = e.Indices("colors", "A")
	require.ErrorIs(t, err, entity.ErrUnknownLevel)
	_, err = e.Indices("nodes", "Z")
	require.ErrorIs(t, err, entity.ErrUnknownLabel)
	_, err = e.Labels(5)
	require.ErrorIs(t, err, entity.ErrLevelOutOfRange)
}
