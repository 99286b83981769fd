package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/szhorvat/HyperNetX/entity"
)

func TestAssignProperties_Merge(t *testing.T) {
	e, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C"}},
	}, entity.WithProperties(map[string]map[string]any{
		"A": {"color": "red", "size": 1},
	}))
	require.NoError(t, err)

	// Key-wise overlay: size survives, color updates, weight is new.
	e.AssignProperties(map[string]map[string]any{
		"A": {"color": "blue", "weight": 2.5},
		"C": {"color": "green"},
	})
	require.Equal(t, map[string]any{"color": "blue", "size": 1, "weight": 2.5}, e.Properties("A"))
	require.Equal(t, map[string]any{"color": "green"}, e.Properties("C"))
	require.Nil(t, e.Properties("P"))
}

func TestAssignProperties_WorksOnStatic(t *testing.T) {
	e, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A"}},
	})
	require.NoError(t, err)
	require.True(t, e.IsStatic())

	e.AssignProperties(map[string]map[string]any{"P": {"kind": "set"}})
	require.Equal(t, map[string]any{"kind": "set"}, e.Properties("P"))
}

func TestProperties_ReturnsCopy(t *testing.T) {
	e, err := entity.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A"}},
	})
	require.NoError(t, err)
	e.AssignProperties(map[string]map[string]any{"A": {"color": "red"}})

	got := e.Properties("A")
	got["color"] = "mutated"
	require.Equal(t, map[string]any{"color": "red"}, e.Properties("A"))
}
