package setsystem_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/szhorvat/HyperNetX/entity"
	"github.com/szhorvat/HyperNetX/setsystem"
)

// sevenBySix is the standard system-of-sets fixture: 6 sets over 7 items,
// so the incidence matrix has shape (7, 6).
func sevenBySix(t *testing.T, opts ...setsystem.Option) *setsystem.SetSystem {
	t.Helper()
	s, err := setsystem.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C", "K"}},
		{Name: "R", Elements: []string{"A", "E"}},
		{Name: "S", Elements: []string{"A", "K", "T2", "V"}},
		{Name: "L", Elements: []string{"C", "E"}},
		{Name: "O", Elements: []string{"T1", "T2"}},
		{Name: "I", Elements: []string{"K", "T2"}},
	}, opts...)
	require.NoError(t, err)

	return s
}

// circusData is the multi-level fixture: 36 performances over 4 levels
// (director, troupe, venue, act). Eleven troupes play fixed venue sets;
// troupes T01/T02 and T03/T04 share venue signatures, every other troupe's
// signature is unique, and every act appears exactly once.
func circusData(t *testing.T) *entity.Entity {
	t.Helper()
	specs := []struct {
		director string
		troupe   string
		venues   []string
		acts     int
	}{
		{"delacroix", "T01", []string{"va", "vb"}, 4},
		{"delacroix", "T02", []string{"va", "vb"}, 4},
		{"delacroix", "T03", []string{"vc"}, 3},
		{"morozova", "T04", []string{"vc"}, 3},
		{"morozova", "T05", []string{"va"}, 3},
		{"morozova", "T06", []string{"vb"}, 3},
		{"morozova", "T07", []string{"vd"}, 3},
		{"okafor", "T08", []string{"ve"}, 3},
		{"okafor", "T09", []string{"vf"}, 3},
		{"okafor", "T10", []string{"vg"}, 3},
		{"okafor", "T11", []string{"va", "vc"}, 4},
	}

	var directors, troupes, venues, acts []string
	act := 0
	for _, sp := range specs {
		for i := 0; i < sp.acts; i++ {
			act++
			directors = append(directors, sp.director)
			troupes = append(troupes, sp.troupe)
			venues = append(venues, sp.venues[i%len(sp.venues)])
			acts = append(acts, fmt.Sprintf("A%02d", act))
		}
	}
	require.Equal(t, 36, act)

	e, err := entity.NewFromTable(&entity.Table{
		ColumnNames: []string{"director", "troupe", "venue", "act"},
		Columns:     [][]string{directors, troupes, venues, acts},
	})
	require.NoError(t, err)

	return e
}
