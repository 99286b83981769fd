package setsystem_test

import (
	"fmt"

	"github.com/szhorvat/HyperNetX/entity"
	"github.com/szhorvat/HyperNetX/setsystem"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSetSystem_CollapseWithClasses
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three sets where two of them hold exactly the same elements; collapse
//	merges the identical pair into one representative and reports the
//	equivalence classes.
//
// Use case:
//
//	Deduplicating structurally identical hyperedges before analysis.
//
// Complexity: O(R + Σ|signature| log |signature|).
func ExampleSetSystem_CollapseWithClasses() {
	s, err := setsystem.NewFromSets([]entity.NamedSet{
		{Name: "X", Elements: []string{"A", "B"}},
		{Name: "Y", Elements: []string{"B", "A"}},
		{Name: "Z", Elements: []string{"C"}},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	collapsed, classes, err := s.CollapseWithClasses()
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	labels, _ := collapsed.Labels(0)
	for _, label := range labels {
		fmt.Printf("%s -> members %v, elements %v\n",
			label, classes[label], collapsed.Elements()[label])
	}
	// Output:
	// X: 2 -> members [X Y], elements [A B]
	// Z: 1 -> members [Z], elements [C]
}

// ExampleSetSystem_RestrictToLevels projects a system of sets down to its
// item level while preserving the discarded level's memberships.
func ExampleSetSystem_RestrictToLevels() {
	s, err := setsystem.NewFromSets([]entity.NamedSet{
		{Name: "P", Elements: []string{"A", "C"}},
		{Name: "R", Elements: []string{"A"}},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	flat, err := s.RestrictToLevels([]int{1}, false, entity.AggregateNone, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	labels, _ := flat.Labels(0)
	memberships := flat.Memberships()
	for _, item := range labels {
		fmt.Printf("%s in %v\n", item, memberships[item])
	}
	// Output:
	// A in [P R]
	// C in [P]
}
