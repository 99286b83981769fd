// Package setsystem: collapse of structurally identical sets.
//
// Two level-0 items are structurally identical when they are associated
// with exactly the same set of level-1 items — same signature — ignoring
// weights, multiplicity and cell properties. Collapse merges each such
// equivalence class into one representative set; the operation is purely
// structural, so weights and cell properties are intentionally discarded.

package setsystem

import (
	"fmt"
	"sort"
	"strings"

	"github.com/szhorvat/HyperNetX/entity"
)

// signatureSep separates labels inside signature keys; the unit separator
// is assumed absent from item labels.
const signatureSep = "\x1f"

// CollapseIdenticalElements returns a new SetSystem in which level-0
// items sharing an identical level-1 signature are merged into one
// representative, labeled "<first-encountered item>: <class size>". If
// every signature is unique the result has the same number of sets as the
// receiver, modulo relabeling. Extra options configure the new instance.
//
// Returns entity.ErrLevelOutOfRange for data below 2 levels.
// Complexity: O(R + Σ|signature| log |signature|).
func (s *SetSystem) CollapseIdenticalElements(opts ...Option) (*SetSystem, error) {
	sets, _, err := s.collapse()
	if err != nil {
		return nil, err
	}

	return NewFromSets(sets, opts...)
}

// CollapseWithClasses is CollapseIdenticalElements plus the equivalence
// classes: a mapping from each representative label to the original
// level-0 item labels in its class, in first-encountered order. The sum
// of class sizes equals the receiver's count of distinct level-0 items
// with at least one cell.
func (s *SetSystem) CollapseWithClasses(opts ...Option) (*SetSystem, map[string][]string, error) {
	sets, classes, err := s.collapse()
	if err != nil {
		return nil, nil, err
	}
	collapsed, err := NewFromSets(sets, opts...)
	if err != nil {
		return nil, nil, err
	}

	return collapsed, classes, nil
}

// collapse groups level-0 items by signature, in first-encountered order,
// and materializes one NamedSet per equivalence class. The class's member
// list and the representative's element order follow the first member's
// first-seen orders.
func (s *SetSystem) collapse() ([]entity.NamedSet, map[string][]string, error) {
	elements, err := s.ElementsByLevel(0, 1)
	if err != nil {
		return nil, nil, err
	}
	edges, err := s.Labels(0)
	if err != nil {
		return nil, nil, err
	}

	type class struct {
		members   []string
		signature []string
	}
	index := make(map[string]int)
	ordered := make([]*class, 0, len(edges))
	for _, edge := range edges {
		nodes := elements[edge]
		if len(nodes) == 0 {
			continue // indexed label without cells: nothing to group
		}
		key := signatureKey(nodes)
		if ci, ok := index[key]; ok {
			ordered[ci].members = append(ordered[ci].members, edge)
			continue
		}
		index[key] = len(ordered)
		ordered = append(ordered, &class{members: []string{edge}, signature: nodes})
	}

	sets := make([]entity.NamedSet, len(ordered))
	classes := make(map[string][]string, len(ordered))
	for i, c := range ordered {
		rep := representativeLabel(c.members[0], len(c.members))
		sets[i] = entity.NamedSet{Name: rep, Elements: c.signature}
		classes[rep] = append([]string(nil), c.members...)
	}

	return sets, classes, nil
}

// signatureKey canonicalizes a deduplicated element list into an
// order-insensitive key.
func signatureKey(nodes []string) string {
	sorted := append([]string(nil), nodes...)
	sort.Strings(sorted)

	return strings.Join(sorted, signatureSep)
}

// representativeLabel formats the synthesized label of one equivalence
// class. The "<first>: <count>" shape is a visible contract — downstream
// consumers parse it — so the format lives in this one function.
func representativeLabel(first string, size int) string {
	return fmt.Sprintf("%s: %d", first, size)
}
