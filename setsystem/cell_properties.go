// Package setsystem: the per-cell property layer.
//
// Cell properties attach to (level-0 item, level-1 item) pairs, distinct
// from item properties. The layer exists only at dimensionality 2; for
// other dimensionalities the accessor returns nil and assignment is a
// silent no-op (callers needing strict validation check Dimsize first).
// Like item properties, the layer never touches the canonical table, so
// assignment works on static instances too.

package setsystem

// CellProperties returns a copy of the current cell-property mapping, or
// nil when the dimensionality is not 2.
func (s *SetSystem) CellProperties() CellProperties {
	if s.cellProps == nil {
		return nil
	}
	out := make(CellProperties, len(s.cellProps))
	for key, kv := range s.cellProps {
		inner := make(map[string]any, len(kv))
		for name, value := range kv {
			inner[name] = value
		}
		out[key] = inner
	}

	return out
}

// AssignCellProperties merges props into the cell-property layer. For
// pairs present on both sides the incoming property set overlays the
// existing one key-wise (per-name updates, not wholesale replacement);
// pairs present on one side only are kept as-is. Pairs absent from the
// canonical table are stored but orphaned. Side effect only; silent
// no-op when the dimensionality is not 2.
func (s *SetSystem) AssignCellProperties(props NestedCellProperties) {
	if s.cellProps == nil {
		return
	}
	for edge, nodes := range props {
		for node, kv := range nodes {
			key := CellKey{Edge: edge, Node: node}
			existing, ok := s.cellProps[key]
			if !ok {
				existing = make(map[string]any, len(kv))
				s.cellProps[key] = existing
			}
			for name, value := range kv {
				existing[name] = value
			}
		}
	}
}

// removeCellProperties drops the property entries of cells no longer in
// the table. Used by RemoveCell.
func (s *SetSystem) removeCellProperties(key CellKey) {
	if s.cellProps == nil {
		return
	}
	delete(s.cellProps, key)
}

// AddCell adds (or re-weights) the (edge, node) cell on a mutable
// instance. See entity.AddRow for the contract.
func (s *SetSystem) AddCell(edge, node string, weight float64) error {
	return s.AddRow([]string{edge, node}, weight)
}

// RemoveCell deletes the (edge, node) cell on a mutable instance, along
// with any cell properties tied to it.
// Returns entity.ErrStaticEntity, entity.ErrRowArity or
// entity.ErrRowNotFound.
func (s *SetSystem) RemoveCell(edge, node string) error {
	if err := s.RemoveRow([]string{edge, node}); err != nil {
		return err
	}
	s.removeCellProperties(CellKey{Edge: edge, Node: node})

	return nil
}
