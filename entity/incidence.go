// Package entity: dense labeled incidence-matrix view.

package entity

// IncidenceMatrix is a dense matrix view of the canonical table over the
// two active levels. RowIndex maps level-1 labels to rows, ColIndex maps
// level-0 labels to columns, and Data[i][j] holds the cell weight of the
// (column j item, row i item) pair, 0 where no cell exists. For entities
// of more than 2 dimensions, rows sharing one (level-0, level-1) pair
// accumulate by summation.
type IncidenceMatrix struct {
	RowIndex map[string]int // level-1 label → row
	ColIndex map[string]int // level-0 label → column
	Data     [][]float64    // rows × cols cell weights
}

// IncidenceMatrix builds the incidence view, sized
// (number of unique level-1 labels × number of unique level-0 labels).
// Returns ErrLevelOutOfRange when fewer than 2 levels exist.
// Time: O(N·E + R); Memory: O(N·E).
func (e *Entity) IncidenceMatrix() (*IncidenceMatrix, error) {
	if len(e.levels) < 2 {
		return nil, ErrLevelOutOfRange
	}
	nodes := e.levels[1]
	edges := e.levels[0]

	rowIndex := make(map[string]int, len(nodes.order))
	for i, label := range nodes.order {
		rowIndex[label] = i
	}
	colIndex := make(map[string]int, len(edges.order))
	for j, label := range edges.order {
		colIndex[label] = j
	}

	data := make([][]float64, len(nodes.order))
	for i := range data {
		data[i] = make([]float64, len(edges.order))
	}
	for r, row := range e.rows {
		data[rowIndex[row[1]]][colIndex[row[0]]] += e.weights[r]
	}

	return &IncidenceMatrix{
		RowIndex: rowIndex,
		ColIndex: colIndex,
		Data:     data,
	}, nil
}

// Shape returns (rows, cols) = (level-1 label count, level-0 label count).
// Complexity: O(1).
func (m *IncidenceMatrix) Shape() (rows, cols int) {
	return len(m.RowIndex), len(m.ColIndex)
}

// At returns the cell weight for the (edge, node) pair, 0 when the pair
// is indexed but not incident. Returns ErrUnknownLabel for labels outside
// the matrix indices. Complexity: O(1).
func (m *IncidenceMatrix) At(node, edge string) (float64, error) {
	i, ok := m.RowIndex[node]
	if !ok {
		return 0, ErrUnknownLabel
	}
	j, ok := m.ColIndex[edge]
	if !ok {
		return 0, ErrUnknownLabel
	}

	return m.Data[i][j], nil
}
