package entity

// Field is the terrain of a match: a Rows×Cols matrix of cells.
// Dimensions never change during a match.
type Field struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// NewField returns a field with every cell unclaimed.
func NewField(rows, cols int) *Field {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}

	return &Field{Rows: rows, Cols: cols, Cells: cells}
}

// NewDefaultField returns a field surrounded by a one-cell border.
func NewDefaultField(rows, cols int) *Field {
	field := NewField(rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if i == 0 || i == rows-1 || j == 0 || j == cols-1 {
				field.Cells[i][j] = Border()
			}
		}
	}

	return field
}

func (that *Field) Contains(p GridPoint) bool {
	return 0 <= p.Row && p.Row < that.Rows && 0 <= p.Col && p.Col < that.Cols
}

// At panics when p is outside the field: callers validate or clamp first.
func (that *Field) At(p GridPoint) Cell {
	return that.Cells[p.Row][p.Col]
}

func (that *Field) Set(p GridPoint, cell Cell) {
	that.Cells[p.Row][p.Col] = cell
}

// Clamp moves p to the nearest cell inside the field, axis by axis.
func (that *Field) Clamp(p GridPoint) GridPoint {
	return GridPoint{
		Row: clamp(p.Row, 0, that.Rows-1),
		Col: clamp(p.Col, 0, that.Cols-1),
	}
}

// BorderToPoint walks the perimeter clockwise from the top-left corner and
// returns the cell at position pos (taken modulo the perimeter length).
// A board without a perimeter walk (1x1) always yields its only cell.
func BorderToPoint(rows, cols, pos int) GridPoint {
	m, n := rows, cols
	length := perimeter(m, n)
	if length <= 0 {
		return GridPoint{}
	}
	pos %= length

	switch {
	case pos < n:
		return GridPoint{Row: 0, Col: pos}
	case pos < n+m-2:
		return GridPoint{Row: pos - n + 1, Col: n - 1}
	case pos < n+n+m-2:
		return GridPoint{Row: m - 1, Col: n + n + m - 3 - pos}
	default:
		return GridPoint{Row: n + n + m + m - 4 - pos, Col: 0}
	}
}

func perimeter(rows, cols int) int {
	return 2*(rows+cols) - 4
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
