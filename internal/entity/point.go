package entity

import "fmt"

// GridPoint is a matrix coordinate: row grows downwards, origin is the top-left cell.
type GridPoint struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CartesianPoint is a planning coordinate: x grows right, y grows up,
// origin is the bottom-left cell.
type CartesianPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that GridPoint) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

func (that CartesianPoint) String() string {
	return fmt.Sprintf("P(%d,%d)", that.X, that.Y)
}

// ToCartesian converts p for a board with the given number of rows.
func ToCartesian(p GridPoint, rows int) CartesianPoint {
	return CartesianPoint{X: p.Col, Y: rows - 1 - p.Row}
}

// ToGrid is the inverse of ToCartesian.
func ToGrid(p CartesianPoint, rows int) GridPoint {
	return GridPoint{Row: rows - 1 - p.Y, Col: p.X}
}

// Adjacent reports whether p and q differ by exactly one step along one axis.
func (that CartesianPoint) Adjacent(q CartesianPoint) bool {
	return abs(that.X-q.X)+abs(that.Y-q.Y) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
