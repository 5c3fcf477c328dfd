package planner

import (
	"fmt"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

// Distance is the Manhattan distance between p and q.
func Distance(p, q entity.CartesianPoint) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Direction returns the move that takes src towards dst along one axis.
// When the points share x the move is vertical and a zero-length step counts
// as Down. Diagonal deltas are a caller bug and panic.
func Direction(src, dst entity.CartesianPoint) entity.Move {
	if src.X != dst.X && src.Y != dst.Y {
		panic(fmt.Sprintf("planner: direction from %v to %v is not axis-aligned", src, dst))
	}

	switch {
	case dst.X == src.X && dst.Y <= src.Y:
		return entity.MoveDown
	case dst.X == src.X:
		return entity.MoveUp
	case dst.X < src.X:
		return entity.MoveLeft
	default:
		return entity.MoveRight
	}
}

// BuildPath returns the L-shaped walk from src to dst, src excluded and dst
// included. With horizontalFirst the x run happens on src's row and the y run
// on dst's column, otherwise the y run happens on src's column and the x run
// on dst's row.
func BuildPath(src, dst entity.CartesianPoint, horizontalFirst bool) []entity.CartesianPoint {
	path := make([]entity.CartesianPoint, 0, Distance(src, dst))

	if horizontalFirst {
		path = appendRun(path, src.X, dst.X, func(x int) entity.CartesianPoint {
			return entity.CartesianPoint{X: x, Y: src.Y}
		})
		path = appendRun(path, src.Y, dst.Y, func(y int) entity.CartesianPoint {
			return entity.CartesianPoint{X: dst.X, Y: y}
		})
	} else {
		path = appendRun(path, src.Y, dst.Y, func(y int) entity.CartesianPoint {
			return entity.CartesianPoint{X: src.X, Y: y}
		})
		path = appendRun(path, src.X, dst.X, func(x int) entity.CartesianPoint {
			return entity.CartesianPoint{X: x, Y: dst.Y}
		})
	}

	return path
}

// appendRun appends the points strictly after from up to and including to.
func appendRun(path []entity.CartesianPoint, from, to int, at func(int) entity.CartesianPoint) []entity.CartesianPoint {
	step := 1
	if to < from {
		step = -1
	}

	for v := from; v != to; {
		v += step
		path = append(path, at(v))
	}

	return path
}

// MayBeSelected reports whether cur lies on the far side of arrow as seen
// from base, so that a closing leg from arrow to cur does not have to cross
// back over the outbound leg base→arrow.
//
//	4 3 2
//	5 . 1
//	6 7 8
//
// The octant of arrow relative to base picks the admissible quadrant or
// half-plane. When base and arrow coincide there is no outbound leg to cross
// and every point is admissible.
func MayBeSelected(base, arrow, cur entity.CartesianPoint) bool {
	dx, dy := sign(arrow.X-base.X), sign(arrow.Y-base.Y)

	switch {
	case dx > 0 && dy == 0: // 1
		return arrow.X <= cur.X
	case dx > 0 && dy > 0: // 2
		return arrow.X <= cur.X && arrow.Y <= cur.Y
	case dx == 0 && dy > 0: // 3
		return arrow.Y <= cur.Y
	case dx < 0 && dy > 0: // 4
		return cur.X <= arrow.X && arrow.Y <= cur.Y
	case dx < 0 && dy == 0: // 5
		return cur.X <= arrow.X
	case dx < 0 && dy < 0: // 6
		return cur.X <= arrow.X && cur.Y <= arrow.Y
	case dx == 0 && dy < 0: // 7
		return cur.Y <= arrow.Y
	case dx > 0 && dy < 0: // 8
		return arrow.X <= cur.X && cur.Y <= arrow.Y
	default:
		return true
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
