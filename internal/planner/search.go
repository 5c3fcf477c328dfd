package planner

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

// Predicate decides whether a point is what a search is looking for.
type Predicate func(p entity.CartesianPoint) bool

// Bounds is the extent of the board in planning coordinates:
// x in [0, Cols), y in [0, Rows).
type Bounds struct {
	Rows int
	Cols int
}

func (that Bounds) Contains(p entity.CartesianPoint) bool {
	return 0 <= p.X && p.X < that.Cols && 0 <= p.Y && p.Y < that.Rows
}

// Clamp moves each coordinate of p independently into range.
func (that Bounds) Clamp(p entity.CartesianPoint) entity.CartesianPoint {
	return entity.CartesianPoint{
		X: min(max(p.X, 0), that.Cols-1),
		Y: min(max(p.Y, 0), that.Rows-1),
	}
}

// FindClosest scans diamonds of growing Manhattan radius around src and
// returns the first point accepted by predicate. Candidates that fall off the
// board are clamped onto it, so near the edges several ring positions may
// collapse onto the same cell; the earliest in ring order wins. A candidate
// clamped back onto src itself is skipped, unlike a plain first-match scan:
// this fixes the edge tie-break so a hit is never the source, and the
// planner never sees a difference because its source cell is unclaimed.
func FindClosest(src entity.CartesianPoint, bounds Bounds, predicate Predicate) (entity.CartesianPoint, bool) {
	for r := 1; r < bounds.Rows+bounds.Cols; r++ {
		for k := 0; k < r; k++ {
			ring := [4]entity.CartesianPoint{
				{X: src.X - k, Y: src.Y + r - k},
				{X: src.X - r + k, Y: src.Y - k},
				{X: src.X + k, Y: src.Y - r + k},
				{X: src.X + r - k, Y: src.Y + k},
			}

			for _, candidate := range ring {
				candidate = bounds.Clamp(candidate)
				if candidate == src {
					continue
				}

				if predicate(candidate) {
					return candidate, true
				}
			}
		}
	}

	return entity.CartesianPoint{}, false
}

// FindRandom draws attempts uniform points on the board and keeps those
// accepted by predicate, in draw order.
func FindRandom(rng *rand.Rand, bounds Bounds, attempts int, predicate Predicate) []entity.CartesianPoint {
	found := make([]entity.CartesianPoint, 0, attempts)

	for range attempts {
		x := rng.IntN(bounds.Cols)
		y := rng.IntN(bounds.Rows)

		p := entity.CartesianPoint{X: x, Y: y}
		if predicate(p) {
			found = append(found, p)
		}
	}

	return found
}
