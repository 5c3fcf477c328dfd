package entity

import (
	"math/rand/v2"
	"slices"
)

// Stats is updated by the match engine on every iteration.
type Stats struct {
	Iteration       int   `json:"iteration"`
	FilledCount     int   `json:"filled_count"`
	HeadToHeadCount int   `json:"head_to_head_count"`
	OuroborosCount  int   `json:"ouroboros_count"`
	BiteCount       int   `json:"bite_count"`
	Scores          []int `json:"scores"`
}

// GameState is an immutable per-turn snapshot of a match.
type GameState struct {
	Field       *Field
	Players     []Player
	PlayerNames []string
	Origins     []GridPoint
	Stats       Stats
	Reordering  []int
}

// NewGameState creates a fresh match on a bordered field with every player
// standing on its origin.
func NewGameState(rows, cols, players int) *GameState {
	field := NewDefaultField(rows, cols)
	perm := DefaultPermutation(players)
	origins := NewOrigins(rows, cols, perm)

	state := &GameState{
		Field:       field,
		Players:     make([]Player, players),
		PlayerNames: defaultPlayerNames(players),
		Origins:     origins,
		Reordering:  perm,
	}

	for k, origin := range origins {
		state.Players[k] = Player{Body: []GridPoint{origin}}
	}

	state.Stats = countStats(field, players)

	return state
}

// Dimensions returns the number of rows and columns of the field.
func (that *GameState) Dimensions() (int, int) {
	return that.Field.Rows, that.Field.Cols
}

func (that *GameState) CellAt(p GridPoint) Cell {
	return that.Field.At(p)
}

// Body returns the body of the player, tail first. Unknown players have no body.
func (that *GameState) Body(player int) []GridPoint {
	if player < 0 || player >= len(that.Players) {
		return nil
	}
	return that.Players[player].Body
}

func (that *GameState) HasPlayer(player int) bool {
	return player >= 0 && player < len(that.Players)
}

// DefaultPermutation returns the identity permutation of n players.
func DefaultPermutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// ShuffledPermutation returns a shuffled copy of xs; xs itself is left intact.
func ShuffledPermutation(xs []int, rng *rand.Rand) []int {
	perm := slices.Clone(xs)
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// NewOrigins places up to four players on the corners, in the order given by
// perm, and spreads larger matches evenly along the perimeter.
func NewOrigins(rows, cols int, perm []int) []GridPoint {
	np := len(perm)
	corners := []GridPoint{
		{Row: 0, Col: 0},
		{Row: rows - 1, Col: cols - 1},
		{Row: 0, Col: cols - 1},
		{Row: rows - 1, Col: 0},
	}

	origins := make([]GridPoint, np)
	if np <= len(corners) {
		for k := range origins {
			origins[k] = corners[slices.Index(perm, k)]
		}
		return origins
	}

	step := 2 * (rows + cols - 2) / np
	for k := 0; k < np; k++ {
		origins[slices.Index(perm, k)] = BorderToPoint(rows, cols, k*step)
	}

	return origins
}

func defaultPlayerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = playerName(i)
	}
	return names
}

// countStats derives initial statistics from the terrain alone.
func countStats(field *Field, players int) Stats {
	stats := Stats{Scores: make([]int, players)}

	for _, row := range field.Cells {
		for _, cell := range row {
			switch cell.Kind {
			case CellBorder:
				stats.FilledCount++
			case CellOwned:
				stats.FilledCount++
				if int(cell.Owner) < players {
					stats.Scores[cell.Owner]++
				}
			case CellEmpty:
			}
		}
	}

	return stats
}
