package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinates_RoundTrip(t *testing.T) {
	for rows := 1; rows <= 6; rows++ {
		for row := 0; row < rows; row++ {
			for col := 0; col < 5; col++ {
				p := GridPoint{Row: row, Col: col}

				c := ToCartesian(p, rows)

				require.Equal(t, p, ToGrid(c, rows))
				require.Equal(t, col, c.X)
				require.Equal(t, rows-1-row, c.Y)
			}
		}
	}
}

func TestNewDefaultField(t *testing.T) {
	// When: a 4x5 default field is created
	field := NewDefaultField(4, 5)

	// Then: the perimeter is border and the inside is empty
	require.Equal(t, 4, field.Rows)
	require.Equal(t, 5, field.Cols)

	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			onEdge := i == 0 || i == 3 || j == 0 || j == 4
			assert.Equal(t, onEdge, field.At(GridPoint{Row: i, Col: j}).IsClaimed(), "cell %d,%d", i, j)
		}
	}
}

func TestField_Clamp(t *testing.T) {
	field := NewField(3, 4)

	assert.Equal(t, GridPoint{Row: 0, Col: 3}, field.Clamp(GridPoint{Row: -2, Col: 9}))
	assert.Equal(t, GridPoint{Row: 2, Col: 0}, field.Clamp(GridPoint{Row: 5, Col: -1}))
	assert.Equal(t, GridPoint{Row: 1, Col: 1}, field.Clamp(GridPoint{Row: 1, Col: 1}))
	assert.False(t, field.Contains(GridPoint{Row: 3, Col: 0}))
}

func TestBorderToPoint(t *testing.T) {
	// Given: a 3x4 field has a perimeter of 10 cells
	want := []GridPoint{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 3},
		{Row: 2, Col: 3}, {Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 0},
		{Row: 1, Col: 0},
	}

	// Then: walking it visits every border cell clockwise and wraps around
	for pos, p := range want {
		assert.Equal(t, p, BorderToPoint(3, 4, pos), "pos %d", pos)
	}
	assert.Equal(t, want[2], BorderToPoint(3, 4, 12))

	// Then: a single cell board has no walk and yields its only cell
	assert.Equal(t, GridPoint{}, BorderToPoint(1, 1, 3))
}

func TestNewOrigins(t *testing.T) {
	t.Run("Corners follow the permutation", func(t *testing.T) {
		origins := NewOrigins(8, 10, []int{1, 0})

		assert.Equal(t, []GridPoint{{Row: 7, Col: 9}, {Row: 0, Col: 0}}, origins)
	})

	t.Run("Four players take all corners", func(t *testing.T) {
		origins := NewOrigins(8, 10, DefaultPermutation(4))

		assert.Equal(t, []GridPoint{{Row: 0, Col: 0}, {Row: 7, Col: 9}, {Row: 0, Col: 9}, {Row: 7, Col: 0}}, origins)
	})

	t.Run("Many players spread along the perimeter", func(t *testing.T) {
		origins := NewOrigins(5, 5, DefaultPermutation(8))

		require.Len(t, origins, 8)
		for _, p := range origins {
			onEdge := p.Row == 0 || p.Row == 4 || p.Col == 0 || p.Col == 4
			assert.True(t, onEdge, "%v is not on the perimeter", p)
		}
		assert.Equal(t, GridPoint{Row: 0, Col: 0}, origins[0])
		assert.Equal(t, GridPoint{Row: 0, Col: 2}, origins[1])
	})
}

func TestShuffledPermutation(t *testing.T) {
	// Given: the identity permutation
	xs := DefaultPermutation(6)

	// When: shuffling it
	perm := ShuffledPermutation(xs, rand.New(rand.NewPCG(5, 5)))

	// Then: the copy is a permutation and the input is untouched
	assert.ElementsMatch(t, xs, perm)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, xs)
}

func TestNewGameState(t *testing.T) {
	gs := NewGameState(6, 7, 2)

	rows, cols := gs.Dimensions()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 7, cols)
	assert.Equal(t, []string{"player-0", "player-1"}, gs.PlayerNames)
	assert.Equal(t, []GridPoint{{Row: 0, Col: 0}}, gs.Body(0))
	assert.Equal(t, []GridPoint{{Row: 5, Col: 6}}, gs.Body(1))
	assert.Nil(t, gs.Body(2))
	assert.Equal(t, 2*(6+7)-4, gs.Stats.FilledCount)
	assert.Equal(t, []int{0, 0}, gs.Stats.Scores)
}
