package entity

import (
	"testing"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPlayers = `
	*.*.*.*.*.*.*.
	*. a a A . .*.
	*. . . . . .*.
	*. .1.1b . .*.
	*. . .1B . .*.
	*.*.*.*.*.*.*.
`

func TestParseGameState(t *testing.T) {
	t.Run("Cells and bodies", func(t *testing.T) {
		// When: a board with two players is parsed
		gs, err := ParseGameState(twoPlayers)
		require.NoError(t, err)

		// Then: the field has the right shape and cells
		rows, cols := gs.Dimensions()
		require.Equal(t, 6, rows)
		require.Equal(t, 7, cols)

		assert.Equal(t, Border(), gs.CellAt(GridPoint{Row: 0, Col: 3}))
		assert.Equal(t, Empty(), gs.CellAt(GridPoint{Row: 1, Col: 1}))
		assert.Equal(t, Owned(1), gs.CellAt(GridPoint{Row: 3, Col: 2}))

		// Then: bodies run from tail to head
		assert.Equal(t, []GridPoint{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}}, gs.Body(0))
		assert.Equal(t, []GridPoint{{Row: 3, Col: 3}, {Row: 4, Col: 3}}, gs.Body(1))
	})

	t.Run("Defaults for missing metadata", func(t *testing.T) {
		gs, err := ParseGameState(twoPlayers)
		require.NoError(t, err)

		assert.Equal(t, []int{0, 1}, gs.Reordering)
		assert.Equal(t, []GridPoint{{Row: 0, Col: 0}, {Row: 5, Col: 6}}, gs.Origins)
		assert.Equal(t, []string{"player-0", "player-1"}, gs.PlayerNames)
		assert.Equal(t, Stats{FilledCount: 2*(6+7) - 4 + 3, Scores: []int{0, 3}}, gs.Stats)
	})

	t.Run("Metadata is read", func(t *testing.T) {
		gs, err := ParseGameState(twoPlayers + `
			reordering=[1,0]
			stats=Stats(12,30,1,2,3,[4,5])
			origins=[(0,0),(5,6)]
		`)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 0}, gs.Reordering)
		assert.Equal(t, Stats{
			Iteration:       12,
			FilledCount:     30,
			HeadToHeadCount: 1,
			OuroborosCount:  2,
			BiteCount:       3,
			Scores:          []int{4, 5},
		}, gs.Stats)
		assert.Equal(t, []GridPoint{{Row: 0, Col: 0}, {Row: 5, Col: 6}}, gs.Origins)
	})

	t.Run("Missing player keeps an empty body", func(t *testing.T) {
		gs, err := ParseGameState(`
			*.*.*.*.
			*. . B*.
			*.*.*.*.
		`)
		require.NoError(t, err)

		require.Len(t, gs.Players, 2)
		assert.Empty(t, gs.Body(0))
		assert.False(t, gs.Players[0].IsActive())
		assert.Equal(t, []GridPoint{{Row: 1, Col: 2}}, gs.Body(1))
	})

	t.Run("Eliminated trailing players are kept from metadata", func(t *testing.T) {
		gs, err := ParseGameState(`
			*.*.*.*.
			*. A .*.
			*.*.*.*.
			reordering=[0,2,1]
		`)
		require.NoError(t, err)

		require.Len(t, gs.Players, 3)
		assert.Empty(t, gs.Body(2))
	})

	t.Run("Cyclic body does not loop forever", func(t *testing.T) {
		gs, err := ParseGameState(`
			*.*.*.*.
			*. a a*.
			*. a A*.
			*.*.*.*.
		`)
		require.NoError(t, err)

		assert.Len(t, gs.Body(0), 4)
		head, ok := gs.Players[0].Head()
		require.True(t, ok)
		assert.Equal(t, GridPoint{Row: 2, Col: 2}, head)
	})
}

func TestParseGameState_Errors(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{name: "Empty input", board: "   \n  "},
		{name: "Wrong reordering size", board: twoPlayers + "reordering=[0]"},
		{name: "Reordering is not a permutation", board: twoPlayers + "reordering=[0,0]"},
		{name: "Reordering item is not a number", board: twoPlayers + "reordering=[0,x]"},
		{name: "Wrong scores count", board: twoPlayers + "stats=Stats(1,2,3,4,5,[1])"},
		{name: "Stats tuple is broken", board: twoPlayers + "stats=Stats(1,2,[1,2])"},
		{name: "Wrong origins count", board: twoPlayers + "origins=[(0,0)]"},
		{name: "Metadata counts disagree", board: twoPlayers + "reordering=[0,1,2]\norigins=[(0,0),(1,1)]"},
		{name: "Metadata without value", board: twoPlayers + "reordering"},
		{name: "Two heads for one player", board: "*.*.*.*.\n*. A A*.\n*.*.*.*."},
		{name: "Many players on a single cell", board: "*A\nreordering=[0,1,2,3,4]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := ParseGameState(tt.board)

			require.ErrorIs(t, err, apperror.ErrParse)
			assert.Nil(t, gs)
		})
	}
}

func TestGameState_String(t *testing.T) {
	t.Run("Board and metadata layout", func(t *testing.T) {
		gs := NewGameState(3, 4, 1)

		assert.Equal(t, "*A*.*.*.\n*. . .*.\n*.*.*.*.\n"+
			"reordering=[0]\n"+
			"stats=Stats(0,10,0,0,0,[0])\n"+
			"origins=[(0,0)]", gs.String())
	})

	t.Run("Round trip with metadata", func(t *testing.T) {
		// Given: a state with non-default reordering, origins and stats
		gs, err := ParseGameState(twoPlayers + `
			reordering=[1,0]
			stats=Stats(12,30,1,2,3,[4,5])
			origins=[(1,1),(4,5)]
		`)
		require.NoError(t, err)

		// When: it is serialized and parsed again
		again, err := ParseGameState(gs.String())
		require.NoError(t, err)

		// Then: nothing is lost
		require.Equal(t, gs, again)
	})

	t.Run("Missing lists are written with defaults", func(t *testing.T) {
		// Given: a state built by hand without reordering, origins or scores
		gs := NewGameState(5, 6, 2)
		gs.Reordering = nil
		gs.Origins = nil
		gs.Stats.Scores = nil

		// When: it is serialized and parsed again
		again, err := ParseGameState(gs.String())

		// Then: the defaults are filled in
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, again.Reordering)
		assert.Equal(t, []GridPoint{{Row: 0, Col: 0}, {Row: 4, Col: 5}}, again.Origins)
		assert.Equal(t, []int{0, 0}, again.Stats.Scores)
	})

	t.Run("Round trip of a fresh match", func(t *testing.T) {
		gs := NewGameState(9, 11, 3)

		again, err := ParseGameState(gs.String())
		require.NoError(t, err)

		require.Equal(t, gs, again)
	})
}
