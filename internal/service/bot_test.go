package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
	"github.com/rocketscienceinc/xcg-backend/internal/planner"
)

// memPlannerRepo keeps planner states in memory, keyed like the Redis hash.
type memPlannerRepo struct {
	states map[string]map[int]*planner.State
}

func newMemPlannerRepo() *memPlannerRepo {
	return &memPlannerRepo{states: make(map[string]map[int]*planner.State)}
}

func (that *memPlannerRepo) CreateOrUpdate(_ context.Context, matchID string, state *planner.State) error {
	if that.states[matchID] == nil {
		that.states[matchID] = make(map[int]*planner.State)
	}
	that.states[matchID][state.Player] = state
	return nil
}

func (that *memPlannerRepo) GetByID(_ context.Context, matchID string, player int) (*planner.State, error) {
	state, ok := that.states[matchID][player]
	if !ok {
		return nil, apperror.ErrPlannerNotFound
	}
	return state, nil
}

func (that *memPlannerRepo) DeleteByMatch(_ context.Context, matchID string) error {
	delete(that.states, matchID)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestBotService_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a planner for the player", func(t *testing.T) {
		// Given: a fresh match
		repo := newMemPlannerRepo()
		bots := NewBotService(discardLogger(), planner.DefaultOptions(), repo)
		gs := entity.NewGameState(8, 10, 2)

		// When: the second player is reset
		err := bots.Reset(ctx, "m-1", 1, 7, gs)

		// Then: a planner state exists only for that player
		require.NoError(t, err)
		state, err := repo.GetByID(ctx, "m-1", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, state.Player)
		assert.Equal(t, 8, state.Rows)
		assert.Equal(t, 10, state.Cols)

		_, err = repo.GetByID(ctx, "m-1", 0)
		require.ErrorIs(t, err, apperror.ErrPlannerNotFound)
	})

	t.Run("Rejects unknown players", func(t *testing.T) {
		bots := NewBotService(discardLogger(), planner.DefaultOptions(), newMemPlannerRepo())

		err := bots.Reset(ctx, "m-1", 2, 7, entity.NewGameState(8, 10, 2))

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestBotService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Matches an in-memory planner turn by turn", func(t *testing.T) {
		// Given: a stored bot and a reference planner with the same seed
		bots := NewBotService(discardLogger(), planner.DefaultOptions(), newMemPlannerRepo())
		gs := entity.NewGameState(8, 10, 1)
		require.NoError(t, bots.Reset(ctx, "m-1", 0, 31, gs))

		reference := planner.New(planner.DefaultOptions())
		reference.Reset(gs, 0, 31)

		// When / Then: both pick the same move on an unchanged board
		for turn := range 5 {
			move, err := bots.MakeTurn(ctx, "m-1", 0, gs)
			require.NoError(t, err)
			require.Equal(t, reference.Move(gs), move, "turn %d", turn)
		}
	})

	t.Run("Rejects a planner stored for another player", func(t *testing.T) {
		// Given: the planner of player 0 filed under player 1
		repo := newMemPlannerRepo()
		bots := NewBotService(discardLogger(), planner.DefaultOptions(), repo)
		gs := entity.NewGameState(8, 10, 2)
		require.NoError(t, bots.Reset(ctx, "m-1", 0, 5, gs))
		repo.states["m-1"][1] = repo.states["m-1"][0]

		// When: player 1 asks for a move
		move, err := bots.MakeTurn(ctx, "m-1", 1, gs)

		// Then: the mismatch is reported
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Equal(t, entity.MoveStop, move)
	})

	t.Run("Requires a reset first", func(t *testing.T) {
		bots := NewBotService(discardLogger(), planner.DefaultOptions(), newMemPlannerRepo())

		move, err := bots.MakeTurn(ctx, "m-1", 0, entity.NewGameState(8, 10, 1))

		require.ErrorIs(t, err, apperror.ErrPlannerNotFound)
		assert.Equal(t, entity.MoveStop, move)
	})

	t.Run("Rejects unknown players", func(t *testing.T) {
		bots := NewBotService(discardLogger(), planner.DefaultOptions(), newMemPlannerRepo())

		_, err := bots.MakeTurn(ctx, "m-1", -1, entity.NewGameState(8, 10, 1))

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestBotService_Forget(t *testing.T) {
	ctx := context.Background()

	repo := newMemPlannerRepo()
	bots := NewBotService(discardLogger(), planner.DefaultOptions(), repo)
	gs := entity.NewGameState(8, 10, 2)
	require.NoError(t, bots.Reset(ctx, "m-1", 0, 1, gs))
	require.NoError(t, bots.Reset(ctx, "m-1", 1, 1, gs))

	require.NoError(t, bots.Forget(ctx, "m-1"))

	_, err := bots.MakeTurn(ctx, "m-1", 0, gs)
	require.ErrorIs(t, err, apperror.ErrPlannerNotFound)
}
