package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type botService interface {
	Reset(ctx context.Context, matchID string, player int, seed uint64, state *entity.GameState) error
	MakeTurn(ctx context.Context, matchID string, player int, state *entity.GameState) (entity.Move, error)
	Forget(ctx context.Context, matchID string) error
}

type matchService interface {
	Save(ctx context.Context, matchID string, state *entity.GameState) error
	Get(ctx context.Context, matchID string) (*entity.GameState, error)
	Delete(ctx context.Context, matchID string) error
}

type moveRepo interface {
	Save(ctx context.Context, record *entity.MoveRecord) error
	FindByMatch(ctx context.Context, matchID string) ([]entity.MoveRecord, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}

// MatchManager serves bots to an external match engine. The engine owns the
// rules; it sends the board every turn and gets one move back.
type MatchManager struct {
	logger *slog.Logger

	bots    botService
	matches matchService
	moves   moveRepo
}

func NewMatchManager(logger *slog.Logger, bots botService, matches matchService, moves moveRepo) *MatchManager {
	return &MatchManager{
		logger: logger,

		bots:    bots,
		matches: matches,
		moves:   moves,
	}
}

// Reset seats a bot for player in the match. An empty matchID starts a new
// match and the generated id is returned.
func (that *MatchManager) Reset(ctx context.Context, matchID string, player int, seed uint64, board string) (string, error) {
	log := that.logger.With("method", "Reset")

	state, err := entity.ParseGameState(board)
	if err != nil {
		return "", fmt.Errorf("failed to parse board: %w", err)
	}

	if matchID == "" {
		matchID = uuid.NewString()
	}

	if err = that.bots.Reset(ctx, matchID, player, seed, state); err != nil {
		return "", fmt.Errorf("failed to reset bot: %w", err)
	}

	if err = that.matches.Save(ctx, matchID, state); err != nil {
		return "", fmt.Errorf("failed to save match: %w", err)
	}

	log.Info("bot seated", "match", matchID, "player", player)

	return matchID, nil
}

// Turn returns the move of the player's bot for the given board.
func (that *MatchManager) Turn(ctx context.Context, matchID string, player int, board string) (entity.Move, error) {
	log := that.logger.With("method", "Turn", "match", matchID)

	if matchID == "" {
		return entity.MoveStop, apperror.ErrMatchIDRequired
	}

	state, err := entity.ParseGameState(board)
	if err != nil {
		return entity.MoveStop, fmt.Errorf("failed to parse board: %w", err)
	}

	move, err := that.bots.MakeTurn(ctx, matchID, player, state)
	if err != nil {
		return entity.MoveStop, fmt.Errorf("failed make turn: %w", err)
	}

	if !move.IsValid() {
		return entity.MoveStop, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, move)
	}

	// the move is already committed in the planner, so storage failures
	// below only cost the snapshot and the log line.
	if err = that.matches.Save(ctx, matchID, state); err != nil {
		log.Error("failed to save snapshot", "error", err)
	}

	record := &entity.MoveRecord{
		MatchID:   matchID,
		Iteration: state.Stats.Iteration,
		Player:    player,
		Move:      move,
	}
	if err = that.moves.Save(ctx, record); err != nil {
		log.Error("failed to record move", "error", err)
	}

	return move, nil
}

// Snapshot returns the last board seen for the match.
func (that *MatchManager) Snapshot(ctx context.Context, matchID string) (*entity.GameState, error) {
	if matchID == "" {
		return nil, apperror.ErrMatchIDRequired
	}

	state, err := that.matches.Get(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed get match: %w", err)
	}

	return state, nil
}

func (that *MatchManager) History(ctx context.Context, matchID string) ([]entity.MoveRecord, error) {
	if matchID == "" {
		return nil, apperror.ErrMatchIDRequired
	}

	records, err := that.moves.FindByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed get moves: %w", err)
	}

	return records, nil
}

// Finish drops everything kept for the match.
func (that *MatchManager) Finish(ctx context.Context, matchID string) error {
	log := that.logger.With("method", "Finish", "match", matchID)

	if matchID == "" {
		return apperror.ErrMatchIDRequired
	}

	if err := that.matches.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("failed to finish match: %w", err)
	}

	if err := that.bots.Forget(ctx, matchID); err != nil {
		log.Error("failed to forget bots", "error", err)
	}

	if err := that.moves.DeleteByMatch(ctx, matchID); err != nil {
		log.Error("failed to delete moves", "error", err)
	}

	log.Info("match finished")

	return nil
}
