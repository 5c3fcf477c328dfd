package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
	"github.com/rocketscienceinc/xcg-backend/internal/planner"
)

type BotService interface {
	Reset(ctx context.Context, matchID string, player int, seed uint64, state *entity.GameState) error
	MakeTurn(ctx context.Context, matchID string, player int, state *entity.GameState) (entity.Move, error)
	Forget(ctx context.Context, matchID string) error
}

type plannerRepo interface {
	CreateOrUpdate(ctx context.Context, matchID string, state *planner.State) error
	GetByID(ctx context.Context, matchID string, player int) (*planner.State, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}

// botService keeps no planner in memory: every turn restores the planner of
// the player, moves once and stores it back.
type botService struct {
	logger      *slog.Logger
	opts        planner.Options
	plannerRepo plannerRepo
}

func NewBotService(logger *slog.Logger, opts planner.Options, plannerRepo plannerRepo) BotService {
	return &botService{
		logger:      logger.With("component", "bot"),
		opts:        opts,
		plannerRepo: plannerRepo,
	}
}

func (that *botService) Reset(ctx context.Context, matchID string, player int, seed uint64, state *entity.GameState) error {
	log := that.logger.With("method", "Reset", "match", matchID, "player", player)

	if !state.HasPlayer(player) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	bot := planner.New(that.opts)
	bot.Reset(state, player, seed)

	if err := that.save(ctx, matchID, bot); err != nil {
		return err
	}

	log.Info("bot reset", "seed", seed)

	return nil
}

func (that *botService) MakeTurn(ctx context.Context, matchID string, player int, state *entity.GameState) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "match", matchID, "player", player)

	if !state.HasPlayer(player) {
		return entity.MoveStop, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, player)
	}

	saved, err := that.plannerRepo.GetByID(ctx, matchID, player)
	if err != nil {
		return entity.MoveStop, fmt.Errorf("failed to load planner: %w", err)
	}

	bot, err := planner.Restore(saved, that.opts)
	if err != nil {
		return entity.MoveStop, fmt.Errorf("failed to restore planner: %w", err)
	}

	if bot.Player() != player {
		return entity.MoveStop, fmt.Errorf("%w: stored planner drives player %d, not %d", apperror.ErrInvalidPlayer, bot.Player(), player)
	}

	move := bot.Move(state)

	if err = that.save(ctx, matchID, bot); err != nil {
		return entity.MoveStop, err
	}

	log.Debug("bot moved", "move", move, "following", bot.Following(), "iteration", state.Stats.Iteration)

	return move, nil
}

func (that *botService) Forget(ctx context.Context, matchID string) error {
	if err := that.plannerRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("failed to forget planners: %w", err)
	}

	return nil
}

func (that *botService) save(ctx context.Context, matchID string, bot *planner.Planner) error {
	state, err := bot.State()
	if err != nil {
		return fmt.Errorf("failed to capture planner: %w", err)
	}

	if err = that.plannerRepo.CreateOrUpdate(ctx, matchID, state); err != nil {
		return fmt.Errorf("failed to save planner: %w", err)
	}

	return nil
}
