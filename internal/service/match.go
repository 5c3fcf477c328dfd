package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type MatchService interface {
	Save(ctx context.Context, matchID string, state *entity.GameState) error
	Get(ctx context.Context, matchID string) (*entity.GameState, error)
	Delete(ctx context.Context, matchID string) error
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, id string, state *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type matchService struct {
	matchRepo matchRepo
}

func NewMatchService(matchRepo matchRepo) MatchService {
	return &matchService{
		matchRepo: matchRepo,
	}
}

func (that *matchService) Save(ctx context.Context, matchID string, state *entity.GameState) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, matchID, state); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

func (that *matchService) Get(ctx context.Context, matchID string) (*entity.GameState, error) {
	state, err := that.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve match from storage: %w", err)
	}
	return state, nil
}

func (that *matchService) Delete(ctx context.Context, matchID string) error {
	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}
