package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, id string, state *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

// CreateOrUpdate stores the board in its text form, the same format clients send.
func (that *dbMatch) CreateOrUpdate(ctx context.Context, id string, state *entity.GameState) error {
	err := that.client.Set(ctx, matchKey(id), state.String(), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.GameState, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	state, err := entity.ParseGameState(response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode match: %w", err)
	}

	return state, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMatchNotFound
	}

	return nil
}
