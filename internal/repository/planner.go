package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/planner"
)

type PlannerRepository interface {
	CreateOrUpdate(ctx context.Context, matchID string, state *planner.State) error
	GetByID(ctx context.Context, matchID string, player int) (*planner.State, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}

// dbPlanner keeps every bot of a match in one hash, one field per player index.
type dbPlanner struct {
	client *redis.Client
}

func NewPlannerRepository(client *redis.Client) PlannerRepository {
	return &dbPlanner{
		client: client,
	}
}

func plannerKey(matchID string) string {
	return "planner:" + matchID
}

func (that *dbPlanner) CreateOrUpdate(ctx context.Context, matchID string, state *planner.State) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal planner: %w", err)
	}

	err = that.client.HSet(ctx, plannerKey(matchID), strconv.Itoa(state.Player), stateJSON).Err()
	if err != nil {
		return fmt.Errorf("failed to set planner: %w", err)
	}

	return nil
}

func (that *dbPlanner) GetByID(ctx context.Context, matchID string, player int) (*planner.State, error) {
	response, err := that.client.HGet(ctx, plannerKey(matchID), strconv.Itoa(player)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrPlannerNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get planner: %w", err)
	}

	var state planner.State
	if err = json.Unmarshal([]byte(response), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal planner: %w", err)
	}

	return &state, nil
}

func (that *dbPlanner) DeleteByMatch(ctx context.Context, matchID string) error {
	if err := that.client.Del(ctx, plannerKey(matchID)).Err(); err != nil {
		return fmt.Errorf("failed to delete planners: %w", err)
	}

	return nil
}
