package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type MoveRepository interface {
	Save(ctx context.Context, record *entity.MoveRecord) error
	FindByMatch(ctx context.Context, matchID string) ([]entity.MoveRecord, error)
	DeleteByMatch(ctx context.Context, matchID string) error
}

type moveRepository struct {
	conn *sql.DB
}

func NewMoveRepository(conn *sql.DB) MoveRepository {
	return &moveRepository{
		conn: conn,
	}
}

func (that *moveRepository) Save(ctx context.Context, record *entity.MoveRecord) error {
	query := `INSERT INTO moves (match_id, iteration, player, move) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, record.MatchID, record.Iteration, record.Player, string(record.Move))
	if err != nil {
		return fmt.Errorf("can't save move: %w", err)
	}

	return nil
}

// FindByMatch returns the log in insertion order; an unknown match has an empty log.
func (that *moveRepository) FindByMatch(ctx context.Context, matchID string) ([]entity.MoveRecord, error) {
	query := `SELECT match_id, iteration, player, move FROM moves WHERE match_id = ? ORDER BY rowid`

	rows, err := that.conn.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("can't find moves: %w", err)
	}
	defer rows.Close()

	records := make([]entity.MoveRecord, 0)
	for rows.Next() {
		var (
			record entity.MoveRecord
			move   string
		)

		if err = rows.Scan(&record.MatchID, &record.Iteration, &record.Player, &move); err != nil {
			return nil, fmt.Errorf("can't scan move: %w", err)
		}

		record.Move = entity.Move(move)
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read moves: %w", err)
	}

	return records, nil
}

func (that *moveRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query := `DELETE FROM moves WHERE match_id = ?`

	if _, err := that.conn.ExecContext(ctx, query, matchID); err != nil {
		return fmt.Errorf("can't delete moves: %w", err)
	}

	return nil
}
