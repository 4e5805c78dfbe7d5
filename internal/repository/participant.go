package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipantRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipantRepo(db *dbpg.DB) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `INSERT INTO participants (id, display_name, telegram_chat_id, created_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, p.ID, p.DisplayName, p.TelegramChatID, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}

	return nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	query := `SELECT id, display_name, telegram_chat_id, created_at
			  FROM participants
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	var p domain.Participant
	if err = row.Scan(&p.ID, &p.DisplayName, &p.TelegramChatID, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}

	return &p, nil
}

func (r *ParticipantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	query := `SELECT id, display_name, telegram_chat_id, created_at
			  FROM participants
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []*domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.ID, &p.DisplayName, &p.TelegramChatID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
