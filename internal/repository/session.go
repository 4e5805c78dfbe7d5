package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const sessionColumns = `id, workspace_id, title, description, status, start_time,
	session_length_minutes, rotation_duration_seconds, join_limit, waitlist_limit,
	access_type, price_cents, requires_approval, no_show_threshold, cooldown_days,
	created_at, updated_at`

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.WorkspaceID, s.Title, s.Description, s.Status, s.StartTime,
		s.SessionLengthMinutes, s.RotationDurationSeconds, s.JoinLimit, s.WaitlistLimit,
		s.AccessType, s.PriceCents, s.RequiresApproval,
		s.Penalty.NoShowThreshold, s.Penalty.CooldownDays,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return s, nil
}

func (r *SessionRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE workspace_id = $1
			  ORDER BY start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by workspace: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) ListByStatuses(ctx context.Context, statuses []domain.SessionStatus) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE status = ANY($1)
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list sessions by statuses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, from, to domain.SessionStatus) error {
	query := `UPDATE sessions
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("session rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: сессия не найдена или статус уже изменился
		var current domain.SessionStatus
		checkQuery := `SELECT status FROM sessions WHERE id = $1`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return fmt.Errorf("check session status: %w", err)
		}
		if err = row.Scan(&current); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrSessionNotFound
			}
			return fmt.Errorf("scan session status: %w", err)
		}
		if current == to {
			// Кто-то уже перевёл статус, повторять нечего
			return nil
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, to)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID, &s.WorkspaceID, &s.Title, &s.Description, &s.Status, &s.StartTime,
		&s.SessionLengthMinutes, &s.RotationDurationSeconds, &s.JoinLimit, &s.WaitlistLimit,
		&s.AccessType, &s.PriceCents, &s.RequiresApproval,
		&s.Penalty.NoShowThreshold, &s.Penalty.CooldownDays,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
