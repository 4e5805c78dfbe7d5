package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/mingleup/mingleup/internal/attendance"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const signupColumns = `id, session_id, participant_id, status, penalty_count,
	satisfaction_score, profile_shared_count, connections_saved, messages_sent,
	follow_ups_scheduled, business_card_id, registered_at, checked_in_at,
	completed_at, no_show_at, updated_at`

type SignupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSignupRepo(db *dbpg.DB) *SignupRepository {
	return &SignupRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SignupRepository) Register(ctx context.Context, sg *domain.Signup) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем сессию: проверка лимитов и вставка должны быть атомарны
	session, err := lockSession(ctx, tx, sg.SessionID)
	if err != nil {
		return err
	}

	signups, err := listSessionSignups(ctx, tx, sg.SessionID)
	if err != nil {
		return err
	}

	status, err := attendance.RegistrationStatus(session, signups)
	if err != nil {
		return err
	}
	sg.Status = status

	query := `INSERT INTO signups (` + signupColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, query,
		sg.ID, sg.SessionID, sg.ParticipantID, sg.Status, sg.PenaltyCount,
		sg.SatisfactionScore, sg.ProfileSharedCount, sg.ConnectionsSaved, sg.MessagesSent,
		sg.FollowUpsScheduled, sg.BusinessCardID, sg.RegisteredAt, sg.CheckedInAt,
		sg.CompletedAt, sg.NoShowAt, sg.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadySignedUp
		}
		return fmt.Errorf("insert signup: %w", err)
	}

	return tx.Commit()
}

func (r *SignupRepository) GetByID(ctx context.Context, id string) (*domain.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM signups WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get signup: %w", err)
	}

	sg, err := scanSignup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, fmt.Errorf("scan signup: %w", err)
	}

	return sg, nil
}

func (r *SignupRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.Signup, error) {
	query := `SELECT ` + signupColumns + `
			  FROM signups
			  WHERE session_id = $1
			  ORDER BY registered_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list signups by session: %w", err)
	}
	defer rows.Close()

	var res []*domain.Signup
	for rows.Next() {
		sg, err := scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, sg)
	}

	return res, rows.Err()
}

func (r *SignupRepository) ListByParticipant(ctx context.Context, participantID string) ([]*domain.Signup, error) {
	query := `SELECT ` + signupColumns + `
			  FROM signups
			  WHERE participant_id = $1
			  ORDER BY registered_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, participantID)
	if err != nil {
		return nil, fmt.Errorf("list signups by participant: %w", err)
	}
	defer rows.Close()

	var res []*domain.Signup
	for rows.Next() {
		sg, err := scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, sg)
	}

	return res, rows.Err()
}

func (r *SignupRepository) Transition(ctx context.Context, id string, to domain.SignupStatus, now time.Time) (*domain.Signup, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var sessionID string
	if err = tx.QueryRowContext(ctx, `SELECT session_id FROM signups WHERE id = $1`, id).Scan(&sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, fmt.Errorf("get signup session: %w", err)
	}

	// Порядок блокировок везде одинаковый: сначала сессия, потом запись
	session, err := lockSession(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx, `SELECT `+signupColumns+` FROM signups WHERE id = $1 FOR UPDATE`, id)
	sg, err := scanSignup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, fmt.Errorf("scan signup: %w", err)
	}

	// Выход из листа ожидания занимает гарантированное место
	if sg.Status == domain.SignupStatusWaitlisted &&
		(to == domain.SignupStatusRegistered || to == domain.SignupStatusCheckedIn) {
		signups, err := listSessionSignups(ctx, tx, sessionID)
		if err != nil {
			return nil, err
		}
		if !attendance.HasVacancy(session, signups) {
			return nil, fmt.Errorf("%w: no open slot for promotion", domain.ErrCapacityExceeded)
		}
	}

	if err = attendance.Transition(sg, to, now); err != nil {
		return nil, err
	}

	if err = persistTransition(ctx, tx, sg); err != nil {
		return nil, err
	}

	return sg, tx.Commit()
}

func (r *SignupRepository) PromoteNext(ctx context.Context, sessionID string, now time.Time) (*domain.Signup, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	session, err := lockSession(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	signups, err := listSessionSignups(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if !attendance.HasVacancy(session, signups) {
		return nil, nil
	}

	candidate := attendance.PromotionCandidate(signups)
	if candidate == nil {
		return nil, nil
	}

	if err = attendance.Transition(candidate, domain.SignupStatusRegistered, now); err != nil {
		return nil, err
	}

	if err = persistTransition(ctx, tx, candidate); err != nil {
		return nil, err
	}

	return candidate, tx.Commit()
}

func (r *SignupRepository) UpdateEngagement(ctx context.Context, sg *domain.Signup) error {
	query := `UPDATE signups
			  SET satisfaction_score = $2, profile_shared_count = $3, connections_saved = $4,
			      messages_sent = $5, follow_ups_scheduled = $6, business_card_id = $7,
			      updated_at = $8
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		sg.ID, sg.SatisfactionScore, sg.ProfileSharedCount, sg.ConnectionsSaved,
		sg.MessagesSent, sg.FollowUpsScheduled, sg.BusinessCardID, sg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update engagement: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("signup rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSignupNotFound
	}

	return nil
}

func (r *SignupRepository) NoShowHistory(ctx context.Context, workspaceID, participantID string) ([]time.Time, error) {
	// no_show_at ставится один раз при переходе и больше не меняется,
	// в отличие от updated_at
	query := `SELECT sg.no_show_at
			  FROM signups sg
			  JOIN sessions s ON s.id = sg.session_id
			  WHERE s.workspace_id = $1 AND sg.participant_id = $2
			    AND sg.status = $3 AND sg.no_show_at IS NOT NULL
			  ORDER BY sg.no_show_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, workspaceID, participantID, domain.SignupStatusNoShow)
	if err != nil {
		return nil, fmt.Errorf("no-show history: %w", err)
	}
	defer rows.Close()

	var res []time.Time
	for rows.Next() {
		var at time.Time
		if err = rows.Scan(&at); err != nil {
			return nil, fmt.Errorf("scan no-show: %w", err)
		}
		res = append(res, at)
	}

	return res, rows.Err()
}

func lockSession(ctx context.Context, tx *sql.Tx, sessionID string) (*domain.Session, error) {
	var s domain.Session
	query := `SELECT id, join_limit, waitlist_limit FROM sessions WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, sessionID).Scan(&s.ID, &s.JoinLimit, &s.WaitlistLimit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("lock session: %w", err)
	}

	return &s, nil
}

func listSessionSignups(ctx context.Context, tx *sql.Tx, sessionID string) ([]*domain.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM signups WHERE session_id = $1`
	rows, err := tx.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session signups: %w", err)
	}
	defer rows.Close()

	var res []*domain.Signup
	for rows.Next() {
		sg, err := scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, sg)
	}

	return res, rows.Err()
}

func persistTransition(ctx context.Context, tx *sql.Tx, sg *domain.Signup) error {
	query := `UPDATE signups
			  SET status = $2, penalty_count = $3, checked_in_at = $4, completed_at = $5, no_show_at = $6, updated_at = $7
			  WHERE id = $1`
	if _, err := tx.ExecContext(
		ctx, query,
		sg.ID, sg.Status, sg.PenaltyCount, sg.CheckedInAt, sg.CompletedAt, sg.NoShowAt, sg.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update signup status: %w", err)
	}

	return nil
}

func scanSignup(row scanner) (*domain.Signup, error) {
	var sg domain.Signup
	err := row.Scan(
		&sg.ID, &sg.SessionID, &sg.ParticipantID, &sg.Status, &sg.PenaltyCount,
		&sg.SatisfactionScore, &sg.ProfileSharedCount, &sg.ConnectionsSaved, &sg.MessagesSent,
		&sg.FollowUpsScheduled, &sg.BusinessCardID, &sg.RegisteredAt, &sg.CheckedInAt,
		&sg.CompletedAt, &sg.NoShowAt, &sg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &sg, nil
}
