package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mingleup/mingleup/internal/attendance"
	"github.com/mingleup/mingleup/internal/clock"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/metrics"
	"github.com/mingleup/mingleup/internal/rotation"
	"github.com/mingleup/mingleup/internal/service/ports"
	"github.com/mingleup/mingleup/internal/snapshot"
)

var defaultPenaltyRules = domain.PenaltyRules{
	NoShowThreshold: 3,
	CooldownDays:    7,
}

type SessionService struct {
	repo       ports.SessionRepo
	signupRepo ports.SignupRepo
	clk        clock.Clock
}

func NewSessionService(repo ports.SessionRepo, signupRepo ports.SignupRepo, clk clock.Clock) *SessionService {
	return &SessionService{
		repo:       repo,
		signupRepo: signupRepo,
		clk:        clk,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.WorkspaceID == "" {
		return nil, fmt.Errorf("%w: workspace_id is required", domain.ErrValidation)
	}
	if input.StartTime.Before(s.clk.Now()) {
		return nil, fmt.Errorf("%w: start_time must be in the future", domain.ErrValidation)
	}

	switch input.AccessType {
	case domain.AccessTypeFree, domain.AccessTypeInviteOnly:
	case domain.AccessTypePaid:
		if input.PriceCents <= 0 {
			return nil, fmt.Errorf("%w: price_cents is required for paid sessions", domain.ErrValidation)
		}
	case "":
		input.AccessType = domain.AccessTypeFree
	default:
		return nil, fmt.Errorf("%w: unknown access_type %q", domain.ErrValidation, input.AccessType)
	}

	if input.JoinLimit != nil && *input.JoinLimit < 2 {
		return nil, fmt.Errorf("%w: join_limit must be at least 2", domain.ErrValidation)
	}
	if input.WaitlistLimit != nil && *input.WaitlistLimit < 0 {
		return nil, fmt.Errorf("%w: waitlist_limit must not be negative", domain.ErrValidation)
	}

	penalty := defaultPenaltyRules
	if input.Penalty != nil {
		if input.Penalty.NoShowThreshold < 1 || input.Penalty.CooldownDays < 1 {
			return nil, fmt.Errorf("%w: penalty thresholds must be at least 1", domain.ErrValidation)
		}
		penalty = *input.Penalty
	}

	priceCents := input.PriceCents
	if input.AccessType != domain.AccessTypePaid {
		priceCents = 0
	}

	now := s.clk.Now()
	session := &domain.Session{
		ID:                      uuid.New().String(),
		WorkspaceID:             input.WorkspaceID,
		Title:                   input.Title,
		Description:             input.Description,
		Status:                  domain.SessionStatusDraft,
		StartTime:               input.StartTime.UTC(),
		SessionLengthMinutes:    input.SessionLengthMinutes,
		RotationDurationSeconds: input.RotationDurationSeconds,
		JoinLimit:               input.JoinLimit,
		WaitlistLimit:           input.WaitlistLimit,
		AccessType:              input.AccessType,
		PriceCents:              priceCents,
		RequiresApproval:        input.RequiresApproval,
		Penalty:                 penalty,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	// Rejects bad timing configuration before anything is persisted.
	if _, err := rotation.Timeline(session); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SessionService) GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	signups, err := s.signupRepo.ListBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}

	details := &domain.SessionDetails{
		Session:    *session,
		Registered: attendance.JoinedCount(signups),
		Waitlisted: attendance.WaitlistCount(signups),
		Signups:    make([]domain.Signup, len(signups)),
	}
	for i, sg := range signups {
		details.Signups[i] = *sg
	}

	return details, nil
}

func (s *SessionService) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Session, error) {
	return s.repo.ListByWorkspace(ctx, workspaceID)
}

// Publish moves a draft session onto the schedule. Drafts never auto-advance,
// this is the explicit operator action that arms the timeline.
func (s *SessionService) Publish(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Status != domain.SessionStatusDraft {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, session.Status, domain.SessionStatusScheduled)
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.SessionStatusDraft, domain.SessionStatusScheduled); err != nil {
		return nil, fmt.Errorf("publish session: %w", err)
	}

	session.Status = domain.SessionStatusScheduled
	return session, nil
}

// Cancel is the only transition that may skip states; completed and cancelled
// sessions are terminal.
func (s *SessionService) Cancel(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case domain.SessionStatusDraft, domain.SessionStatusScheduled, domain.SessionStatusInProgress:
	default:
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, session.Status, domain.SessionStatusCancelled)
	}

	if err := s.repo.UpdateStatus(ctx, id, session.Status, domain.SessionStatusCancelled); err != nil {
		return nil, fmt.Errorf("cancel session: %w", err)
	}

	session.Status = domain.SessionStatusCancelled
	return session, nil
}

func (s *SessionService) Timeline(ctx context.Context, id string) ([]domain.Rotation, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rotation.Timeline(session)
}

// Snapshot rebuilds the live room view at the current instant. Nothing is
// written; status advancement shows up here before the sweeper persists it.
func (s *SessionService) Snapshot(ctx context.Context, id string) (*snapshot.Snapshot, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	signups, err := s.signupRepo.ListBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}

	snap := snapshot.Build(session, signups, s.clk.Now())
	return &snap, nil
}

func (s *SessionService) Metrics(ctx context.Context, id string) (*metrics.SessionMetrics, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	signups, err := s.signupRepo.ListBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}

	m := metrics.ForSession(session, signups)
	return &m, nil
}

func (s *SessionService) WorkspaceMetrics(ctx context.Context, workspaceID string) (*metrics.WorkspaceMetrics, error) {
	sessions, err := s.repo.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	bySession := make(map[string][]*domain.Signup, len(sessions))
	for _, session := range sessions {
		signups, err := s.signupRepo.ListBySession(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("list signups for %s: %w", session.ID, err)
		}
		bySession[session.ID] = signups
	}

	m := metrics.Across(sessions, bySession)
	return &m, nil
}
