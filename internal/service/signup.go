package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mingleup/mingleup/internal/clock"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/penalty"
	"github.com/mingleup/mingleup/internal/rotation"
	"github.com/mingleup/mingleup/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// checkInGrace is how early attendees may check in before a scheduled
// session starts.
const checkInGrace = 15 * time.Minute

type SignupService struct {
	signupRepo      ports.SignupRepo
	sessionRepo     ports.SessionRepo
	participantRepo ports.ParticipantRepo
	notifier        ports.SignupNotifier
	clk             clock.Clock
	logger          logger.Logger
}

func NewSignupService(
	signupRepo ports.SignupRepo,
	sessionRepo ports.SessionRepo,
	participantRepo ports.ParticipantRepo,
	notifier ports.SignupNotifier,
	clk clock.Clock,
	logger logger.Logger,
) *SignupService {
	return &SignupService{
		signupRepo:      signupRepo,
		sessionRepo:     sessionRepo,
		participantRepo: participantRepo,
		notifier:        notifier,
		clk:             clk,
		logger:          logger,
	}
}

// Register creates a signup, landing it on the roster or the waitlist
// depending on capacity. Restricted participants are rejected before any row
// is written.
func (s *SignupService) Register(ctx context.Context, sessionID, participantID string) (*domain.Signup, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("check participant: %w", err)
	}

	now := s.clk.Now()
	switch rotation.Advance(session, now) {
	case domain.SessionStatusScheduled, domain.SessionStatusInProgress:
	default:
		return nil, fmt.Errorf("%w: session is not open for registration", domain.ErrValidation)
	}

	history, err := s.signupRepo.NoShowHistory(ctx, session.WorkspaceID, participantID)
	if err != nil {
		return nil, fmt.Errorf("load no-show history: %w", err)
	}
	if !penalty.CanRegister(session.Penalty, history, now) {
		return nil, domain.ErrParticipantRestricted
	}

	signup := &domain.Signup{
		ID:            uuid.New().String(),
		SessionID:     sessionID,
		ParticipantID: participantID,
		RegisteredAt:  now,
		UpdatedAt:     now,
	}
	if err = s.signupRepo.Register(ctx, signup); err != nil {
		return nil, fmt.Errorf("register signup: %w", err)
	}

	s.logger.Info("signup created",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", sessionID),
		logger.String("participant_id", participantID),
		logger.String("status", string(signup.Status)),
	)

	if signup.Status == domain.SignupStatusWaitlisted {
		go s.notifier.NotifyWaitlisted(context.WithoutCancel(ctx), participant, session)
	} else {
		go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), participant, session)
	}

	return signup, nil
}

// Update applies a PATCH: an optional status transition plus engagement and
// satisfaction updates, in that order.
func (s *SignupService) Update(ctx context.Context, signupID string, input domain.UpdateSignupInput) (*domain.Signup, error) {
	signup, err := s.signupRepo.GetByID(ctx, signupID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		signup, err = s.applyTransition(ctx, signup, *input.Status)
		if err != nil {
			return nil, err
		}
	}

	if err = s.applyEngagement(ctx, signup, input); err != nil {
		return nil, err
	}

	return signup, nil
}

func (s *SignupService) applyTransition(ctx context.Context, signup *domain.Signup, to domain.SignupStatus) (*domain.Signup, error) {
	switch to {
	case domain.SignupStatusCheckedIn:
		return s.checkIn(ctx, signup)
	case domain.SignupStatusNoShow:
		return s.markNoShow(ctx, signup)
	case domain.SignupStatusRemoved:
		return s.remove(ctx, signup)
	default:
		updated, err := s.signupRepo.Transition(ctx, signup.ID, to, s.clk.Now())
		if err != nil {
			return nil, err
		}

		s.logger.Info("signup transitioned",
			logger.String("signup_id", signup.ID),
			logger.String("from", string(signup.Status)),
			logger.String("to", string(to)),
		)

		return updated, nil
	}
}

func (s *SignupService) checkIn(ctx context.Context, signup *domain.Signup) (*domain.Signup, error) {
	session, err := s.sessionRepo.GetByID(ctx, signup.SessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	now := s.clk.Now()
	effective := rotation.Advance(session, now)
	inGrace := effective == domain.SessionStatusScheduled &&
		!now.Before(session.StartTime.Add(-checkInGrace))
	if effective != domain.SessionStatusInProgress && !inGrace {
		return nil, fmt.Errorf("%w: %s -> %s outside the check-in window",
			domain.ErrInvalidTransition, signup.Status, domain.SignupStatusCheckedIn)
	}

	updated, err := s.signupRepo.Transition(ctx, signup.ID, domain.SignupStatusCheckedIn, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup checked in",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", signup.SessionID),
	)

	return updated, nil
}

// markNoShow settles an absence. A no-show exists only in hindsight: while
// the session is still scheduled or running the attendee may yet show up, so
// the transition is accepted only once the last rotation has elapsed.
func (s *SignupService) markNoShow(ctx context.Context, signup *domain.Signup) (*domain.Signup, error) {
	session, err := s.sessionRepo.GetByID(ctx, signup.SessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	now := s.clk.Now()
	if rotation.Advance(session, now) != domain.SessionStatusCompleted {
		return nil, fmt.Errorf("%w: %s -> %s before the session has completed",
			domain.ErrInvalidTransition, signup.Status, domain.SignupStatusNoShow)
	}

	updated, err := s.signupRepo.Transition(ctx, signup.ID, domain.SignupStatusNoShow, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup marked no-show",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", signup.SessionID),
	)

	return updated, nil
}

func (s *SignupService) remove(ctx context.Context, signup *domain.Signup) (*domain.Signup, error) {
	// Removal is idempotent.
	if signup.Status == domain.SignupStatusRemoved {
		return signup, nil
	}

	updated, err := s.signupRepo.Transition(ctx, signup.ID, domain.SignupStatusRemoved, s.clk.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup removed",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", signup.SessionID),
	)

	if session, err := s.sessionRepo.GetByID(ctx, signup.SessionID); err == nil {
		if participant, err := s.participantRepo.GetByID(ctx, signup.ParticipantID); err == nil {
			go s.notifier.NotifyRemoved(context.WithoutCancel(ctx), participant, session)
		}
	}

	// The freed slot goes to the waitlist head, strict FIFO.
	s.promote(ctx, signup.SessionID)

	return updated, nil
}

func (s *SignupService) promote(ctx context.Context, sessionID string) {
	promoted, err := s.signupRepo.PromoteNext(ctx, sessionID, s.clk.Now())
	if err != nil {
		s.logger.Error("waitlist promotion failed",
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
		return
	}
	if promoted == nil {
		return
	}

	s.logger.Info("signup promoted from waitlist",
		logger.String("signup_id", promoted.ID),
		logger.String("session_id", sessionID),
	)

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return
	}
	participant, err := s.participantRepo.GetByID(ctx, promoted.ParticipantID)
	if err != nil {
		return
	}
	go s.notifier.NotifyPromoted(context.WithoutCancel(ctx), participant, session)
}

func (s *SignupService) applyEngagement(ctx context.Context, signup *domain.Signup, input domain.UpdateSignupInput) error {
	changed := false

	if input.SatisfactionScore != nil {
		if *input.SatisfactionScore < 0 || *input.SatisfactionScore > 100 {
			return fmt.Errorf("%w: satisfaction_score must be between 0 and 100", domain.ErrValidation)
		}
		if signup.Status != domain.SignupStatusCompleted {
			return fmt.Errorf("%w: satisfaction_score can only be set after completion", domain.ErrValidation)
		}
		signup.SatisfactionScore = input.SatisfactionScore
		changed = true
	}

	counters := []struct {
		name    string
		value   *int
		current *int
	}{
		{"profile_shared_count", input.ProfileSharedCount, &signup.ProfileSharedCount},
		{"connections_saved", input.ConnectionsSaved, &signup.ConnectionsSaved},
		{"messages_sent", input.MessagesSent, &signup.MessagesSent},
		{"follow_ups_scheduled", input.FollowUpsScheduled, &signup.FollowUpsScheduled},
	}
	for _, c := range counters {
		if c.value == nil {
			continue
		}
		if *c.value < *c.current {
			return fmt.Errorf("%w: %s must not decrease", domain.ErrValidation, c.name)
		}
		*c.current = *c.value
		changed = true
	}

	if input.BusinessCardID != nil {
		signup.BusinessCardID = input.BusinessCardID
		changed = true
	}

	if !changed {
		return nil
	}

	signup.UpdatedAt = s.clk.Now()
	if err := s.signupRepo.UpdateEngagement(ctx, signup); err != nil {
		return fmt.Errorf("update engagement: %w", err)
	}

	return nil
}

func (s *SignupService) GetByID(ctx context.Context, id string) (*domain.Signup, error) {
	return s.signupRepo.GetByID(ctx, id)
}

func (s *SignupService) ListBySession(ctx context.Context, sessionID string) ([]*domain.Signup, error) {
	return s.signupRepo.ListBySession(ctx, sessionID)
}

func (s *SignupService) ListByParticipant(ctx context.Context, participantID string) ([]*domain.Signup, error) {
	return s.signupRepo.ListByParticipant(ctx, participantID)
}

// FinalizeElapsed persists lazy status advancement for live sessions and, for
// sessions whose last rotation has elapsed, settles the roster: still
// checked-in attendees become completed, attendees who never showed become
// no-shows. Waitlisted signups never held a slot and are left untouched.
// Invoked periodically by the sweeper; reads stay pure either way.
func (s *SignupService) FinalizeElapsed(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListByStatuses(ctx, []domain.SessionStatus{
		domain.SessionStatusScheduled,
		domain.SessionStatusInProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("list live sessions: %w", err)
	}

	now := s.clk.Now()
	var finalized []*domain.Session

	for _, session := range sessions {
		effective := rotation.Advance(session, now)
		if effective == session.Status {
			continue
		}

		if err := s.sessionRepo.UpdateStatus(ctx, session.ID, session.Status, effective); err != nil {
			s.logger.Error("failed to advance session status",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		session.Status = effective

		if effective != domain.SessionStatusCompleted {
			continue
		}

		if err := s.settleRoster(ctx, session, now); err != nil {
			s.logger.Error("failed to settle roster",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		finalized = append(finalized, session)
	}

	return finalized, nil
}

func (s *SignupService) settleRoster(ctx context.Context, session *domain.Session, now time.Time) error {
	signups, err := s.signupRepo.ListBySession(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("list signups: %w", err)
	}

	var completed, noShows int
	for _, sg := range signups {
		switch sg.Status {
		case domain.SignupStatusCheckedIn:
			if _, err := s.signupRepo.Transition(ctx, sg.ID, domain.SignupStatusCompleted, now); err != nil {
				return fmt.Errorf("complete signup %s: %w", sg.ID, err)
			}
			completed++
		case domain.SignupStatusRegistered:
			if _, err := s.signupRepo.Transition(ctx, sg.ID, domain.SignupStatusNoShow, now); err != nil {
				return fmt.Errorf("mark no-show %s: %w", sg.ID, err)
			}
			noShows++
		}
	}

	s.logger.Info("session finalized",
		logger.String("session_id", session.ID),
		logger.Int("completed", completed),
		logger.Int("no_shows", noShows),
	)

	return nil
}
