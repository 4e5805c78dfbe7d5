package ports

import (
	"context"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
)

type SignupRepo interface {
	// Register inserts the signup, deciding registered vs waitlisted under
	// the session row lock so the capacity check and the insert are atomic.
	// The decided status is written back onto sg.
	Register(ctx context.Context, sg *domain.Signup) error
	GetByID(ctx context.Context, id string) (*domain.Signup, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Signup, error)
	ListByParticipant(ctx context.Context, participantID string) ([]*domain.Signup, error)
	// Transition applies one state-machine move under the signup row lock.
	// Waitlist promotions additionally take the session lock for the
	// vacancy check.
	Transition(ctx context.Context, id string, to domain.SignupStatus, now time.Time) (*domain.Signup, error)
	// PromoteNext moves the FIFO head of the waitlist to registered if a
	// vacancy exists; (nil, nil) when there is nothing to promote.
	PromoteNext(ctx context.Context, sessionID string, now time.Time) (*domain.Signup, error)
	// UpdateEngagement persists counters, satisfaction and business card
	// without touching status or transition timestamps.
	UpdateEngagement(ctx context.Context, sg *domain.Signup) error
	// NoShowHistory returns the no-show instants of a participant across
	// all sessions of a workspace, for penalty evaluation.
	NoShowHistory(ctx context.Context, workspaceID, participantID string) ([]time.Time, error)
}
