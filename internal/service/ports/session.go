package ports

import (
	"context"

	"github.com/mingleup/mingleup/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Session, error)
	ListByStatuses(ctx context.Context, statuses []domain.SessionStatus) ([]*domain.Session, error)
	// UpdateStatus writes to only when the row still holds from, so
	// concurrent advancement stays idempotent.
	UpdateStatus(ctx context.Context, id string, from, to domain.SessionStatus) error
}
