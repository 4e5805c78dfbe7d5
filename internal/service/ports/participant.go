package ports

import (
	"context"

	"github.com/mingleup/mingleup/internal/domain"
)

type ParticipantRepo interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	List(ctx context.Context) ([]*domain.Participant, error)
}
