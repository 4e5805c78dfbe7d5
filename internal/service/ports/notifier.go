package ports

import (
	"context"

	"github.com/mingleup/mingleup/internal/domain"
)

type SignupNotifier interface {
	NotifyRegistered(ctx context.Context, p *domain.Participant, s *domain.Session)
	NotifyWaitlisted(ctx context.Context, p *domain.Participant, s *domain.Session)
	NotifyPromoted(ctx context.Context, p *domain.Participant, s *domain.Session)
	NotifyRemoved(ctx context.Context, p *domain.Participant, s *domain.Session)
}
