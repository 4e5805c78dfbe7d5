package sweeper

import (
	"context"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionFinalizer interface {
	FinalizeElapsed(ctx context.Context) ([]*domain.Session, error)
}

// Sweeper periodically persists the lazy status advancement of live
// sessions. Reads stay correct without it; it only settles rosters and
// pins down statuses for paused dashboards.
type Sweeper struct {
	signupService sessionFinalizer
	interval      time.Duration
	logger        logger.Logger
}

func New(
	signupService sessionFinalizer,
	interval time.Duration,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		signupService: signupService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	finalized, err := s.signupService.FinalizeElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to finalize elapsed sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, session := range finalized {
		s.logger.Info("session swept",
			logger.String("session_id", session.ID),
			logger.String("workspace_id", session.WorkspaceID),
		)
	}
}
