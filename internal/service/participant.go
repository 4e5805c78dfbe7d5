package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mingleup/mingleup/internal/clock"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/service/ports"
)

type ParticipantService struct {
	repo ports.ParticipantRepo
	clk  clock.Clock
}

func NewParticipantService(repo ports.ParticipantRepo, clk clock.Clock) *ParticipantService {
	return &ParticipantService{repo: repo, clk: clk}
}

func (s *ParticipantService) Create(ctx context.Context, input domain.CreateParticipantInput) (*domain.Participant, error) {
	if input.DisplayName == "" {
		return nil, fmt.Errorf("%w: display_name is required", domain.ErrValidation)
	}

	participant := &domain.Participant{
		ID:             uuid.New().String(),
		DisplayName:    input.DisplayName,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.clk.Now(),
	}

	if err := s.repo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ParticipantService) List(ctx context.Context) ([]*domain.Participant, error) {
	return s.repo.List(ctx)
}
