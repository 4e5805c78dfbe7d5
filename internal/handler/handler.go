package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/handler/dto"
	"github.com/mingleup/mingleup/internal/metrics"
	"github.com/mingleup/mingleup/internal/snapshot"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error)
	GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Session, error)
	Publish(ctx context.Context, id string) (*domain.Session, error)
	Cancel(ctx context.Context, id string) (*domain.Session, error)
	Timeline(ctx context.Context, id string) ([]domain.Rotation, error)
	Snapshot(ctx context.Context, id string) (*snapshot.Snapshot, error)
	Metrics(ctx context.Context, id string) (*metrics.SessionMetrics, error)
	WorkspaceMetrics(ctx context.Context, workspaceID string) (*metrics.WorkspaceMetrics, error)
}

type SignupSvc interface {
	Register(ctx context.Context, sessionID, participantID string) (*domain.Signup, error)
	Update(ctx context.Context, signupID string, input domain.UpdateSignupInput) (*domain.Signup, error)
	ListByParticipant(ctx context.Context, participantID string) ([]*domain.Signup, error)
}

type ParticipantSvc interface {
	Create(ctx context.Context, input domain.CreateParticipantInput) (*domain.Participant, error)
	List(ctx context.Context) ([]*domain.Participant, error)
}

type Handler struct {
	sessionService     SessionSvc
	signupService      SignupSvc
	participantService ParticipantSvc
}

func NewHandler(sessionService SessionSvc, signupService SignupSvc, participantService ParticipantSvc) *Handler {
	return &Handler{
		sessionService:     sessionService,
		signupService:      signupService,
		participantService: participantService,
	}
}

// Sessions

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateSessionInput{
		WorkspaceID:             req.WorkspaceID,
		Title:                   req.Title,
		Description:             req.Description,
		StartTime:               startTime,
		SessionLengthMinutes:    req.SessionLengthMinutes,
		RotationDurationSeconds: req.RotationDurationSeconds,
		JoinLimit:               req.JoinLimit,
		WaitlistLimit:           req.WaitlistLimit,
		AccessType:              domain.AccessType(req.AccessType),
		PriceCents:              req.PriceCents,
		RequiresApproval:        req.RequiresApproval,
	}
	if req.Penalty != nil {
		input.Penalty = &domain.PenaltyRules{
			NoShowThreshold: req.Penalty.NoShowThreshold,
			CooldownDays:    req.Penalty.CooldownDays,
		}
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) GetSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	details, err := h.sessionService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDetailsResponse(details))
}

func (h *Handler) ListSessions(c *ginext.Context) {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "workspace_id is required"})
		return
	}

	sessions, err := h.sessionService.ListByWorkspace(c.Request.Context(), workspaceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) PublishSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.Publish(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) CancelSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) GetTimeline(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	rotations, err := h.sessionService.Timeline(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RotationResponse, 0, len(rotations))
	for i := range rotations {
		resp = append(resp, *dto.ToRotationResponse(&rotations[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSnapshot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	snap, err := h.sessionService.Snapshot(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snap))
}

func (h *Handler) GetSessionMetrics(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	m, err := h.sessionService.Metrics(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionMetricsResponse(m))
}

func (h *Handler) GetWorkspaceMetrics(c *ginext.Context) {
	workspaceID := c.Param("id")
	if workspaceID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workspace id"})
		return
	}

	m, err := h.sessionService.WorkspaceMetrics(c.Request.Context(), workspaceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceMetricsResponse(m))
}

// Signups

func (h *Handler) RegisterSignup(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	signup, err := h.signupService.Register(c.Request.Context(), sessionID, req.ParticipantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSignupResponse(signup))
}

func (h *Handler) UpdateSignup(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid signup id"})
		return
	}

	var req dto.UpdateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSignupInput{
		SatisfactionScore:  req.SatisfactionScore,
		ProfileSharedCount: req.ProfileSharedCount,
		ConnectionsSaved:   req.ConnectionsSaved,
		MessagesSent:       req.MessagesSent,
		FollowUpsScheduled: req.FollowUpsScheduled,
		BusinessCardID:     req.BusinessCardID,
	}
	if req.Status != nil {
		status := domain.SignupStatus(*req.Status)
		if !validSignupStatus(status) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown signup status"})
			return
		}
		input.Status = &status
	}

	signup, err := h.signupService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSignupResponse(signup))
}

func (h *Handler) GetParticipantSignups(c *ginext.Context) {
	participantID := c.Param("id")
	if _, err := uuid.Parse(participantID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid participant id"})
		return
	}

	signups, err := h.signupService.ListByParticipant(c.Request.Context(), participantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SignupResponse, 0, len(signups))
	for _, sg := range signups {
		resp = append(resp, dto.ToSignupResponse(sg))
	}

	c.JSON(http.StatusOK, resp)
}

// Participants

func (h *Handler) CreateParticipant(c *ginext.Context) {
	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateParticipantInput{
		DisplayName:    req.DisplayName,
		TelegramChatID: req.TelegramChatID,
	}

	participant, err := h.participantService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

func (h *Handler) ListParticipants(c *ginext.Context) {
	participants, err := h.participantService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		resp = append(resp, dto.ToParticipantResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSignupNotFound),
		errors.Is(err, domain.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrAlreadySignedUp),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrParticipantRestricted):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidConfiguration):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func validSignupStatus(s domain.SignupStatus) bool {
	switch s {
	case domain.SignupStatusRegistered, domain.SignupStatusWaitlisted,
		domain.SignupStatusCheckedIn, domain.SignupStatusCompleted,
		domain.SignupStatusNoShow, domain.SignupStatusRemoved:
		return true
	}
	return false
}
