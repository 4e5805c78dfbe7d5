package dto

import (
	"time"

	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/metrics"
	"github.com/mingleup/mingleup/internal/snapshot"
)

type SessionResponse struct {
	ID                      string       `json:"id"`
	WorkspaceID             string       `json:"workspace_id"`
	Title                   string       `json:"title"`
	Description             string       `json:"description"`
	Status                  string       `json:"status"`
	StartTime               string       `json:"start_time"`
	SessionLengthMinutes    int          `json:"session_length_minutes"`
	RotationDurationSeconds int          `json:"rotation_duration_seconds"`
	RotationCount           int          `json:"rotation_count"`
	JoinLimit               *int         `json:"join_limit"`
	WaitlistLimit           *int         `json:"waitlist_limit"`
	AccessType              string       `json:"access_type"`
	PriceCents              int          `json:"price_cents"`
	RequiresApproval        bool         `json:"requires_approval"`
	Penalty                 PenaltyRules `json:"penalty_rules"`
	CreatedAt               string       `json:"created_at"`
}

type SessionDetailsResponse struct {
	Session    SessionResponse  `json:"session"`
	Registered int              `json:"registered"`
	Waitlisted int              `json:"waitlisted"`
	Signups    []SignupResponse `json:"signups"`
}

type SignupResponse struct {
	ID                 string  `json:"id"`
	SessionID          string  `json:"session_id"`
	ParticipantID      string  `json:"participant_id"`
	Status             string  `json:"status"`
	PenaltyCount       int     `json:"penalty_count"`
	SatisfactionScore  *int    `json:"satisfaction_score,omitempty"`
	ProfileSharedCount int     `json:"profile_shared_count"`
	ConnectionsSaved   int     `json:"connections_saved"`
	MessagesSent       int     `json:"messages_sent"`
	FollowUpsScheduled int     `json:"follow_ups_scheduled"`
	BusinessCardID     *string `json:"business_card_id,omitempty"`
	RegisteredAt       string  `json:"registered_at"`
	CheckedInAt        *string `json:"checked_in_at,omitempty"`
	CompletedAt        *string `json:"completed_at,omitempty"`
	NoShowAt           *string `json:"no_show_at,omitempty"`
}

type RotationResponse struct {
	Number          int    `json:"rotation_number"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationSeconds int    `json:"duration_seconds"`
}

type SnapshotResponse struct {
	SessionID      string            `json:"session_id"`
	Status         string            `json:"status"`
	ActiveRotation *RotationResponse `json:"active_rotation"`
	NextRotation   *RotationResponse `json:"next_rotation"`
	CheckedIn      []SignupResponse  `json:"checked_in"`
	Waitlist       []SignupResponse  `json:"waitlist"`
	Completed      []SignupResponse  `json:"completed"`
	NoShows        []SignupResponse  `json:"no_shows"`
}

type SessionMetricsResponse struct {
	SessionID           string   `json:"session_id"`
	TotalSignups        int      `json:"total_signups"`
	Registered          int      `json:"registered"`
	Waitlisted          int      `json:"waitlisted"`
	CheckedIn           int      `json:"checked_in"`
	Completed           int      `json:"completed"`
	NoShows             int      `json:"no_shows"`
	Removed             int      `json:"removed"`
	AverageSatisfaction *float64 `json:"average_satisfaction"`
	CardShares          int      `json:"card_shares"`
	ConnectionsSaved    int      `json:"connections_saved"`
	MessagesSent        int      `json:"messages_sent"`
	FollowUpsScheduled  int      `json:"follow_ups_scheduled"`
	RevenueCents        int64    `json:"revenue_cents"`
}

type WorkspaceMetricsResponse struct {
	Sessions               int      `json:"sessions"`
	TotalSignups           int      `json:"total_signups"`
	Registered             int      `json:"registered"`
	Waitlisted             int      `json:"waitlisted"`
	CheckedIn              int      `json:"checked_in"`
	Completed              int      `json:"completed"`
	NoShows                int      `json:"no_shows"`
	NoShowRate             *float64 `json:"no_show_rate"`
	AverageSatisfaction    *float64 `json:"average_satisfaction"`
	AverageJoinLimit       *float64 `json:"average_join_limit"`
	AverageRotationSeconds *float64 `json:"average_rotation_seconds"`
	CardShares             int      `json:"card_shares"`
	FollowUpsScheduled     int      `json:"follow_ups_scheduled"`
	RevenueCents           int64    `json:"revenue_cents"`
}

type ParticipantResponse struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:                      s.ID,
		WorkspaceID:             s.WorkspaceID,
		Title:                   s.Title,
		Description:             s.Description,
		Status:                  string(s.Status),
		StartTime:               s.StartTime.Format(time.RFC3339),
		SessionLengthMinutes:    s.SessionLengthMinutes,
		RotationDurationSeconds: s.RotationDurationSeconds,
		RotationCount:           s.RotationCount(),
		JoinLimit:               s.JoinLimit,
		WaitlistLimit:           s.WaitlistLimit,
		AccessType:              string(s.AccessType),
		PriceCents:              s.PriceCents,
		RequiresApproval:        s.RequiresApproval,
		Penalty: PenaltyRules{
			NoShowThreshold: s.Penalty.NoShowThreshold,
			CooldownDays:    s.Penalty.CooldownDays,
		},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionDetailsResponse(d *domain.SessionDetails) SessionDetailsResponse {
	signups := make([]SignupResponse, 0, len(d.Signups))
	for _, sg := range d.Signups {
		signups = append(signups, ToSignupResponse(&sg))
	}

	return SessionDetailsResponse{
		Session:    ToSessionResponse(&d.Session),
		Registered: d.Registered,
		Waitlisted: d.Waitlisted,
		Signups:    signups,
	}
}

func ToSignupResponse(sg *domain.Signup) SignupResponse {
	return SignupResponse{
		ID:                 sg.ID,
		SessionID:          sg.SessionID,
		ParticipantID:      sg.ParticipantID,
		Status:             string(sg.Status),
		PenaltyCount:       sg.PenaltyCount,
		SatisfactionScore:  sg.SatisfactionScore,
		ProfileSharedCount: sg.ProfileSharedCount,
		ConnectionsSaved:   sg.ConnectionsSaved,
		MessagesSent:       sg.MessagesSent,
		FollowUpsScheduled: sg.FollowUpsScheduled,
		BusinessCardID:     sg.BusinessCardID,
		RegisteredAt:       sg.RegisteredAt.Format(time.RFC3339),
		CheckedInAt:        formatOptional(sg.CheckedInAt),
		CompletedAt:        formatOptional(sg.CompletedAt),
		NoShowAt:           formatOptional(sg.NoShowAt),
	}
}

func ToRotationResponse(r *domain.Rotation) *RotationResponse {
	if r == nil {
		return nil
	}
	return &RotationResponse{
		Number:          r.Number,
		StartTime:       r.StartTime.Format(time.RFC3339),
		EndTime:         r.EndTime.Format(time.RFC3339),
		DurationSeconds: r.DurationSeconds,
	}
}

func ToSnapshotResponse(snap *snapshot.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		SessionID:      snap.SessionID,
		Status:         string(snap.Status),
		ActiveRotation: ToRotationResponse(snap.ActiveRotation),
		NextRotation:   ToRotationResponse(snap.NextRotation),
		CheckedIn:      toSignupResponses(snap.CheckedIn),
		Waitlist:       toSignupResponses(snap.Waitlist),
		Completed:      toSignupResponses(snap.Completed),
		NoShows:        toSignupResponses(snap.NoShows),
	}
}

func ToSessionMetricsResponse(m *metrics.SessionMetrics) SessionMetricsResponse {
	return SessionMetricsResponse{
		SessionID:           m.SessionID,
		TotalSignups:        m.TotalSignups,
		Registered:          m.Registered,
		Waitlisted:          m.Waitlisted,
		CheckedIn:           m.CheckedIn,
		Completed:           m.Completed,
		NoShows:             m.NoShows,
		Removed:             m.Removed,
		AverageSatisfaction: m.AverageSatisfaction,
		CardShares:          m.CardShares,
		ConnectionsSaved:    m.ConnectionsSaved,
		MessagesSent:        m.MessagesSent,
		FollowUpsScheduled:  m.FollowUpsScheduled,
		RevenueCents:        m.RevenueCents,
	}
}

func ToWorkspaceMetricsResponse(m *metrics.WorkspaceMetrics) WorkspaceMetricsResponse {
	return WorkspaceMetricsResponse{
		Sessions:               m.Sessions,
		TotalSignups:           m.TotalSignups,
		Registered:             m.Registered,
		Waitlisted:             m.Waitlisted,
		CheckedIn:              m.CheckedIn,
		Completed:              m.Completed,
		NoShows:                m.NoShows,
		NoShowRate:             m.NoShowRate,
		AverageSatisfaction:    m.AverageSatisfaction,
		AverageJoinLimit:       m.AverageJoinLimit,
		AverageRotationSeconds: m.AverageRotationSeconds,
		CardShares:             m.CardShares,
		FollowUpsScheduled:     m.FollowUpsScheduled,
		RevenueCents:           m.RevenueCents,
	}
}

func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:             p.ID,
		DisplayName:    p.DisplayName,
		TelegramChatID: p.TelegramChatID,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

func toSignupResponses(signups []domain.Signup) []SignupResponse {
	res := make([]SignupResponse, 0, len(signups))
	for i := range signups {
		res = append(res, ToSignupResponse(&signups[i]))
	}
	return res
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
