package dto

type PenaltyRules struct {
	NoShowThreshold int `json:"no_show_threshold"`
	CooldownDays    int `json:"cooldown_days"`
}

type CreateSessionRequest struct {
	WorkspaceID             string        `json:"workspace_id" binding:"required"`
	Title                   string        `json:"title" binding:"required"`
	Description             string        `json:"description"`
	StartTime               string        `json:"start_time" binding:"required"`
	SessionLengthMinutes    int           `json:"session_length_minutes"`
	RotationDurationSeconds int           `json:"rotation_duration_seconds"`
	JoinLimit               *int          `json:"join_limit"`
	WaitlistLimit           *int          `json:"waitlist_limit"`
	AccessType              string        `json:"access_type"`
	PriceCents              int           `json:"price_cents"`
	RequiresApproval        bool          `json:"requires_approval"`
	Penalty                 *PenaltyRules `json:"penalty_rules"`
}

type RegisterRequest struct {
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
}

type UpdateSignupRequest struct {
	Status             *string `json:"status"`
	SatisfactionScore  *int    `json:"satisfaction_score"`
	ProfileSharedCount *int    `json:"profile_shared_count"`
	ConnectionsSaved   *int    `json:"connections_saved"`
	MessagesSent       *int    `json:"messages_sent"`
	FollowUpsScheduled *int    `json:"follow_ups_scheduled"`
	BusinessCardID     *string `json:"business_card_id"`
}

type CreateParticipantRequest struct {
	DisplayName    string `json:"display_name" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
