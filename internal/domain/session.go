package domain

import "time"

type SessionStatus string

const (
	SessionStatusDraft      SessionStatus = "draft"
	SessionStatusScheduled  SessionStatus = "scheduled"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

type AccessType string

const (
	AccessTypeFree       AccessType = "free"
	AccessTypePaid       AccessType = "paid"
	AccessTypeInviteOnly AccessType = "invite_only"
)

// PenaltyRules configures the no-show policy for a session's workspace.
type PenaltyRules struct {
	NoShowThreshold int `json:"no_show_threshold"`
	CooldownDays    int `json:"cooldown_days"`
}

type Session struct {
	ID                      string        `json:"id"`
	WorkspaceID             string        `json:"workspace_id"`
	Title                   string        `json:"title"`
	Description             string        `json:"description"`
	Status                  SessionStatus `json:"status"`
	StartTime               time.Time     `json:"start_time"`
	SessionLengthMinutes    int           `json:"session_length_minutes"`
	RotationDurationSeconds int           `json:"rotation_duration_seconds"`
	JoinLimit               *int          `json:"join_limit"`
	WaitlistLimit           *int          `json:"waitlist_limit"`
	AccessType              AccessType    `json:"access_type"`
	PriceCents              int           `json:"price_cents"`
	RequiresApproval        bool          `json:"requires_approval"`
	Penalty                 PenaltyRules  `json:"penalty_rules"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

// RotationCount derives how many rotations fit into the session length.
// Zero means the configuration is invalid.
func (s *Session) RotationCount() int {
	if s.RotationDurationSeconds <= 0 || s.SessionLengthMinutes <= 0 {
		return 0
	}
	return s.SessionLengthMinutes * 60 / s.RotationDurationSeconds
}

// Rotation is a derived time slot, never persisted on its own.
type Rotation struct {
	Number          int       `json:"rotation_number"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
}

type SessionDetails struct {
	Session    Session  `json:"session"`
	Registered int      `json:"registered"`
	Waitlisted int      `json:"waitlisted"`
	Signups    []Signup `json:"signups"`
}

type CreateSessionInput struct {
	WorkspaceID             string
	Title                   string
	Description             string
	StartTime               time.Time
	SessionLengthMinutes    int
	RotationDurationSeconds int
	JoinLimit               *int
	WaitlistLimit           *int
	AccessType              AccessType
	PriceCents              int
	RequiresApproval        bool
	Penalty                 *PenaltyRules
}
