package domain

import "time"

type SignupStatus string

const (
	SignupStatusRegistered SignupStatus = "registered"
	SignupStatusWaitlisted SignupStatus = "waitlisted"
	SignupStatusCheckedIn  SignupStatus = "checked_in"
	SignupStatusCompleted  SignupStatus = "completed"
	SignupStatusNoShow     SignupStatus = "no_show"
	SignupStatusRemoved    SignupStatus = "removed"
)

// JoinedStatuses occupy a guaranteed slot and count toward the join limit.
var JoinedStatuses = []SignupStatus{
	SignupStatusRegistered,
	SignupStatusCheckedIn,
	SignupStatusCompleted,
}

// ActiveStatuses are every non-removed status; the one-signup-per-participant
// rule is enforced over this set.
var ActiveStatuses = []SignupStatus{
	SignupStatusRegistered,
	SignupStatusWaitlisted,
	SignupStatusCheckedIn,
	SignupStatusCompleted,
	SignupStatusNoShow,
}

type Signup struct {
	ID                 string       `json:"id"`
	SessionID          string       `json:"session_id"`
	ParticipantID      string       `json:"participant_id"`
	Status             SignupStatus `json:"status"`
	PenaltyCount       int          `json:"penalty_count"`
	SatisfactionScore  *int         `json:"satisfaction_score"`
	ProfileSharedCount int          `json:"profile_shared_count"`
	ConnectionsSaved   int          `json:"connections_saved"`
	MessagesSent       int          `json:"messages_sent"`
	FollowUpsScheduled int          `json:"follow_ups_scheduled"`
	BusinessCardID     *string      `json:"business_card_id"`
	RegisteredAt       time.Time    `json:"registered_at"`
	CheckedInAt        *time.Time   `json:"checked_in_at"`
	CompletedAt        *time.Time   `json:"completed_at"`
	NoShowAt           *time.Time   `json:"no_show_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// UpdateSignupInput carries the optional PATCH fields. Counters are absolute
// values and must not decrease.
type UpdateSignupInput struct {
	Status             *SignupStatus
	SatisfactionScore  *int
	ProfileSharedCount *int
	ConnectionsSaved   *int
	MessagesSent       *int
	FollowUpsScheduled *int
	BusinessCardID     *string
}
