package metrics

import (
	"math"

	"github.com/mingleup/mingleup/internal/domain"
)

// SessionMetrics is a computed view over one session's signups. It is derived
// on every read and never stored alongside the session.
type SessionMetrics struct {
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

// WorkspaceMetrics aggregates SessionMetrics across a session list.
type WorkspaceMetrics struct {
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

// ForSession computes the per-session metrics shown on dashboards: status
// counts, satisfaction mean over completed signups, engagement sums and
// revenue. Revenue is charged only for attendees who actually showed
// (checked_in or completed) on paid sessions.
func ForSession(s *domain.Session, signups []*domain.Signup) SessionMetrics {
	m := SessionMetrics{SessionID: s.ID}

	var scoreSum, scoreCount int
	var showed int64

	for _, sg := range signups {
		switch sg.Status {
		case domain.SignupStatusRegistered:
			m.Registered++
		case domain.SignupStatusWaitlisted:
			m.Waitlisted++
		case domain.SignupStatusCheckedIn:
			m.CheckedIn++
			showed++
		case domain.SignupStatusCompleted:
			m.Completed++
			showed++
			if sg.SatisfactionScore != nil {
				scoreSum += *sg.SatisfactionScore
				scoreCount++
			}
		case domain.SignupStatusNoShow:
			m.NoShows++
		case domain.SignupStatusRemoved:
			m.Removed++
		}

		if sg.Status != domain.SignupStatusRemoved {
			m.TotalSignups++
		}
		if sg.BusinessCardID != nil {
			m.CardShares++
		}
		m.ConnectionsSaved += sg.ConnectionsSaved
		m.MessagesSent += sg.MessagesSent
		m.FollowUpsScheduled += sg.FollowUpsScheduled
	}

	if scoreCount > 0 {
		avg := float64(scoreSum) / float64(scoreCount)
		m.AverageSatisfaction = &avg
	}

	if s.AccessType == domain.AccessTypePaid {
		m.RevenueCents = int64(s.PriceCents) * showed
	}

	return m
}

// Across aggregates metrics over a list of sessions. Averages are taken only
// over sessions with a defined value and stay nil when no session has one;
// noShowRate is nil when there are no signups at all, never a division by
// zero.
func Across(sessions []*domain.Session, signupsBySession map[string][]*domain.Signup) WorkspaceMetrics {
	w := WorkspaceMetrics{Sessions: len(sessions)}

	var scoreSum float64
	var scoreCount int
	var joinLimitSum, joinLimitCount int
	var rotationSum, rotationCount int

	for _, s := range sessions {
		m := ForSession(s, signupsBySession[s.ID])

		w.TotalSignups += m.TotalSignups
		w.Registered += m.Registered
		w.Waitlisted += m.Waitlisted
		w.CheckedIn += m.CheckedIn
		w.Completed += m.Completed
		w.NoShows += m.NoShows
		w.CardShares += m.CardShares
		w.FollowUpsScheduled += m.FollowUpsScheduled
		w.RevenueCents += m.RevenueCents

		// Weight the satisfaction mean by scored signups, not by session.
		if m.AverageSatisfaction != nil && m.Completed > 0 {
			for _, sg := range signupsBySession[s.ID] {
				if sg.Status == domain.SignupStatusCompleted && sg.SatisfactionScore != nil {
					scoreSum += float64(*sg.SatisfactionScore)
					scoreCount++
				}
			}
		}

		if s.JoinLimit != nil {
			joinLimitSum += *s.JoinLimit
			joinLimitCount++
		}
		if s.RotationDurationSeconds > 0 {
			rotationSum += s.RotationDurationSeconds
			rotationCount++
		}
	}

	if scoreCount > 0 {
		avg := scoreSum / float64(scoreCount)
		w.AverageSatisfaction = &avg
	}
	if w.TotalSignups > 0 {
		rate := round1(float64(w.NoShows) / float64(w.TotalSignups) * 100)
		w.NoShowRate = &rate
	}
	if joinLimitCount > 0 {
		avg := float64(joinLimitSum) / float64(joinLimitCount)
		w.AverageJoinLimit = &avg
	}
	if rotationCount > 0 {
		avg := float64(rotationSum) / float64(rotationCount)
		w.AverageRotationSeconds = &avg
	}

	return w
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
