package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
)

// allowed is the signup transition table. Capacity and session-status guards
// live with the callers; this table only encodes which moves exist at all.
var allowed = map[domain.SignupStatus][]domain.SignupStatus{
	domain.SignupStatusRegistered: {
		domain.SignupStatusCheckedIn,
		domain.SignupStatusNoShow,
		domain.SignupStatusRemoved,
	},
	domain.SignupStatusWaitlisted: {
		domain.SignupStatusRegistered, // promotion
		domain.SignupStatusCheckedIn,  // promotion straight into the room
		domain.SignupStatusRemoved,
	},
	domain.SignupStatusCheckedIn: {
		domain.SignupStatusCompleted,
		domain.SignupStatusNoShow,
		domain.SignupStatusRemoved,
	},
	domain.SignupStatusCompleted: {
		domain.SignupStatusRemoved,
	},
	domain.SignupStatusNoShow: {
		domain.SignupStatusRemoved,
	},
}

// CanTransition reports whether the move exists in the transition table.
func CanTransition(from, to domain.SignupStatus) bool {
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition applies a status change to the signup, stamping the transition
// timestamps exactly once. It fails with ErrInvalidTransition for moves
// outside the table, naming both states.
func Transition(sg *domain.Signup, to domain.SignupStatus, now time.Time) error {
	if !CanTransition(sg.Status, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, sg.Status, to)
	}

	sg.Status = to
	sg.UpdatedAt = now

	switch to {
	case domain.SignupStatusCheckedIn:
		if sg.CheckedInAt == nil {
			at := now
			sg.CheckedInAt = &at
		}
	case domain.SignupStatusCompleted:
		if sg.CompletedAt == nil {
			at := now
			sg.CompletedAt = &at
		}
	case domain.SignupStatusNoShow:
		sg.PenaltyCount++
		// NoShowAt anchors the penalty cooldown; later writes to the row
		// must not move it.
		if sg.NoShowAt == nil {
			at := now
			sg.NoShowAt = &at
		}
	}

	return nil
}

// JoinedCount counts signups holding a guaranteed slot.
func JoinedCount(signups []*domain.Signup) int {
	n := 0
	for _, sg := range signups {
		switch sg.Status {
		case domain.SignupStatusRegistered, domain.SignupStatusCheckedIn, domain.SignupStatusCompleted:
			n++
		}
	}
	return n
}

// WaitlistCount counts signups currently waiting for a slot.
func WaitlistCount(signups []*domain.Signup) int {
	n := 0
	for _, sg := range signups {
		if sg.Status == domain.SignupStatusWaitlisted {
			n++
		}
	}
	return n
}

// HasVacancy reports whether a guaranteed slot is open.
func HasVacancy(s *domain.Session, signups []*domain.Signup) bool {
	if s.JoinLimit == nil {
		return true
	}
	return JoinedCount(signups) < *s.JoinLimit
}

// RegistrationStatus decides the status of a brand-new signup given current
// occupancy: registered while a slot is open, waitlisted while the waitlist
// has room, ErrCapacityExceeded otherwise. The caller must hold the session
// lock so the check and the insert are atomic.
func RegistrationStatus(s *domain.Session, signups []*domain.Signup) (domain.SignupStatus, error) {
	if HasVacancy(s, signups) {
		return domain.SignupStatusRegistered, nil
	}
	if s.WaitlistLimit == nil || WaitlistCount(signups) < *s.WaitlistLimit {
		return domain.SignupStatusWaitlisted, nil
	}
	return "", fmt.Errorf("%w: join and waitlist limits reached", domain.ErrCapacityExceeded)
}

// PromotionCandidate picks the waitlisted signup next in line: strict FIFO by
// RegisteredAt, ties broken by signup id. Returns nil when nobody is waiting.
func PromotionCandidate(signups []*domain.Signup) *domain.Signup {
	var waiting []*domain.Signup
	for _, sg := range signups {
		if sg.Status == domain.SignupStatusWaitlisted {
			waiting = append(waiting, sg)
		}
	}
	if len(waiting) == 0 {
		return nil
	}

	sort.Slice(waiting, func(i, j int) bool {
		if waiting[i].RegisteredAt.Equal(waiting[j].RegisteredAt) {
			return waiting[i].ID < waiting[j].ID
		}
		return waiting[i].RegisteredAt.Before(waiting[j].RegisteredAt)
	})

	return waiting[0]
}
