package snapshot

import (
	"sort"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/rotation"
)

// Snapshot is the live room view polled by dashboards. It is rebuilt from
// scratch on every read; nothing here is cached.
type Snapshot struct {
	SessionID      string               `json:"session_id"`
	Status         domain.SessionStatus `json:"status"`
	ActiveRotation *domain.Rotation     `json:"active_rotation"`
	NextRotation   *domain.Rotation     `json:"next_rotation"`
	CheckedIn      []domain.Signup      `json:"checked_in"`
	Waitlist       []domain.Signup      `json:"waitlist"`
	Completed      []domain.Signup      `json:"completed"`
	NoShows        []domain.Signup      `json:"no_shows"`
}

// Build assembles the snapshot for a session at now. Lists are filtered by
// current signup status and ordered by registration time ascending.
func Build(s *domain.Session, signups []*domain.Signup, now time.Time) Snapshot {
	snap := Snapshot{
		SessionID:      s.ID,
		Status:         rotation.Advance(s, now),
		ActiveRotation: rotation.Active(s, now),
		NextRotation:   rotation.Next(s, now),
		CheckedIn:      []domain.Signup{},
		Waitlist:       []domain.Signup{},
		Completed:      []domain.Signup{},
		NoShows:        []domain.Signup{},
	}

	ordered := make([]*domain.Signup, len(signups))
	copy(ordered, signups)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].RegisteredAt.Equal(ordered[j].RegisteredAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].RegisteredAt.Before(ordered[j].RegisteredAt)
	})

	for _, sg := range ordered {
		switch sg.Status {
		case domain.SignupStatusCheckedIn:
			snap.CheckedIn = append(snap.CheckedIn, *sg)
		case domain.SignupStatusWaitlisted:
			snap.Waitlist = append(snap.Waitlist, *sg)
		case domain.SignupStatusCompleted:
			snap.Completed = append(snap.Completed, *sg)
		case domain.SignupStatusNoShow:
			snap.NoShows = append(snap.NoShows, *sg)
		}
	}

	return snap
}
