package rotation

import (
	"fmt"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
)

// Timeline computes the full ordered rotation sequence for a session.
// The timeline is a pure function of the session's start time, rotation
// duration and derived rotation count.
func Timeline(s *domain.Session) ([]domain.Rotation, error) {
	if s.SessionLengthMinutes <= 0 {
		return nil, fmt.Errorf("%w: session_length_minutes must be positive", domain.ErrInvalidConfiguration)
	}
	if s.RotationDurationSeconds <= 0 {
		return nil, fmt.Errorf("%w: rotation_duration_seconds must be positive", domain.ErrInvalidConfiguration)
	}

	count := s.RotationCount()
	if count < 1 {
		return nil, fmt.Errorf("%w: rotation duration exceeds session length", domain.ErrInvalidConfiguration)
	}

	step := time.Duration(s.RotationDurationSeconds) * time.Second
	rotations := make([]domain.Rotation, count)
	for i := range rotations {
		start := s.StartTime.Add(time.Duration(i) * step)
		rotations[i] = domain.Rotation{
			Number:          i + 1,
			StartTime:       start,
			EndTime:         start.Add(step),
			DurationSeconds: s.RotationDurationSeconds,
		}
	}

	return rotations, nil
}

// EndTime is the end of the last rotation, i.e. when the session completes.
func EndTime(s *domain.Session) time.Time {
	step := time.Duration(s.RotationDurationSeconds) * time.Second
	return s.StartTime.Add(time.Duration(s.RotationCount()) * step)
}

// Active returns the rotation whose [start, end) window contains now, or nil
// when the session has not started, has run out of rotations, or is not
// effectively in progress. Status is evaluated through Advance so that a
// reader polling after startTime sees the rotation without waiting for the
// status write to land.
func Active(s *domain.Session, now time.Time) *domain.Rotation {
	if Advance(s, now) != domain.SessionStatusInProgress {
		return nil
	}
	if now.Before(s.StartTime) {
		return nil
	}

	rotations, err := Timeline(s)
	if err != nil {
		return nil
	}
	for i := range rotations {
		r := rotations[i]
		if !now.Before(r.StartTime) && now.Before(r.EndTime) {
			return &r
		}
	}
	return nil
}

// Next returns the first rotation starting strictly after now, or nil once
// every rotation has begun.
func Next(s *domain.Session, now time.Time) *domain.Rotation {
	rotations, err := Timeline(s)
	if err != nil {
		return nil
	}
	for i := range rotations {
		if rotations[i].StartTime.After(now) {
			r := rotations[i]
			return &r
		}
	}
	return nil
}

// Advance returns the status the session should hold at now. It is pure and
// idempotent: draft and cancelled never auto-advance, scheduled becomes
// in_progress at startTime, in_progress becomes completed once the last
// rotation has elapsed. It never mutates the session.
func Advance(s *domain.Session, now time.Time) domain.SessionStatus {
	status := s.Status
	if status == domain.SessionStatusScheduled && !now.Before(s.StartTime) {
		status = domain.SessionStatusInProgress
	}
	if status == domain.SessionStatusInProgress && !now.Before(EndTime(s)) {
		status = domain.SessionStatusCompleted
	}
	return status
}
