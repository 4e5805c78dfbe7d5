package attendance

import (
	"testing"
	"time"

	"github.com/mingleup/mingleup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func signupWithStatus(id string, status domain.SignupStatus) *domain.Signup {
	return &domain.Signup{
		ID:           id,
		SessionID:    "s1",
		Status:       status,
		RegisteredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to domain.SignupStatus
		ok       bool
	}{
		{domain.SignupStatusRegistered, domain.SignupStatusCheckedIn, true},
		{domain.SignupStatusRegistered, domain.SignupStatusNoShow, true},
		{domain.SignupStatusRegistered, domain.SignupStatusRemoved, true},
		{domain.SignupStatusRegistered, domain.SignupStatusCompleted, false},
		{domain.SignupStatusWaitlisted, domain.SignupStatusRegistered, true},
		{domain.SignupStatusWaitlisted, domain.SignupStatusCheckedIn, true},
		{domain.SignupStatusWaitlisted, domain.SignupStatusNoShow, false},
		{domain.SignupStatusCheckedIn, domain.SignupStatusCompleted, true},
		{domain.SignupStatusCheckedIn, domain.SignupStatusNoShow, true},
		{domain.SignupStatusCheckedIn, domain.SignupStatusRegistered, false},
		{domain.SignupStatusCompleted, domain.SignupStatusRemoved, true},
		{domain.SignupStatusCompleted, domain.SignupStatusCheckedIn, false},
		{domain.SignupStatusNoShow, domain.SignupStatusRemoved, true},
		{domain.SignupStatusRemoved, domain.SignupStatusRegistered, false},
		{domain.SignupStatusRemoved, domain.SignupStatusRemoved, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransition_CheckInStampsTimestampOnce(t *testing.T) {
	sg := signupWithStatus("a", domain.SignupStatusRegistered)
	now := time.Date(2026, 3, 10, 18, 1, 0, 0, time.UTC)

	require.NoError(t, Transition(sg, domain.SignupStatusCheckedIn, now))

	assert.Equal(t, domain.SignupStatusCheckedIn, sg.Status)
	require.NotNil(t, sg.CheckedInAt)
	assert.Equal(t, now, *sg.CheckedInAt)

	later := now.Add(time.Hour)
	require.NoError(t, Transition(sg, domain.SignupStatusCompleted, later))

	// CheckedInAt keeps its original stamp.
	assert.Equal(t, now, *sg.CheckedInAt)
	require.NotNil(t, sg.CompletedAt)
	assert.Equal(t, later, *sg.CompletedAt)
}

func TestTransition_NoShowIncrementsPenalty(t *testing.T) {
	sg := signupWithStatus("a", domain.SignupStatusRegistered)
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

	require.NoError(t, Transition(sg, domain.SignupStatusNoShow, now))

	assert.Equal(t, 1, sg.PenaltyCount)
	assert.Nil(t, sg.CompletedAt)
	require.NotNil(t, sg.NoShowAt)
	assert.Equal(t, now, *sg.NoShowAt)
}

func TestTransition_NoShowInstantSurvivesLaterWrites(t *testing.T) {
	sg := signupWithStatus("a", domain.SignupStatusRegistered)
	now := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)

	require.NoError(t, Transition(sg, domain.SignupStatusNoShow, now))

	// Engagement PATCHes keep touching the row afterwards; the cooldown
	// anchor must not drift with them.
	later := now.Add(48 * time.Hour)
	sg.UpdatedAt = later

	require.NoError(t, Transition(sg, domain.SignupStatusRemoved, later))

	require.NotNil(t, sg.NoShowAt)
	assert.Equal(t, now, *sg.NoShowAt)
	assert.Equal(t, later, sg.UpdatedAt)
}

func TestTransition_InvalidNamesBothStates(t *testing.T) {
	sg := signupWithStatus("a", domain.SignupStatusCompleted)

	err := Transition(sg, domain.SignupStatusCheckedIn, time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "completed")
	assert.Contains(t, err.Error(), "checked_in")
	// signup untouched
	assert.Equal(t, domain.SignupStatusCompleted, sg.Status)
}

func TestRegistrationStatus_CapacityLadder(t *testing.T) {
	s := &domain.Session{JoinLimit: intPtr(2), WaitlistLimit: intPtr(1)}

	status, err := RegistrationStatus(s, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusRegistered, status)

	full := []*domain.Signup{
		signupWithStatus("a", domain.SignupStatusRegistered),
		signupWithStatus("b", domain.SignupStatusCheckedIn),
	}
	status, err = RegistrationStatus(s, full)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusWaitlisted, status)

	full = append(full, signupWithStatus("c", domain.SignupStatusWaitlisted))
	_, err = RegistrationStatus(s, full)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestRegistrationStatus_NilLimitsAreUnbounded(t *testing.T) {
	s := &domain.Session{}

	var signups []*domain.Signup
	for i := 0; i < 500; i++ {
		signups = append(signups, signupWithStatus("x", domain.SignupStatusRegistered))
	}

	status, err := RegistrationStatus(s, signups)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusRegistered, status)

	// Full join limit with nil waitlist limit: unbounded waitlist.
	s.JoinLimit = intPtr(1)
	status, err = RegistrationStatus(s, signups)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusWaitlisted, status)
}

func TestRegistrationStatus_RemovedAndNoShowFreeSlots(t *testing.T) {
	s := &domain.Session{JoinLimit: intPtr(2)}

	signups := []*domain.Signup{
		signupWithStatus("a", domain.SignupStatusRegistered),
		signupWithStatus("b", domain.SignupStatusRemoved),
		signupWithStatus("c", domain.SignupStatusNoShow),
	}

	status, err := RegistrationStatus(s, signups)
	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusRegistered, status)
}

func TestPromotionCandidate_FIFO(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a := signupWithStatus("a", domain.SignupStatusWaitlisted)
	a.RegisteredAt = base
	b := signupWithStatus("b", domain.SignupStatusWaitlisted)
	b.RegisteredAt = base.Add(time.Second)
	reg := signupWithStatus("r", domain.SignupStatusRegistered)
	reg.RegisteredAt = base.Add(-time.Hour)

	got := PromotionCandidate([]*domain.Signup{b, reg, a})

	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestPromotionCandidate_TieBreaksByID(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a := signupWithStatus("a", domain.SignupStatusWaitlisted)
	b := signupWithStatus("b", domain.SignupStatusWaitlisted)
	a.RegisteredAt = base
	b.RegisteredAt = base

	got := PromotionCandidate([]*domain.Signup{b, a})

	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestPromotionCandidate_NilWhenNobodyWaiting(t *testing.T) {
	assert.Nil(t, PromotionCandidate(nil))
	assert.Nil(t, PromotionCandidate([]*domain.Signup{
		signupWithStatus("a", domain.SignupStatusRegistered),
	}))
}

func TestHasVacancy(t *testing.T) {
	s := &domain.Session{JoinLimit: intPtr(1)}

	assert.True(t, HasVacancy(s, nil))
	assert.False(t, HasVacancy(s, []*domain.Signup{
		signupWithStatus("a", domain.SignupStatusCompleted),
	}))

	s.JoinLimit = nil
	assert.True(t, HasVacancy(s, []*domain.Signup{
		signupWithStatus("a", domain.SignupStatusCompleted),
	}))
}
