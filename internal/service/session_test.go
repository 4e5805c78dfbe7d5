package service

import (
	"context"
	"testing"
	"time"

	"github.com/mingleup/mingleup/internal/clock"
	"github.com/mingleup/mingleup/internal/domain"
	"github.com/mingleup/mingleup/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func validSessionInput() domain.CreateSessionInput {
	return domain.CreateSessionInput{
		WorkspaceID:             "w1",
		Title:                   "Founders Mixer",
		Description:             "Meet your next co-founder",
		StartTime:               testNow.Add(24 * time.Hour),
		SessionLengthMinutes:    30,
		RotationDurationSeconds: 180,
		JoinLimit:               intPtr(20),
		AccessType:              domain.AccessTypeFree,
	}
}

func newSessionService(t *testing.T) (*mocks.MockSessionRepo, *mocks.MockSignupRepo, *SessionService) {
	t.Helper()
	sessionRepo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	svc := NewSessionService(sessionRepo, signupRepo, clock.Fixed{Instant: testNow})
	return sessionRepo, signupRepo, svc
}

func TestSessionService_CreateSession_Success(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.CreateSession(context.Background(), validSessionInput())

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.SessionStatusDraft, session.Status)
	assert.Equal(t, "Founders Mixer", session.Title)
	assert.Equal(t, 10, session.RotationCount())
	// Penalty rules default when omitted.
	assert.Equal(t, 3, session.Penalty.NoShowThreshold)
	assert.Equal(t, 7, session.Penalty.CooldownDays)
}

func TestSessionService_CreateSession_InvalidConfiguration(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateSessionInput)
	}{
		{"zero length", func(in *domain.CreateSessionInput) { in.SessionLengthMinutes = 0 }},
		{"zero rotation", func(in *domain.CreateSessionInput) { in.RotationDurationSeconds = 0 }},
		{"rotation longer than session", func(in *domain.CreateSessionInput) {
			in.SessionLengthMinutes = 1
			in.RotationDurationSeconds = 120
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, svc := newSessionService(t)

			input := validSessionInput()
			tc.mutate(&input)

			_, err := svc.CreateSession(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestSessionService_CreateSession_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateSessionInput)
	}{
		{"empty title", func(in *domain.CreateSessionInput) { in.Title = "" }},
		{"empty workspace", func(in *domain.CreateSessionInput) { in.WorkspaceID = "" }},
		{"past start", func(in *domain.CreateSessionInput) { in.StartTime = testNow.Add(-time.Hour) }},
		{"paid without price", func(in *domain.CreateSessionInput) { in.AccessType = domain.AccessTypePaid }},
		{"join limit below two", func(in *domain.CreateSessionInput) { in.JoinLimit = intPtr(1) }},
		{"negative waitlist limit", func(in *domain.CreateSessionInput) { in.WaitlistLimit = intPtr(-1) }},
		{"unknown access type", func(in *domain.CreateSessionInput) { in.AccessType = "vip" }},
		{"zero penalty threshold", func(in *domain.CreateSessionInput) {
			in.Penalty = &domain.PenaltyRules{NoShowThreshold: 0, CooldownDays: 7}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, svc := newSessionService(t)

			input := validSessionInput()
			tc.mutate(&input)

			_, err := svc.CreateSession(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSessionService_CreateSession_PriceIgnoredWhenFree(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validSessionInput()
	input.PriceCents = 500 // not a paid session

	session, err := svc.CreateSession(context.Background(), input)

	require.NoError(t, err)
	assert.Zero(t, session.PriceCents)
}

func TestSessionService_Publish_Success(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Status: domain.SessionStatusDraft}, nil)
	sessionRepo.EXPECT().UpdateStatus(mock.Anything, "s1", domain.SessionStatusDraft, domain.SessionStatusScheduled).
		Return(nil)

	session, err := svc.Publish(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusScheduled, session.Status)
}

func TestSessionService_Publish_NotDraft(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Status: domain.SessionStatusInProgress}, nil)

	_, err := svc.Publish(context.Background(), "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSessionService_Cancel_Success(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Status: domain.SessionStatusScheduled}, nil)
	sessionRepo.EXPECT().UpdateStatus(mock.Anything, "s1", domain.SessionStatusScheduled, domain.SessionStatusCancelled).
		Return(nil)

	session, err := svc.Cancel(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, session.Status)
}

func TestSessionService_Cancel_Terminal(t *testing.T) {
	for _, status := range []domain.SessionStatus{domain.SessionStatusCompleted, domain.SessionStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			sessionRepo, _, svc := newSessionService(t)

			sessionRepo.EXPECT().GetByID(mock.Anything, "s1").
				Return(&domain.Session{ID: "s1", Status: status}, nil)

			_, err := svc.Cancel(context.Background(), "s1")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestSessionService_Timeline(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{
		ID:                      "s1",
		Status:                  domain.SessionStatusScheduled,
		StartTime:               testNow.Add(time.Hour),
		SessionLengthMinutes:    30,
		RotationDurationSeconds: 180,
	}, nil)

	rotations, err := svc.Timeline(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, rotations, 10)
}

func TestSessionService_Snapshot_LiveSession(t *testing.T) {
	sessionRepo, signupRepo, svc := newSessionService(t)

	// Started 185s before the fixed clock: second rotation is live.
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{
		ID:                      "s1",
		Status:                  domain.SessionStatusInProgress,
		StartTime:               testNow.Add(-185 * time.Second),
		SessionLengthMinutes:    30,
		RotationDurationSeconds: 180,
	}, nil)
	signupRepo.EXPECT().ListBySession(mock.Anything, "s1").Return(nil, nil)

	snap, err := svc.Snapshot(context.Background(), "s1")

	require.NoError(t, err)
	require.NotNil(t, snap.ActiveRotation)
	assert.Equal(t, 2, snap.ActiveRotation.Number)
}

func TestSessionService_Metrics_Revenue(t *testing.T) {
	sessionRepo, signupRepo, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{
		ID:         "s1",
		AccessType: domain.AccessTypePaid,
		PriceCents: 500,
	}, nil)
	signupRepo.EXPECT().ListBySession(mock.Anything, "s1").Return([]*domain.Signup{
		{Status: domain.SignupStatusRegistered},
		{Status: domain.SignupStatusRegistered},
		{Status: domain.SignupStatusCheckedIn},
		{Status: domain.SignupStatusCheckedIn},
		{Status: domain.SignupStatusCheckedIn},
	}, nil)

	m, err := svc.Metrics(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(1500), m.RevenueCents)
}

func TestSessionService_WorkspaceMetrics(t *testing.T) {
	sessionRepo, signupRepo, svc := newSessionService(t)

	sessions := []*domain.Session{
		{ID: "s1", WorkspaceID: "w1", JoinLimit: intPtr(10), RotationDurationSeconds: 180},
		{ID: "s2", WorkspaceID: "w1", RotationDurationSeconds: 300},
	}
	sessionRepo.EXPECT().ListByWorkspace(mock.Anything, "w1").Return(sessions, nil)
	signupRepo.EXPECT().ListBySession(mock.Anything, "s1").Return([]*domain.Signup{
		{Status: domain.SignupStatusCompleted},
		{Status: domain.SignupStatusNoShow},
	}, nil)
	signupRepo.EXPECT().ListBySession(mock.Anything, "s2").Return(nil, nil)

	m, err := svc.WorkspaceMetrics(context.Background(), "w1")

	require.NoError(t, err)
	assert.Equal(t, 2, m.Sessions)
	require.NotNil(t, m.NoShowRate)
	assert.Equal(t, 50.0, *m.NoShowRate)
	require.NotNil(t, m.AverageJoinLimit)
	assert.Equal(t, 10.0, *m.AverageJoinLimit)
}

func TestSessionService_GetDetails(t *testing.T) {
	sessionRepo, signupRepo, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1"}, nil)
	signupRepo.EXPECT().ListBySession(mock.Anything, "s1").Return([]*domain.Signup{
		{ID: "a", Status: domain.SignupStatusRegistered},
		{ID: "b", Status: domain.SignupStatusWaitlisted},
		{ID: "c", Status: domain.SignupStatusRemoved},
	}, nil)

	details, err := svc.GetDetails(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 1, details.Registered)
	assert.Equal(t, 1, details.Waitlisted)
	assert.Len(t, details.Signups, 3)
}

func TestSessionService_GetDetails_NotFound(t *testing.T) {
	sessionRepo, _, svc := newSessionService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, domain.ErrSessionNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
