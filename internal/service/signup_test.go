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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type signupFixture struct {
	signupRepo      *mocks.MockSignupRepo
	sessionRepo     *mocks.MockSessionRepo
	participantRepo *mocks.MockParticipantRepo
	notifier        *mocks.MockSignupNotifier
	svc             *SignupService
}

func newSignupService(t *testing.T) signupFixture {
	t.Helper()
	f := signupFixture{
		signupRepo:      mocks.NewMockSignupRepo(t),
		sessionRepo:     mocks.NewMockSessionRepo(t),
		participantRepo: mocks.NewMockParticipantRepo(t),
		notifier:        mocks.NewMockSignupNotifier(t),
	}
	f.svc = NewSignupService(
		f.signupRepo, f.sessionRepo, f.participantRepo,
		f.notifier, clock.Fixed{Instant: testNow}, newTestLogger(t),
	)
	return f
}

func scheduledSession() *domain.Session {
	return &domain.Session{
		ID:                      "s1",
		WorkspaceID:             "w1",
		Status:                  domain.SessionStatusScheduled,
		StartTime:               testNow.Add(time.Hour),
		SessionLengthMinutes:    30,
		RotationDurationSeconds: 180,
		Penalty:                 domain.PenaltyRules{NoShowThreshold: 2, CooldownDays: 7},
	}
}

func TestSignupService_Register_Registered(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	participant := &domain.Participant{ID: "p1", DisplayName: "alice"}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").Return(participant, nil)
	f.signupRepo.EXPECT().NoShowHistory(mock.Anything, "w1", "p1").Return(nil, nil)
	f.signupRepo.EXPECT().Register(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, sg *domain.Signup) {
			sg.Status = domain.SignupStatusRegistered
		}).Return(nil)
	f.notifier.EXPECT().NotifyRegistered(mock.Anything, participant, session).Return()

	signup, err := f.svc.Register(context.Background(), "s1", "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusRegistered, signup.Status)
	assert.NotEmpty(t, signup.ID)
	assert.Equal(t, testNow, signup.RegisteredAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSignupService_Register_Waitlisted(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	participant := &domain.Participant{ID: "p1", DisplayName: "alice"}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").Return(participant, nil)
	f.signupRepo.EXPECT().NoShowHistory(mock.Anything, "w1", "p1").Return(nil, nil)
	f.signupRepo.EXPECT().Register(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, sg *domain.Signup) {
			sg.Status = domain.SignupStatusWaitlisted
		}).Return(nil)
	f.notifier.EXPECT().NotifyWaitlisted(mock.Anything, participant, session).Return()

	signup, err := f.svc.Register(context.Background(), "s1", "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusWaitlisted, signup.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestSignupService_Register_Restricted(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()

	// Two recent no-shows against a threshold of two: cooldown active.
	history := []time.Time{
		testNow.Add(-72 * time.Hour),
		testNow.Add(-24 * time.Hour),
	}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").
		Return(&domain.Participant{ID: "p1"}, nil)
	f.signupRepo.EXPECT().NoShowHistory(mock.Anything, "w1", "p1").Return(history, nil)

	_, err := f.svc.Register(context.Background(), "s1", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantRestricted)
}

func TestSignupService_Register_CooldownExpired(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	participant := &domain.Participant{ID: "p1"}

	history := []time.Time{
		testNow.AddDate(0, -2, 0),
		testNow.AddDate(0, 0, -8), // cooldown of 7 days already over
	}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").Return(participant, nil)
	f.signupRepo.EXPECT().NoShowHistory(mock.Anything, "w1", "p1").Return(history, nil)
	f.signupRepo.EXPECT().Register(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, sg *domain.Signup) {
			sg.Status = domain.SignupStatusRegistered
		}).Return(nil)
	f.notifier.EXPECT().NotifyRegistered(mock.Anything, participant, session).Return()

	_, err := f.svc.Register(context.Background(), "s1", "p1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestSignupService_Register_CapacityExceeded(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").
		Return(&domain.Participant{ID: "p1"}, nil)
	f.signupRepo.EXPECT().NoShowHistory(mock.Anything, "w1", "p1").Return(nil, nil)
	f.signupRepo.EXPECT().Register(mock.Anything, mock.Anything).
		Return(domain.ErrCapacityExceeded)

	_, err := f.svc.Register(context.Background(), "s1", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestSignupService_Register_ClosedSession(t *testing.T) {
	for _, status := range []domain.SessionStatus{
		domain.SessionStatusDraft,
		domain.SessionStatusCompleted,
		domain.SessionStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newSignupService(t)
			session := scheduledSession()
			session.Status = status

			f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
			f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").
				Return(&domain.Participant{ID: "p1"}, nil)

			_, err := f.svc.Register(context.Background(), "s1", "p1")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSignupService_Register_SessionNotFound(t *testing.T) {
	f := newSignupService(t)

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, domain.ErrSessionNotFound)

	_, err := f.svc.Register(context.Background(), "missing", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSignupService_Update_CheckIn_LiveSession(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	session.Status = domain.SessionStatusInProgress
	session.StartTime = testNow.Add(-time.Minute)

	signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusRegistered}
	checkedIn := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusCheckedIn}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCheckedIn, testNow).
		Return(checkedIn, nil)

	status := domain.SignupStatusCheckedIn
	got, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusCheckedIn, got.Status)
}

func TestSignupService_Update_CheckIn_GraceWindow(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	session.StartTime = testNow.Add(10 * time.Minute) // inside the 15m grace

	signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusRegistered}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCheckedIn, testNow).
		Return(&domain.Signup{ID: "g1", Status: domain.SignupStatusCheckedIn}, nil)

	status := domain.SignupStatusCheckedIn
	_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.NoError(t, err)
}

func TestSignupService_Update_CheckIn_TooEarly(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	session.StartTime = testNow.Add(time.Hour) // outside grace

	signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusRegistered}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)

	status := domain.SignupStatusCheckedIn
	_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSignupService_Update_Remove_PromotesWaitlistHead(t *testing.T) {
	f := newSignupService(t)
	session := scheduledSession()
	participant := &domain.Participant{ID: "p1"}
	promotedParticipant := &domain.Participant{ID: "p2"}

	signup := &domain.Signup{ID: "g1", SessionID: "s1", ParticipantID: "p1", Status: domain.SignupStatusRegistered}
	removed := &domain.Signup{ID: "g1", SessionID: "s1", ParticipantID: "p1", Status: domain.SignupStatusRemoved}
	promoted := &domain.Signup{ID: "g2", SessionID: "s1", ParticipantID: "p2", Status: domain.SignupStatusRegistered}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusRemoved, testNow).
		Return(removed, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p1").Return(participant, nil)
	f.notifier.EXPECT().NotifyRemoved(mock.Anything, participant, session).Return()
	f.signupRepo.EXPECT().PromoteNext(mock.Anything, "s1", testNow).Return(promoted, nil)
	f.participantRepo.EXPECT().GetByID(mock.Anything, "p2").Return(promotedParticipant, nil)
	f.notifier.EXPECT().NotifyPromoted(mock.Anything, promotedParticipant, session).Return()

	status := domain.SignupStatusRemoved
	got, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusRemoved, got.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestSignupService_Update_Remove_Idempotent(t *testing.T) {
	f := newSignupService(t)

	// Already removed: no transition, no promotion.
	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").
		Return(&domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusRemoved}, nil)

	status := domain.SignupStatusRemoved
	got, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusRemoved, got.Status)
}

func TestSignupService_Update_InvalidTransition(t *testing.T) {
	f := newSignupService(t)

	// Session over, but completed -> no_show does not exist in the table.
	session := scheduledSession()
	session.Status = domain.SessionStatusInProgress
	session.StartTime = testNow.Add(-2 * time.Hour)

	signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusCompleted}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusNoShow, testNow).
		Return(nil, domain.ErrInvalidTransition)

	status := domain.SignupStatusNoShow
	_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSignupService_Update_NoShowBeforeSessionEnds(t *testing.T) {
	cases := map[string]func(s *domain.Session){
		"scheduled": func(s *domain.Session) {},
		"in_progress": func(s *domain.Session) {
			s.Status = domain.SessionStatusInProgress
			s.StartTime = testNow.Add(-time.Minute)
		},
	}

	for name, arrange := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSignupService(t)
			session := scheduledSession()
			arrange(session)

			signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusRegistered}

			f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
			f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)

			status := domain.SignupStatusNoShow
			_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			// No transition persisted, no penalty recorded.
			f.signupRepo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSignupService_Update_NoShowAfterSessionEnds(t *testing.T) {
	f := newSignupService(t)

	// Last rotation elapsed; the row just has not been swept yet.
	session := scheduledSession()
	session.Status = domain.SessionStatusInProgress
	session.StartTime = testNow.Add(-2 * time.Hour)

	signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusRegistered}
	noShow := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusNoShow, PenaltyCount: 1}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusNoShow, testNow).
		Return(noShow, nil)

	status := domain.SignupStatusNoShow
	got, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.SignupStatusNoShow, got.Status)
	assert.Equal(t, 1, got.PenaltyCount)
}

func TestSignupService_Update_SatisfactionAfterCompletion(t *testing.T) {
	f := newSignupService(t)

	signup := &domain.Signup{ID: "g1", SessionID: "s1", Status: domain.SignupStatusCompleted}

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	f.signupRepo.EXPECT().UpdateEngagement(mock.Anything, mock.Anything).Return(nil)

	score := 85
	got, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{SatisfactionScore: &score})

	require.NoError(t, err)
	require.NotNil(t, got.SatisfactionScore)
	assert.Equal(t, 85, *got.SatisfactionScore)
}

func TestSignupService_Update_SatisfactionBeforeCompletion(t *testing.T) {
	f := newSignupService(t)

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").
		Return(&domain.Signup{ID: "g1", Status: domain.SignupStatusCheckedIn}, nil)

	score := 85
	_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{SatisfactionScore: &score})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignupService_Update_SatisfactionOutOfRange(t *testing.T) {
	f := newSignupService(t)

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").
		Return(&domain.Signup{ID: "g1", Status: domain.SignupStatusCompleted}, nil)

	score := 101
	_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{SatisfactionScore: &score})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignupService_Update_CountersMustNotDecrease(t *testing.T) {
	f := newSignupService(t)

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").
		Return(&domain.Signup{ID: "g1", Status: domain.SignupStatusCheckedIn, MessagesSent: 5}, nil)

	fewer := 3
	_, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{MessagesSent: &fewer})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignupService_Update_CountersAdvance(t *testing.T) {
	f := newSignupService(t)

	f.signupRepo.EXPECT().GetByID(mock.Anything, "g1").
		Return(&domain.Signup{ID: "g1", Status: domain.SignupStatusCheckedIn, MessagesSent: 5}, nil)
	f.signupRepo.EXPECT().UpdateEngagement(mock.Anything, mock.Anything).Return(nil)

	more := 8
	got, err := f.svc.Update(context.Background(), "g1", domain.UpdateSignupInput{MessagesSent: &more})

	require.NoError(t, err)
	assert.Equal(t, 8, got.MessagesSent)
}

func TestSignupService_FinalizeElapsed_SettlesRoster(t *testing.T) {
	f := newSignupService(t)

	// Session ended an hour ago but the row still says in_progress.
	session := scheduledSession()
	session.Status = domain.SessionStatusInProgress
	session.StartTime = testNow.Add(-2 * time.Hour)

	f.sessionRepo.EXPECT().ListByStatuses(mock.Anything, mock.Anything).
		Return([]*domain.Session{session}, nil)
	f.sessionRepo.EXPECT().UpdateStatus(mock.Anything, "s1", domain.SessionStatusInProgress, domain.SessionStatusCompleted).
		Return(nil)
	f.signupRepo.EXPECT().ListBySession(mock.Anything, "s1").Return([]*domain.Signup{
		{ID: "a", SessionID: "s1", Status: domain.SignupStatusCheckedIn},
		{ID: "b", SessionID: "s1", Status: domain.SignupStatusRegistered},
		{ID: "c", SessionID: "s1", Status: domain.SignupStatusWaitlisted},
		{ID: "d", SessionID: "s1", Status: domain.SignupStatusRemoved},
	}, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "a", domain.SignupStatusCompleted, testNow).
		Return(&domain.Signup{ID: "a", Status: domain.SignupStatusCompleted}, nil)
	f.signupRepo.EXPECT().Transition(mock.Anything, "b", domain.SignupStatusNoShow, testNow).
		Return(&domain.Signup{ID: "b", Status: domain.SignupStatusNoShow}, nil)

	finalized, err := f.svc.FinalizeElapsed(context.Background())

	require.NoError(t, err)
	require.Len(t, finalized, 1)
	assert.Equal(t, domain.SessionStatusCompleted, finalized[0].Status)
}

func TestSignupService_FinalizeElapsed_AdvancesScheduledToInProgress(t *testing.T) {
	f := newSignupService(t)

	session := scheduledSession()
	session.StartTime = testNow.Add(-time.Minute)

	f.sessionRepo.EXPECT().ListByStatuses(mock.Anything, mock.Anything).
		Return([]*domain.Session{session}, nil)
	f.sessionRepo.EXPECT().UpdateStatus(mock.Anything, "s1", domain.SessionStatusScheduled, domain.SessionStatusInProgress).
		Return(nil)

	finalized, err := f.svc.FinalizeElapsed(context.Background())

	require.NoError(t, err)
	// Advanced but not yet finalized.
	assert.Empty(t, finalized)
}

func TestSignupService_FinalizeElapsed_NothingToDo(t *testing.T) {
	f := newSignupService(t)

	session := scheduledSession() // starts in an hour

	f.sessionRepo.EXPECT().ListByStatuses(mock.Anything, mock.Anything).
		Return([]*domain.Session{session}, nil)

	finalized, err := f.svc.FinalizeElapsed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, finalized)
}
