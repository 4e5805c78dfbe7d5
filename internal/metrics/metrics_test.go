package metrics

import (
	"testing"

	"github.com/mingleup/mingleup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }

func signup(status domain.SignupStatus) *domain.Signup {
	return &domain.Signup{SessionID: "s1", Status: status}
}

func TestForSession_StatusCounts(t *testing.T) {
	s := &domain.Session{ID: "s1"}
	signups := []*domain.Signup{
		signup(domain.SignupStatusRegistered),
		signup(domain.SignupStatusRegistered),
		signup(domain.SignupStatusWaitlisted),
		signup(domain.SignupStatusCheckedIn),
		signup(domain.SignupStatusCompleted),
		signup(domain.SignupStatusNoShow),
		signup(domain.SignupStatusRemoved),
	}

	m := ForSession(s, signups)

	assert.Equal(t, 2, m.Registered)
	assert.Equal(t, 1, m.Waitlisted)
	assert.Equal(t, 1, m.CheckedIn)
	assert.Equal(t, 1, m.Completed)
	assert.Equal(t, 1, m.NoShows)
	assert.Equal(t, 1, m.Removed)
	// Removed signups are kept for history but not counted as signups.
	assert.Equal(t, 6, m.TotalSignups)
}

func TestForSession_SatisfactionMeanOverCompletedOnly(t *testing.T) {
	s := &domain.Session{ID: "s1"}

	done1 := signup(domain.SignupStatusCompleted)
	done1.SatisfactionScore = intPtr(80)
	done2 := signup(domain.SignupStatusCompleted)
	done2.SatisfactionScore = intPtr(90)
	doneUnscored := signup(domain.SignupStatusCompleted)
	checkedIn := signup(domain.SignupStatusCheckedIn)
	checkedIn.SatisfactionScore = intPtr(10) // not completed, ignored

	m := ForSession(s, []*domain.Signup{done1, done2, doneUnscored, checkedIn})

	require.NotNil(t, m.AverageSatisfaction)
	assert.InDelta(t, 85.0, *m.AverageSatisfaction, 0.001)
}

func TestForSession_SatisfactionNilWithoutScores(t *testing.T) {
	s := &domain.Session{ID: "s1"}

	m := ForSession(s, []*domain.Signup{signup(domain.SignupStatusCompleted)})

	assert.Nil(t, m.AverageSatisfaction)
}

func TestForSession_RevenueChargedOnlyForShowed(t *testing.T) {
	s := &domain.Session{ID: "s1", AccessType: domain.AccessTypePaid, PriceCents: 500}

	signups := []*domain.Signup{
		signup(domain.SignupStatusRegistered),
		signup(domain.SignupStatusRegistered),
		signup(domain.SignupStatusCheckedIn),
		signup(domain.SignupStatusCheckedIn),
		signup(domain.SignupStatusCompleted),
	}

	m := ForSession(s, signups)

	// 3 of 5 showed: 2 checked in + 1 completed.
	assert.Equal(t, int64(1500), m.RevenueCents)
}

func TestForSession_FreeSessionHasNoRevenue(t *testing.T) {
	s := &domain.Session{ID: "s1", AccessType: domain.AccessTypeFree, PriceCents: 500}

	m := ForSession(s, []*domain.Signup{signup(domain.SignupStatusCompleted)})

	assert.Zero(t, m.RevenueCents)
}

func TestForSession_CardSharesAndEngagement(t *testing.T) {
	s := &domain.Session{ID: "s1"}

	a := signup(domain.SignupStatusCompleted)
	a.BusinessCardID = strPtr("card-1")
	a.ConnectionsSaved = 3
	a.MessagesSent = 5
	a.FollowUpsScheduled = 2
	b := signup(domain.SignupStatusCheckedIn)
	b.FollowUpsScheduled = 1

	m := ForSession(s, []*domain.Signup{a, b})

	assert.Equal(t, 1, m.CardShares)
	assert.Equal(t, 3, m.ConnectionsSaved)
	assert.Equal(t, 5, m.MessagesSent)
	assert.Equal(t, 3, m.FollowUpsScheduled)
}

func TestAcross_NoShowRate(t *testing.T) {
	s1 := &domain.Session{ID: "s1"}
	s2 := &domain.Session{ID: "s2"}

	bySession := map[string][]*domain.Signup{
		"s1": {
			signup(domain.SignupStatusCompleted),
			signup(domain.SignupStatusNoShow),
		},
		"s2": {
			signup(domain.SignupStatusCompleted),
		},
	}

	w := Across([]*domain.Session{s1, s2}, bySession)

	require.NotNil(t, w.NoShowRate)
	// 1 no-show over 3 signups = 33.3%, one decimal.
	assert.Equal(t, 33.3, *w.NoShowRate)
	assert.GreaterOrEqual(t, *w.NoShowRate, 0.0)
	assert.LessOrEqual(t, *w.NoShowRate, 100.0)
}

func TestAcross_NoShowRateNilWithoutSignups(t *testing.T) {
	w := Across([]*domain.Session{{ID: "s1"}}, nil)

	assert.Nil(t, w.NoShowRate)
}

func TestAcross_AveragesOverDefinedValuesOnly(t *testing.T) {
	s1 := &domain.Session{ID: "s1", JoinLimit: intPtr(10), RotationDurationSeconds: 180}
	s2 := &domain.Session{ID: "s2", RotationDurationSeconds: 300} // unlimited join
	s3 := &domain.Session{ID: "s3", JoinLimit: intPtr(20), RotationDurationSeconds: 120}

	w := Across([]*domain.Session{s1, s2, s3}, nil)

	require.NotNil(t, w.AverageJoinLimit)
	assert.InDelta(t, 15.0, *w.AverageJoinLimit, 0.001)
	require.NotNil(t, w.AverageRotationSeconds)
	assert.InDelta(t, 200.0, *w.AverageRotationSeconds, 0.001)
}

func TestAcross_AveragesNilWhenNoSessionDefinesValue(t *testing.T) {
	w := Across([]*domain.Session{{ID: "s1"}, {ID: "s2"}}, nil)

	assert.Nil(t, w.AverageJoinLimit)
	assert.Nil(t, w.AverageRotationSeconds)
	assert.Nil(t, w.AverageSatisfaction)
}

func TestAcross_RevenueAndSatisfactionWeighting(t *testing.T) {
	paid := &domain.Session{ID: "s1", AccessType: domain.AccessTypePaid, PriceCents: 1000}
	free := &domain.Session{ID: "s2", AccessType: domain.AccessTypeFree}

	p1 := signup(domain.SignupStatusCompleted)
	p1.SatisfactionScore = intPtr(100)
	p2 := signup(domain.SignupStatusCompleted)
	p2.SatisfactionScore = intPtr(100)
	f1 := signup(domain.SignupStatusCompleted)
	f1.SatisfactionScore = intPtr(40)

	w := Across([]*domain.Session{paid, free}, map[string][]*domain.Signup{
		"s1": {p1, p2},
		"s2": {f1},
	})

	assert.Equal(t, int64(2000), w.RevenueCents)
	require.NotNil(t, w.AverageSatisfaction)
	// Weighted by signup, not by session: (100+100+40)/3.
	assert.InDelta(t, 80.0, *w.AverageSatisfaction, 0.001)
}

func TestAcross_Empty(t *testing.T) {
	w := Across(nil, nil)

	assert.Zero(t, w.Sessions)
	assert.Nil(t, w.NoShowRate)
	assert.Zero(t, w.RevenueCents)
}
