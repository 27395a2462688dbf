package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blaizn/internal/coach"
	"blaizn/internal/domain"
	"blaizn/internal/infrastructure/repository"
	"blaizn/internal/infrastructure/security"
	"blaizn/internal/infrastructure/store"
)

type fixture struct {
	store   *store.MemoryStore
	users   *repository.UserRepository
	tokens  *security.TokenManager
	auth    *AuthUseCase
	tracker *TrackerUseCase
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	log := zap.NewNop()
	st := store.NewMemoryStore(log)
	users := repository.NewUserRepository(st, security.NewPlainComparer(), log)
	tokens := security.NewTokenManager("test-secret")
	engine := coach.NewEngine(rand.New(rand.NewSource(42))).WithNow(func() time.Time { return now })
	return &fixture{
		store:   st,
		users:   users,
		tokens:  tokens,
		auth:    NewAuthUseCase(users, tokens, log),
		tracker: NewTrackerUseCase(users, engine, log),
	}
}

func sessionFor(t *testing.T, f *fixture, token string) domain.Session {
	t.Helper()
	id, err := f.tokens.Validate(token)
	require.NoError(t, err)
	return domain.Session{ID: id}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t, time.Now())

	_, _, err := f.auth.Register(context.Background(), "A", "not-an-email", "short")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Name must be at least 2 characters", vErr.Fields["name"])
	assert.Equal(t, "Please enter a valid email address", vErr.Fields["email"])
	assert.Equal(t, "Password must be at least 6 characters", vErr.Fields["password"])
}

func TestRegisterOpensSession(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	user, token, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cur := f.auth.Current(ctx, sessionFor(t, f, token))
	require.NotNil(t, cur)
	assert.Equal(t, user.ID, cur.ID)
}

func TestOnboardingValidation(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	_, token, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	sess := sessionFor(t, f, token)

	_, err = f.tracker.CompleteOnboarding(ctx, sess, nil, "  ")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "tracks")
	assert.Contains(t, vErr.Fields, "goal")

	_, err = f.tracker.CompleteOnboarding(ctx, sess, []int{7}, "goal")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Unknown track selected", vErr.Fields["tracks"])
}

func TestToggleTaskPersistsWholeDay(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	_, token, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	sess := sessionFor(t, f, token)

	_, err = f.tracker.CompleteOnboarding(ctx, sess, []int{2}, "Get hired")
	require.NoError(t, err)

	tasks, err := f.tracker.TodayTasks(ctx, sess)
	require.NoError(t, err)
	require.Len(t, tasks, 5)

	// The default list is not persisted until the first toggle.
	assert.Empty(t, f.auth.Current(ctx, sess).DailyTasks)

	updated, err := f.tracker.ToggleTask(ctx, sess, 4)
	require.NoError(t, err)
	for _, task := range updated {
		assert.Equal(t, task.ID == 4, task.Completed)
	}

	stored := f.auth.Current(ctx, sess).DailyTasks["2026-08-31"]
	require.Len(t, stored, 5)

	// Toggling again flips it back.
	updated, err = f.tracker.ToggleTask(ctx, sess, 4)
	require.NoError(t, err)
	for _, task := range updated {
		assert.False(t, task.Completed)
	}

	_, err = f.tracker.ToggleTask(ctx, sess, 99)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestSnapshotCountsAndStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	_, token, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	sess := sessionFor(t, f, token)

	_, err = f.tracker.CompleteOnboarding(ctx, sess, []int{2}, "Get hired")
	require.NoError(t, err)

	// Complete 3 of 5: today passes the streak threshold.
	for _, id := range []int{1, 4, 5} {
		_, err = f.tracker.ToggleTask(ctx, sess, id)
		require.NoError(t, err)
	}

	snap, err := f.tracker.Snapshot(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 5, snap.TotalToday)
	assert.Equal(t, 3, snap.CompletedToday)
	assert.Equal(t, 1, snap.Streak)
	assert.Equal(t, 1, snap.CurrentWeek)
	assert.InDelta(t, 60.0, snap.ProgressPercent, 0.01)
}

func TestSuggestionForCurrentUser(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	_, token, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	sess := sessionFor(t, f, token)

	_, err = f.tracker.CompleteOnboarding(ctx, sess, []int{1, 3}, "Ship MVP")
	require.NoError(t, err)

	s, err := f.tracker.Suggestion(ctx, sess, 0)
	require.NoError(t, err)
	assert.Contains(t, []int{1, 3}, s.TrackID)
	assert.NotEmpty(t, s.Task)
	assert.NotEmpty(t, s.Motivation)

	s, err = f.tracker.Suggestion(ctx, sess, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TrackID)
}

func TestSessionExpiredForTracker(t *testing.T) {
	f := newFixture(t, time.Now())

	_, err := f.tracker.TodayTasks(context.Background(), domain.NewSession())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// End-to-end: register, onboard, and resume the session over fresh
// usecase instances sharing the same store, simulating a reload.
func TestOnboardingDurableAcrossReload(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	ctx := context.Background()

	_, token, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)
	sess := sessionFor(t, f, token)

	_, err = f.tracker.CompleteOnboarding(ctx, sess, []int{1, 3}, "Ship MVP")
	require.NoError(t, err)

	// "Reload": new repository and usecases over the same store.
	log := zap.NewNop()
	users := repository.NewUserRepository(f.store, security.NewPlainComparer(), log)
	auth := NewAuthUseCase(users, f.tokens, log)

	cur := auth.Current(ctx, sess)
	require.NotNil(t, cur)
	assert.True(t, cur.OnboardingComplete)
	assert.Equal(t, []int{1, 3}, cur.SelectedTracks)
	assert.Equal(t, "Ship MVP", cur.UserGoal)
}

func TestLoginAfterRegisterReturnsSameIdentity(t *testing.T) {
	f := newFixture(t, time.Now())
	ctx := context.Background()

	created, _, err := f.auth.Register(ctx, "Ada", "ada@x.com", "secret1")
	require.NoError(t, err)

	logged, token, err := f.auth.Login(ctx, "ada@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)

	cur := f.auth.Current(ctx, sessionFor(t, f, token))
	require.NotNil(t, cur)
	assert.Equal(t, created.ID, cur.ID)
}
