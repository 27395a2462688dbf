package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"blaizn/internal/coach"
	"blaizn/internal/domain"
	"blaizn/internal/infrastructure/repository"
)

// TrackerUseCase drives onboarding, daily tasks, suggestions, and the
// dashboard snapshot for the session's current user.
type TrackerUseCase struct {
	users *repository.UserRepository
	coach *coach.Engine
	log   *zap.Logger
}

func NewTrackerUseCase(users *repository.UserRepository, engine *coach.Engine, log *zap.Logger) *TrackerUseCase {
	return &TrackerUseCase{users: users, coach: engine, log: log}
}

// Dashboard is the progress snapshot rendered after login.
type Dashboard struct {
	Streak          int             `json:"streak"`
	CompletedToday  int             `json:"completedToday"`
	TotalToday      int             `json:"totalToday"`
	ProgressPercent float64         `json:"progressPercent"`
	CurrentWeek     int             `json:"currentWeek"`
	Progress        domain.Progress `json:"progress"`
}

// CompleteOnboarding records the selected tracks and goal and flips the
// onboarding gate. Requires at least one known track and a non-blank
// goal.
func (uc *TrackerUseCase) CompleteOnboarding(ctx context.Context, sess domain.Session, tracks []int, goal string) (*domain.User, error) {
	cur := uc.users.CurrentUser(ctx, sess)
	if cur == nil {
		return nil, domain.ErrUserNotFound
	}

	fields := map[string]string{}
	if len(tracks) == 0 {
		fields["tracks"] = "Select at least one track"
	}
	for _, id := range tracks {
		if id < domain.TrackFreelance || id > domain.TrackSaaS {
			fields["tracks"] = "Unknown track selected"
		}
	}
	if strings.TrimSpace(goal) == "" {
		fields["goal"] = "This field is required"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	done := true
	week := 1
	user, err := uc.users.UpdateUser(ctx, sess, cur.Email, domain.UserUpdate{
		SelectedTracks:     tracks,
		UserGoal:           &goal,
		OnboardingComplete: &done,
		CurrentWeek:        &week,
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("onboarding complete", zap.String("email", user.Email), zap.Ints("tracks", tracks))
	return user, nil
}

// TodayTasks returns the stored list for today, or the catalog default
// for the user's tracks when today has no entry yet. The default is not
// persisted until the first toggle.
func (uc *TrackerUseCase) TodayTasks(ctx context.Context, sess domain.Session) ([]domain.Task, error) {
	cur := uc.users.CurrentUser(ctx, sess)
	if cur == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.todayTasks(cur), nil
}

func (uc *TrackerUseCase) todayTasks(user *domain.User) []domain.Task {
	if tasks, ok := user.DailyTasks[uc.coach.TodayKey()]; ok {
		return tasks
	}
	return coach.DefaultDailyTasks(user.SelectedTracks)
}

// ToggleTask flips one task's completed flag and rewrites today's task
// array wholesale inside the record's dailyTasks map.
func (uc *TrackerUseCase) ToggleTask(ctx context.Context, sess domain.Session, taskID int) ([]domain.Task, error) {
	cur := uc.users.CurrentUser(ctx, sess)
	if cur == nil {
		return nil, domain.ErrUserNotFound
	}

	tasks := uc.todayTasks(cur)
	updated := make([]domain.Task, len(tasks))
	found := false
	for i, task := range tasks {
		if task.ID == taskID {
			task.Completed = !task.Completed
			found = true
		}
		updated[i] = task
	}
	if !found {
		return nil, domain.ErrTaskNotFound
	}

	dailyTasks := make(map[string][]domain.Task, len(cur.DailyTasks)+1)
	for date, list := range cur.DailyTasks {
		dailyTasks[date] = list
	}
	dailyTasks[uc.coach.TodayKey()] = updated

	if _, err := uc.users.UpdateUser(ctx, sess, cur.Email, domain.UserUpdate{DailyTasks: dailyTasks}); err != nil {
		return nil, err
	}
	return updated, nil
}

// Suggestion draws a coaching suggestion. trackID zero means pick a
// random selected track.
func (uc *TrackerUseCase) Suggestion(ctx context.Context, sess domain.Session, trackID int) (domain.Suggestion, error) {
	cur := uc.users.CurrentUser(ctx, sess)
	if cur == nil {
		return domain.Suggestion{}, domain.ErrUserNotFound
	}
	return uc.coach.Suggest(cur, trackID)
}

// Snapshot assembles the dashboard for the session's current user.
func (uc *TrackerUseCase) Snapshot(ctx context.Context, sess domain.Session) (*Dashboard, error) {
	cur := uc.users.CurrentUser(ctx, sess)
	if cur == nil {
		return nil, domain.ErrUserNotFound
	}

	tasks := uc.todayTasks(cur)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	percent := 0.0
	if len(tasks) > 0 {
		percent = float64(completed) / float64(len(tasks)) * 100
	}

	return &Dashboard{
		Streak:          uc.coach.Streak(cur.DailyTasks),
		CompletedToday:  completed,
		TotalToday:      len(tasks),
		ProgressPercent: percent,
		CurrentWeek:     cur.CurrentWeek,
		Progress:        cur.Progress,
	}, nil
}
