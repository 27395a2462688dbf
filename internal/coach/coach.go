// Package coach derives daily task lists from selected tracks, produces
// coaching suggestions, and computes completion streaks from task
// history.
package coach

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"blaizn/internal/domain"
)

// DateLayout is the calendar-day key format used in dailyTasks.
const DateLayout = "2006-01-02"

var (
	ErrNoTracks     = errors.New("no tracks selected")
	ErrUnknownTrack = errors.New("unknown track")
)

// Engine holds the injected randomness and clock. Tests supply a seeded
// rand and a fixed now.
type Engine struct {
	rng *rand.Rand
	now func() time.Time
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng, now: time.Now}
}

// WithNow overrides the clock. Returns the engine for chaining.
func (e *Engine) WithNow(now func() time.Time) *Engine {
	e.now = now
	return e
}

// TodayKey returns the dailyTasks key for the current calendar day.
func (e *Engine) TodayKey() string {
	return e.now().Format(DateLayout)
}

// DefaultDailyTasks filters the catalog to tasks tagged "all" or tagged
// with a selected track, in catalog order. Pure; returned tasks are
// fresh copies.
func DefaultDailyTasks(selectedTracks []int) []domain.Task {
	tasks := make([]domain.Task, 0, len(taskCatalog))
	for _, task := range taskCatalog {
		if task.Track.Matches(selectedTracks) {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// Suggest picks one suggestion for trackID, or for a uniformly random
// selected track when trackID is zero, plus one motivation. Output is
// reproducible only in distribution unless the engine's rand is seeded.
func (e *Engine) Suggest(user *domain.User, trackID int) (domain.Suggestion, error) {
	if trackID == 0 {
		if len(user.SelectedTracks) == 0 {
			return domain.Suggestion{}, ErrNoTracks
		}
		trackID = user.SelectedTracks[e.rng.Intn(len(user.SelectedTracks))]
	}

	pool, ok := trackSuggestions[trackID]
	if !ok {
		return domain.Suggestion{}, ErrUnknownTrack
	}

	return domain.Suggestion{
		Task:       pool[e.rng.Intn(len(pool))],
		Motivation: e.motivation(),
		TrackID:    trackID,
	}, nil
}

func (e *Engine) motivation() string {
	i := e.rng.Intn(len(staticMotivations) + 1)
	if i == len(staticMotivations) {
		return fmt.Sprintf("You're %d%% ahead of where most people are at this stage. Keep pushing!", e.rng.Intn(30)+20)
	}
	return staticMotivations[i]
}

// Streak counts consecutive calendar days, walking backward from today,
// whose task list is at least half completed. Days are visited in
// descending date order; the walk continues only while each day's
// offset from today equals the running count, and a day with zero tasks
// passes the threshold vacuously.
func (e *Engine) Streak(dailyTasks map[string][]domain.Task) int {
	if len(dailyTasks) == 0 {
		return 0
	}

	dates := make([]string, 0, len(dailyTasks))
	for date := range dailyTasks {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	today := truncateDay(e.now())
	streak := 0
	for _, dateStr := range dates {
		day, err := time.ParseInLocation(DateLayout, dateStr, today.Location())
		if err != nil {
			break
		}
		daysDiff := int(today.Sub(truncateDay(day)).Hours() / 24)
		if daysDiff != streak {
			break
		}
		tasks := dailyTasks[dateStr]
		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}
		if float64(completed) < float64(len(tasks))/2 {
			break
		}
		streak++
	}
	return streak
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
