package domain

import (
	"time"
)

// Track identifiers. Every user record carries progress slots for all
// three tracks regardless of which ones were selected at onboarding.
const (
	TrackFreelance = 1 // immediate income via local client work
	TrackRemoteJob = 2 // remote employment
	TrackSaaS      = 3 // wealth-building asset (SaaS MVP)
)

type User struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Password           string            `json:"password"`
	JoinDate           time.Time         `json:"joinDate"`
	OnboardingComplete bool              `json:"onboardingComplete"`
	SubscriptionStatus string            `json:"subscriptionStatus"`
	SelectedTracks     []int             `json:"selectedTracks"`
	UserGoal           string            `json:"userGoal"`
	CurrentWeek        int               `json:"currentWeek"`
	Projects           []Project         `json:"projects"`
	Progress           Progress          `json:"progress"`
	DailyTasks         map[string][]Task `json:"dailyTasks"`
}

// Project is a user-attached portfolio item. Records start with an
// empty list; projects are added from the dashboard.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Progress keeps one metrics slot per track. All three slots exist on
// every record so the dashboard never has to nil-check a track.
type Progress struct {
	Track1 FreelanceMetrics `json:"track1"`
	Track2 RemoteJobMetrics `json:"track2"`
	Track3 SaaSMetrics      `json:"track3"`
}

type FreelanceMetrics struct {
	HoursLogged    float64 `json:"hoursLogged"`
	RevenueEarned  float64 `json:"revenueEarned"`
	TasksCompleted int     `json:"tasksCompleted"`
}

type RemoteJobMetrics struct {
	HoursLogged           float64 `json:"hoursLogged"`
	ApplicationsSubmitted int     `json:"applicationsSubmitted"`
	InterviewsScheduled   int     `json:"interviewsScheduled"`
}

type SaaSMetrics struct {
	HoursLogged   float64 `json:"hoursLogged"`
	MVPProgress   int     `json:"mvpProgress"`
	UsersAcquired int     `json:"usersAcquired"`
}

// Redacted returns a copy safe to hand to transports: the stored
// credential is blanked, everything else is shared.
func (u *User) Redacted() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Password = ""
	return &clone
}

// UserUpdate is a partial update applied as a shallow merge: nil fields
// leave the stored value untouched, non-nil fields overwrite the whole
// top-level key. Two rapid updates to different fields of the same user
// must both go through this merge so neither clobbers the other.
type UserUpdate struct {
	Name               *string
	Password           *string
	OnboardingComplete *bool
	SubscriptionStatus *string
	SelectedTracks     []int
	UserGoal           *string
	CurrentWeek        *int
	Projects           []Project
	Progress           *Progress
	DailyTasks         map[string][]Task
}

func (u *User) Apply(upd UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.OnboardingComplete != nil {
		u.OnboardingComplete = *upd.OnboardingComplete
	}
	if upd.SubscriptionStatus != nil {
		u.SubscriptionStatus = *upd.SubscriptionStatus
	}
	if upd.SelectedTracks != nil {
		u.SelectedTracks = upd.SelectedTracks
	}
	if upd.UserGoal != nil {
		u.UserGoal = *upd.UserGoal
	}
	if upd.CurrentWeek != nil {
		u.CurrentWeek = *upd.CurrentWeek
	}
	if upd.Projects != nil {
		u.Projects = upd.Projects
	}
	if upd.Progress != nil {
		u.Progress = *upd.Progress
	}
	if upd.DailyTasks != nil {
		u.DailyTasks = upd.DailyTasks
	}
}
