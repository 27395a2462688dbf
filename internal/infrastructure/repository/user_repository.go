package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blaizn/internal/domain"
	"blaizn/internal/infrastructure/security"
	"blaizn/internal/infrastructure/store"
)

// Store key layout. One slot per session for the current user, one list
// of registered emails, one record per email.
const (
	currentUserPrefix = "blaizn_current_user:"
	usersListKey      = "blaizn_users_list"
	userPrefix        = "blaizn_user_"
)

func userKey(email string) string {
	return userPrefix + email
}

func currentUserKey(sess domain.Session) string {
	return currentUserPrefix + sess.ID
}

// UserRepository owns user records, the email registry, and the
// per-session current-user slot. All operations are synchronous;
// last write wins.
type UserRepository struct {
	store    store.Store
	comparer security.PasswordComparer
	log      *zap.Logger
}

func NewUserRepository(st store.Store, comparer security.PasswordComparer, log *zap.Logger) *UserRepository {
	return &UserRepository{store: st, comparer: comparer, log: log}
}

// CreateUser registers a new user with the record defaults and logs the
// session in as that user. Email is folded to lowercase before any
// lookup or storage.
func (r *UserRepository) CreateUser(ctx context.Context, sess domain.Session, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if r.exists(ctx, email) {
		return nil, domain.ErrDuplicateUser
	}

	sealed, err := r.comparer.Seal(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:                 uuid.NewString(),
		Name:               name,
		Email:              email,
		Password:           sealed,
		JoinDate:           time.Now().UTC(),
		OnboardingComplete: false,
		SubscriptionStatus: "free",
		SelectedTracks:     []int{},
		CurrentWeek:        1,
		Projects:           []domain.Project{},
		DailyTasks:         map[string][]domain.Task{},
	}

	if !r.store.Set(ctx, userKey(email), user) {
		return nil, domain.ErrStorageFailure
	}

	emails := r.allEmails(ctx)
	emails = append(emails, email)
	if !r.store.Set(ctx, usersListKey, emails) {
		return nil, domain.ErrStorageFailure
	}

	// Registration logs you in: the new record becomes the session's
	// current user. The record itself is already durable, so a failed
	// slot write only costs the auto-login.
	if !r.store.Set(ctx, currentUserKey(sess), user) {
		r.log.Warn("current user slot not persisted", zap.String("email", email))
	}

	return user, nil
}

// Login checks the credential against the stored record and, on
// success, makes the user current for the session.
func (r *UserRepository) Login(ctx context.Context, sess domain.Session, email, password string) (*domain.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := r.comparer.Compare(user.Password, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !r.store.Set(ctx, currentUserKey(sess), user) {
		return nil, domain.ErrStorageFailure
	}
	return user, nil
}

// Logout clears the session's current-user slot. Idempotent.
func (r *UserRepository) Logout(ctx context.Context, sess domain.Session) {
	r.store.Remove(ctx, currentUserKey(sess))
}

// CurrentUser returns the session's current user, or nil when the
// session is not logged in. Used at startup to resume a session.
func (r *UserRepository) CurrentUser(ctx context.Context, sess domain.Session) *domain.User {
	var user domain.User
	if !r.store.Get(ctx, currentUserKey(sess), &user) {
		return nil
	}
	return &user
}

// GetByEmail loads a record by normalized email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if !r.store.Get(ctx, userKey(normalizeEmail(email)), &user) {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// UpdateUser merges upd into the stored record and re-persists it. The
// record write and the current-user slot refresh are one logical step:
// when the updated user is the session's current user, the slot is
// rewritten to the merged value before UpdateUser returns.
func (r *UserRepository) UpdateUser(ctx context.Context, sess domain.Session, email string, upd domain.UserUpdate) (*domain.User, error) {
	email = normalizeEmail(email)
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Apply(upd)
	if !r.store.Set(ctx, userKey(email), user) {
		return nil, domain.ErrStorageFailure
	}

	if cur := r.CurrentUser(ctx, sess); cur != nil && cur.Email == email {
		if !r.store.Set(ctx, currentUserKey(sess), user) {
			return nil, domain.ErrStorageFailure
		}
	}

	return user, nil
}

func (r *UserRepository) exists(ctx context.Context, email string) bool {
	for _, registered := range r.allEmails(ctx) {
		if registered == email {
			return true
		}
	}
	return false
}

func (r *UserRepository) allEmails(ctx context.Context) []string {
	var emails []string
	if !r.store.Get(ctx, usersListKey, &emails) {
		return []string{}
	}
	return emails
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
