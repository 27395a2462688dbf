package usecase

import (
	"context"

	"go.uber.org/zap"

	"blaizn/internal/domain"
	"blaizn/internal/infrastructure/repository"
	"blaizn/internal/infrastructure/security"
	"blaizn/internal/validation"
)

// AuthUseCase drives registration, login, session resume, and logout.
type AuthUseCase struct {
	users  *repository.UserRepository
	tokens *security.TokenManager
	log    *zap.Logger
}

func NewAuthUseCase(users *repository.UserRepository, tokens *security.TokenManager, log *zap.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, log: log}
}

// Register validates the signup form, creates the user, and opens a
// fresh session for it. The returned token identifies the session.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	res := validation.ValidateForm(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, []string{"name", "email", "password"})
	if !res.IsValid {
		return nil, "", &domain.ValidationError{Fields: res.Errors}
	}

	sess := domain.NewSession()
	user, err := uc.users.CreateUser(ctx, sess, name, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Generate(sess.ID)
	if err != nil {
		return nil, "", err
	}

	uc.log.Info("user registered", zap.String("email", user.Email))
	return user, token, nil
}

// Login validates the form, checks credentials, and opens a session.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	res := validation.ValidateForm(map[string]string{
		"email":    email,
		"password": password,
	}, []string{"email", "password"})
	if !res.IsValid {
		return nil, "", &domain.ValidationError{Fields: res.Errors}
	}

	sess := domain.NewSession()
	user, err := uc.users.Login(ctx, sess, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Generate(sess.ID)
	if err != nil {
		return nil, "", err
	}

	uc.log.Info("user logged in", zap.String("email", user.Email))
	return user, token, nil
}

// Current resumes a session: the current user, or nil when the session
// is not logged in.
func (uc *AuthUseCase) Current(ctx context.Context, sess domain.Session) *domain.User {
	return uc.users.CurrentUser(ctx, sess)
}

func (uc *AuthUseCase) Logout(ctx context.Context, sess domain.Session) {
	uc.users.Logout(ctx, sess)
}
