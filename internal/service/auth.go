package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/warungdev/tokocli/internal/hash"
	"github.com/warungdev/tokocli/internal/logging"
	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/repo"
)

type AuthService struct {
	Repo *repo.GormRepo
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register", "username", username)

	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			l.Warn("register_failed", "reason", "username taken")
			return err
		}
		l.Error("register_failed", "error", err)
		return err
	}

	l.Info("register_success", "user_id", user.ID, "role", role)
	return nil
}

// Login returns the stored account including its role. Checking that the role
// matches the entry point (admin vs customer) is the caller's job.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	user, err := s.Repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login_failed", "reason", "unknown username")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return nil, ErrInvalidCredentials
	}

	l.Info("login_success", "user_id", user.ID, "role", user.Role)
	return user, nil
}
