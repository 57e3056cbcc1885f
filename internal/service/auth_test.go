package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/repo"
)

func initTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderLine{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return repo.New(db)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := &AuthService{Repo: initTestRepo(t)}
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password", models.RoleCustomer))

	stored, err := svc.Repo.FindUserByUsername(ctx, "test_user")
	require.NoError(t, err)
	assert.NotEqual(t, "password", stored.PasswordHash)

	user, err := svc.Login(ctx, "test_user", "password")
	require.NoError(t, err)
	assert.Equal(t, "test_user", user.Username)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotZero(t, user.ID)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := &AuthService{Repo: initTestRepo(t)}
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password", models.RoleCustomer))

	err := svc.Register(ctx, "test_user", "other_password", models.RoleCustomer)
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.ErrUserAlreadyExists)

	// first registration is unaffected
	user, err := svc.Login(ctx, "test_user", "password")
	require.NoError(t, err)
	assert.Equal(t, "test_user", user.Username)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := &AuthService{Repo: initTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret"},
		{name: "empty password", username: "user", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.username, tt.password, models.RoleCustomer)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := &AuthService{Repo: initTestRepo(t)}
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "test_user", "password", models.RoleCustomer))

	user, err := svc.Login(ctx, "test_user", "wrong_password")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := &AuthService{Repo: initTestRepo(t)}

	user, err := svc.Login(context.Background(), "nobody", "password")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
