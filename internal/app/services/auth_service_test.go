package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	pkgauth "github.com/izeinnn/university-management-system/internal/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Minute,
		TokenIssuer:    "test",
	})
	return NewAuthService(users, jwtService), users
}

func TestRegisterHashesPassword(t *testing.T) {
	service, users := newAuthFixture()

	user, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      models.RoleStudent,
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, pkgauth.CheckPassword(user.Password, "secret123"))

	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	service, _ := newAuthFixture()

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      models.RoleType("dean"),
		Password:  "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newAuthFixture()
	req := &dto.RegisterRequest{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      models.RoleStudent,
		Password:  "secret123",
	}

	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	service, users := newAuthFixture()

	_, err := service.Register(context.Background(), &dto.RegisterRequest{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Role:      models.RoleStudent,
		Password:  "secret123",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown accounts look the same as bad passwords.
	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Disabled accounts cannot log in even with the right password.
	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	stored.IsActive = false

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email: "alice@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
