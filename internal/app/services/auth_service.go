package services

import (
	"context"

	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	pkgauth "github.com/izeinnn/university-management-system/internal/pkg/auth"
	"github.com/izeinnn/university-management-system/internal/pkg/logger"
)

// AuthUserStore is the user persistence surface the auth service needs.
type AuthUserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService handles registration and login
type AuthService struct {
	users AuthUserStore
	jwt   *pkgauth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users AuthUserStore, jwt *pkgauth.JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role must be one of admin, student, instructor")
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		IsActive:  true,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	accessToken, expiresIn, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
