package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-event-checkin/internal/clock"
	"github.com/sbilibin2017/gw-event-checkin/internal/jwt"
	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// TokenManager issues and parses JWT tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TokenDenylist remembers revoked refresh tokens.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService handles registration, login and token lifecycle.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      TokenManager
	denylist TokenDenylist
	clock    clock.Clock
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenManager, denylist TokenDenylist, clk clock.Clock) *AuthService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		denylist: denylist,
		clock:    clk,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, in models.UserInput) (*models.UserDB, error) {
	return createUser(ctx, svc.reader, svc.writer, svc.clock, in)
}

// Login authenticates a user and returns an access and refresh token pair.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	access, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	refresh, err := svc.jwt.GenerateRefresh(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh JWT", "err", err)
		return nil, err
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid, unrevoked refresh token for a new access token.
func (svc *AuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	claims, err := svc.refreshClaims(ctx, refresh)
	if err != nil {
		return "", err
	}

	revoked, err := svc.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to check token denylist", "err", err)
		return "", err
	}
	if revoked {
		return "", ErrInvalidRefreshToken
	}

	access, err := svc.jwt.Generate(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return access, nil
}

// Logout revokes a refresh token until it expires.
func (svc *AuthService) Logout(ctx context.Context, refresh string) error {
	claims, err := svc.refreshClaims(ctx, refresh)
	if err != nil {
		return err
	}

	if err := svc.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		logger.Log.Errorw("failed to revoke token", "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) refreshClaims(ctx context.Context, refresh string) (*jwt.Claims, error) {
	claims, err := svc.jwt.GetClaims(ctx, refresh)
	if err != nil {
		logger.Log.Errorw("invalid refresh token", "err", err)
		return nil, ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh || claims.TokenID == "" {
		return nil, ErrInvalidRefreshToken
	}
	return claims, nil
}
