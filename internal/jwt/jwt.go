package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims is the verified content of a token.
type Claims struct {
	UserID    uuid.UUID
	TokenType string
	TokenID   string
	ExpiresAt time.Time
}

type tokenClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 access and refresh tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithExpiration sets the access token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = exp }
}

// New creates a JWT with five minute access and one day refresh lifetimes unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{
		Exp:        5 * time.Minute,
		RefreshExp: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates an access token for userID.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	return j.sign(userID, TokenTypeAccess, j.Exp)
}

// GenerateRefresh creates a refresh token for userID.
func (j *JWT) GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, error) {
	return j.sign(userID, TokenTypeRefresh, j.RefreshExp)
}

func (j *JWT) sign(userID uuid.UUID, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    userID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies signature and expiry and returns the claims of any token type.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var tc tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &tc, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(tc.UserID)
	if err != nil {
		return nil, errors.New("invalid user_id format")
	}

	claims := &Claims{
		UserID:    userID,
		TokenType: tc.TokenType,
		TokenID:   tc.ID,
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}

// Validate accepts only valid, unexpired access tokens.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.TokenType != TokenTypeAccess {
		return ErrWrongTokenType
	}
	return nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

type claimsKey struct{}

// WithClaims stores verified claims in the request context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}
