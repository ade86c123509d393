package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-checkin/internal/jwt"
	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware rejects requests without a valid access token and stores the
// verified claims in the request context for jwt.ClaimsFromContext.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Given token not valid")
				return
			}
			if claims.TokenType != jwt.TokenTypeAccess {
				logger.Log.Errorw("authorization failed", "err", jwt.ErrWrongTokenType)
				writeError(w, http.StatusUnauthorized, "Given token not valid")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}
