package tickets

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-event-checkin/internal/clock"
)

const checkInAudience = "check-in"

var ErrInvalidTicket = errors.New("invalid ticket")

type ticketClaims struct {
	EventID string `json:"evt"`
	jwt.RegisteredClaims
}

// Signer issues HMAC-SHA256 check-in codes over guest id, event id and issue time.
type Signer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewSigner creates a signer. A zero ttl issues codes without expiry.
func NewSigner(secret string, ttl time.Duration, clk clock.Clock) *Signer {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Signer{secret: []byte(secret), ttl: ttl, clock: clk}
}

// Sign returns a compact check-in code for the guest/event pair.
func (s *Signer) Sign(guestID uuid.UUID, eventID int64) (string, error) {
	now := s.clock.Now()
	claims := ticketClaims{
		EventID: strconv.FormatInt(eventID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  guestID.String(),
			Audience: jwt.ClaimStrings{checkInAudience},
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature, audience and expiry of a code and returns
// the guest and event it was issued for.
func (s *Signer) Verify(code string) (uuid.UUID, int64, error) {
	var claims ticketClaims
	_, err := jwt.ParseWithClaims(code, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(checkInAudience),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return uuid.Nil, 0, ErrInvalidTicket
	}

	guestID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, 0, ErrInvalidTicket
	}
	eventID, err := strconv.ParseInt(claims.EventID, 10, 64)
	if err != nil {
		return uuid.Nil, 0, ErrInvalidTicket
	}
	return guestID, eventID, nil
}
