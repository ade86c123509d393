package services

import "errors"

var (
	// ErrInvalidInput wraps every request validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEventNotFound is returned when the event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrGuestNotFound is returned when the guest does not exist.
	ErrGuestNotFound = errors.New("guest not found")
	// ErrUserNotFound is returned when the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCode is returned by check-in when the scanned guest/event/email
	// triple or signed code does not match any guest.
	ErrInvalidCode = errors.New("invalid qr code")

	// ErrForbidden is returned when the caller may not modify the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrTicketDelivery is returned when the ticket email could not be sent.
	// The guest record has already been stored at that point.
	ErrTicketDelivery = errors.New("ticket delivery failed")

	// ErrUserAlreadyExists is returned on signup with a taken username.
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrInvalidCredentials is returned by login for an unknown user or wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidRefreshToken is returned for expired, revoked or non-refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
