package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-event-checkin/internal/clock"
	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserService manages user accounts.
type UserService struct {
	reader UserReader
	writer UserWriter
	clock  clock.Clock
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter, clk clock.Clock) *UserService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &UserService{reader: reader, writer: writer, clock: clk}
}

// Create registers a new user with a bcrypt hashed password.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.UserDB, error) {
	return createUser(ctx, s.reader, s.writer, s.clock, in)
}

func createUser(ctx context.Context, reader UserReader, writer UserWriter, clk clock.Clock, in models.UserInput) (*models.UserDB, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := checkAll(
		check("username", in.Username, "required,max=150"),
		check("password", in.Password, "required,min=8,max=72"),
		check("email", in.Email, "omitempty,email"),
		check("first_name", in.FirstName, "max=150"),
		check("last_name", in.LastName, "max=150"),
	); err != nil {
		return nil, err
	}

	existing, err := reader.GetByUsernameOrEmail(ctx, &in.Username, nil)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", in.Username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		DateJoined:   clk.Now(),
	}
	if err := writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Get returns a single user.
func (s *UserService) Get(ctx context.Context, id string) (*models.UserDB, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user together with the events they host and those events' guests.
// Users may delete themselves; superusers may delete anyone.
func (s *UserService) Delete(ctx context.Context, actorID uuid.UUID, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrUserNotFound
	}

	if actorID != userID {
		actor, err := s.reader.GetByID(ctx, actorID)
		if err != nil {
			logger.Log.Errorw("failed to get acting user", "user_id", actorID, "err", err)
			return err
		}
		if actor == nil || !actor.IsSuperuser {
			return ErrForbidden
		}
	}

	deleted, err := s.writer.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
