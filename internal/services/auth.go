package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/sbilibin2017/workout-tracker/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Exists(ctx context.Context) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// RoutineSeeder inserts the default routine for a user.
type RoutineSeeder interface {
	SeedDefaultRoutine(ctx context.Context, userID int64) (int, error)
}

// ItemOwnerReassigner moves items from one owner to another.
type ItemOwnerReassigner interface {
	ReassignOwner(ctx context.Context, fromUserID, toUserID int64) (int64, error)
}

// EventPublisher publishes workout activity events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

// AuthService handles the login-or-register workflow.
type AuthService struct {
	reader       UserReader
	writer       UserWriter
	hasher       PasswordHasher
	seeder       RoutineSeeder
	reassigner   ItemOwnerReassigner
	cache        ItemCache
	events       EventPublisher
	legacyUserID int64
}

// NewAuthService creates a new AuthService instance.
// Items of legacyUserID are handed to every newly registered user; zero disables that.
// cache and events may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	seeder RoutineSeeder,
	reassigner ItemOwnerReassigner,
	cache ItemCache,
	events EventPublisher,
	legacyUserID int64,
) *AuthService {
	return &AuthService{
		reader:       reader,
		writer:       writer,
		hasher:       hasher,
		seeder:       seeder,
		reassigner:   reassigner,
		cache:        cache,
		events:       events,
		legacyUserID: legacyUserID,
	}
}

// LoginOrRegister authenticates username when it exists and registers it otherwise.
// A new account gets the default routine and the legacy account's items; failures of
// those two steps are logged and do not undo the registration.
func (svc *AuthService) LoginOrRegister(ctx context.Context, username, password string) (*models.LoginResult, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}

	if user != nil {
		if !svc.hasher.Verify(password, user.PasswordHash) {
			logger.Log.Warnw("invalid credentials", "username", username)
			return nil, ErrInvalidCredentials
		}
		return &models.LoginResult{
			Status:   models.LoginStatusAuthenticated,
			UserID:   user.ID,
			Username: user.Username,
		}, nil
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	userID, err := svc.writer.Create(ctx, username, hashedPassword)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			logger.Log.Warnw("username taken by a concurrent registration", "username", username)
			return nil, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, err
	}

	if _, err := svc.seeder.SeedDefaultRoutine(ctx, userID); err != nil {
		logger.Log.Errorw("failed to seed default routine", "user_id", userID, "err", err)
	}

	svc.adoptLegacyItems(ctx, userID)

	publish(ctx, svc.events, models.Event{Type: models.EventUserRegistered, UserID: userID})
	logger.Log.Infow("user registered", "user_id", userID, "username", username)

	return &models.LoginResult{
		Status:   models.LoginStatusRegistered,
		UserID:   userID,
		Username: username,
	}, nil
}

// adoptLegacyItems hands the items of the single-user era account to userID.
func (svc *AuthService) adoptLegacyItems(ctx context.Context, userID int64) {
	if svc.legacyUserID <= 0 || svc.legacyUserID == userID {
		return
	}

	moved, err := svc.reassigner.ReassignOwner(ctx, svc.legacyUserID, userID)
	if err != nil {
		logger.Log.Errorw("failed to reassign legacy items", "from_user_id", svc.legacyUserID, "user_id", userID, "err", err)
		return
	}
	if moved == 0 {
		return
	}

	logger.Log.Infow("legacy items reassigned", "from_user_id", svc.legacyUserID, "user_id", userID, "count", moved)
	invalidate(ctx, svc.cache, svc.legacyUserID)
	invalidate(ctx, svc.cache, userID)
}

// publish sends event once the surrounding transaction, if any, has committed.
func publish(ctx context.Context, events EventPublisher, event models.Event) {
	if events == nil {
		return
	}
	database.OnCommit(ctx, func() {
		events.Publish(ctx, event)
	})
}

// invalidate drops the cached item list of userID once the surrounding transaction,
// if any, has committed. Dropping it earlier lets a concurrent read cache the old rows.
func invalidate(ctx context.Context, cache ItemCache, userID int64) {
	if cache == nil {
		return
	}
	database.OnCommit(ctx, func() {
		if err := cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate item cache", "user_id", userID, "err", err)
		}
	})
}
