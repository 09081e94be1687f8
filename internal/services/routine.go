package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/models"
)

//go:generate mockgen -source=routine.go -destination=mock_routine.go -package=services

// ErrUnknownUser is returned when an operation names a user id that does not exist.
var ErrUnknownUser = errors.New("user does not exist")

// UserLocker reads a user row and holds a write lock on it until the surrounding
// transaction ends.
type UserLocker interface {
	LockByID(ctx context.Context, id int64) (*models.User, error)
}

// ItemPresenceReader checks whether a user owns any item.
type ItemPresenceReader interface {
	HasAny(ctx context.Context, userID int64) (bool, error)
}

// ItemBulkWriter inserts many items at once.
type ItemBulkWriter interface {
	CreateMany(ctx context.Context, items []models.ExerciseItem) (int, error)
}

// RoutineService seeds the default exercise routine.
type RoutineService struct {
	users  UserReader
	locker UserLocker
	reader ItemPresenceReader
	writer ItemBulkWriter
	cache  ItemCache
	events EventPublisher
}

// NewRoutineService creates a new RoutineService. cache and events may be nil.
func NewRoutineService(
	users UserReader,
	locker UserLocker,
	reader ItemPresenceReader,
	writer ItemBulkWriter,
	cache ItemCache,
	events EventPublisher,
) *RoutineService {
	return &RoutineService{
		users:  users,
		locker: locker,
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// SeedDefaultRoutine inserts the default catalog for userID and returns how many
// items were inserted. It does not check for an existing routine: calling it twice
// seeds twice.
func (svc *RoutineService) SeedDefaultRoutine(ctx context.Context, userID int64) (int, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return 0, err
	}
	if user == nil {
		logger.Log.Warnw("cannot seed routine for unknown user", "user_id", userID)
		return 0, ErrUnknownUser
	}

	n, err := svc.writer.CreateMany(ctx, models.RoutineFor(userID))
	if err != nil {
		logger.Log.Errorw("failed to insert routine", "user_id", userID, "err", err)
		return 0, err
	}

	invalidate(ctx, svc.cache, userID)
	publish(ctx, svc.events, models.Event{Type: models.EventRoutineSeeded, UserID: userID, Count: n})
	logger.Log.Infow("workout routine initialized", "user_id", userID, "count", n)

	return n, nil
}

// InitRoutine seeds the default routine unless userID already owns items.
// It reports whether seeding happened and how many items were inserted.
// The user row is locked first so concurrent calls for the same user serialize
// on it instead of both seeing an empty routine.
func (svc *RoutineService) InitRoutine(ctx context.Context, userID int64) (bool, int, error) {
	user, err := svc.locker.LockByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to lock user", "user_id", userID, "err", err)
		return false, 0, err
	}
	if user == nil {
		logger.Log.Warnw("cannot init routine for unknown user", "user_id", userID)
		return false, 0, ErrUnknownUser
	}

	exists, err := svc.reader.HasAny(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check existing routine", "user_id", userID, "err", err)
		return false, 0, err
	}
	if exists {
		return false, 0, nil
	}

	n, err := svc.SeedDefaultRoutine(ctx, userID)
	if err != nil {
		return false, 0, err
	}
	return true, n, nil
}
