package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/repositories"
)

// SeedLegacyAccount creates the seed account when the users table is empty and
// returns its id. It returns 0 when username is empty or users already exist.
// The account gets no routine; on a fresh database it receives the first id.
func SeedLegacyAccount(
	ctx context.Context,
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	username, password string,
) (int64, error) {
	if username == "" {
		return 0, nil
	}

	exists, err := reader.Exists(ctx)
	if err != nil {
		return 0, err
	}
	if exists {
		logger.Log.Debugw("users exist, skipping seed account")
		return 0, nil
	}

	hashedPassword, err := hasher.Hash(password)
	if err != nil {
		return 0, err
	}

	id, err := writer.Create(ctx, username, hashedPassword)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return 0, nil
		}
		return 0, err
	}

	logger.Log.Infow("seed account created", "user_id", id, "username", username)
	return id, nil
}
