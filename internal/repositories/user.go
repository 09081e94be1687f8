package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/sbilibin2017/workout-tracker/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash
		FROM users
		WHERE username = ?
	`
	return r.getOne(ctx, query, username)
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, password_hash
		FROM users
		WHERE id = ?
	`
	return r.getOne(ctx, query, id)
}

// LockByID is GetByID that also takes a row lock held until the surrounding
// transaction ends. SQLite has no row locks; its single writer serializes instead.
func (r *UserReadRepository) LockByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, password_hash
		FROM users
		WHERE id = ?
	`
	if executor(ctx, r.db, r.txGetter).DriverName() == database.DriverPostgres {
		query += "FOR UPDATE"
	}
	return r.getOne(ctx, query, id)
}

// Exists reports whether the users table holds at least one row.
func (r *UserReadRepository) Exists(ctx context.Context) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users)`

	ex := executor(ctx, r.db, r.txGetter)
	var exists bool
	err := sqlx.GetContext(ctx, ex, &exists, ex.Rebind(query))

	logQuery(query, nil, exists, err)

	return exists, err
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var user models.User
	err := sqlx.GetContext(ctx, ex, &user, ex.Rebind(query), arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user and returns its generated id.
// A taken username yields ErrDuplicateUsername.
func (r *UserWriteRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
		RETURNING id
	`

	ex := executor(ctx, r.db, r.txGetter)
	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), username, passwordHash)

	// the hash is not logged
	logQuery(query, []any{username}, id, err)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return id, nil
}
