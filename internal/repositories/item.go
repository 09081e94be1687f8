package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/workout-tracker/internal/database"
	"github.com/sbilibin2017/workout-tracker/internal/models"
)

const itemColumns = `id, user_id, part, content, is_completed`

// ItemReadRepository handles exercise item read operations
type ItemReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewItemReadRepository(db *sqlx.DB, txGetter TxGetter) *ItemReadRepository {
	return &ItemReadRepository{db: db, txGetter: txGetter}
}

// ListByOwner returns every item owned by userID, ordered by id.
func (r *ItemReadRepository) ListByOwner(ctx context.Context, userID int64) ([]models.ExerciseItem, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM todos
		WHERE user_id = ?
		ORDER BY id
	`

	ex := executor(ctx, r.db, r.txGetter)
	items := []models.ExerciseItem{}
	err := sqlx.SelectContext(ctx, ex, &items, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// HasAny reports whether userID owns at least one item.
func (r *ItemReadRepository) HasAny(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM todos WHERE user_id = ?)`

	ex := executor(ctx, r.db, r.txGetter)
	var exists bool
	err := sqlx.GetContext(ctx, ex, &exists, ex.Rebind(query), userID)

	logQuery(query, []any{userID}, exists, err)

	return exists, err
}

// ItemWriteRepository handles exercise item write operations
type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewItemWriteRepository(db *sqlx.DB, txGetter TxGetter) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

const insertItemQuery = `
	INSERT INTO todos (user_id, part, content, is_completed)
	VALUES (?, ?, ?, ?)
	RETURNING ` + itemColumns

// Create inserts one item and returns the stored row.
// An owner that does not exist yields ErrUnknownOwner.
func (r *ItemWriteRepository) Create(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error) {
	return insertItem(ctx, executor(ctx, r.db, r.txGetter), item)
}

// CreateMany inserts all items in one transaction and returns how many were stored.
// The request transaction is reused when there is one.
func (r *ItemWriteRepository) CreateMany(ctx context.Context, items []models.ExerciseItem) (int, error) {
	insertAll := func(ex sqlx.ExtContext) (int, error) {
		for i, item := range items {
			if _, err := insertItem(ctx, ex, item); err != nil {
				return i, err
			}
		}
		return len(items), nil
	}

	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return insertAll(tx)
		}
	}

	var inserted int
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		n, err := insertAll(tx)
		inserted = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func insertItem(ctx context.Context, ex sqlx.ExtContext, item models.ExerciseItem) (*models.ExerciseItem, error) {
	args := []any{item.OwnerID, item.BodyPart, item.Description, item.IsCompleted}

	var stored models.ExerciseItem
	err := sqlx.GetContext(ctx, ex, &stored, ex.Rebind(insertItemQuery), args...)

	logQuery(insertItemQuery, args, stored.ID, err)

	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, ErrUnknownOwner
		}
		return nil, err
	}
	return &stored, nil
}

// Update replaces part, content and is_completed of the item with item.ID.
// It returns nil when no such item exists.
func (r *ItemWriteRepository) Update(ctx context.Context, item models.ExerciseItem) (*models.ExerciseItem, error) {
	const query = `
		UPDATE todos
		SET part = ?, content = ?, is_completed = ?
		WHERE id = ?
		RETURNING ` + itemColumns
	return r.getOne(ctx, query, item.BodyPart, item.Description, item.IsCompleted, item.ID)
}

// Toggle flips is_completed of the item with the given id.
// It returns nil when no such item exists.
func (r *ItemWriteRepository) Toggle(ctx context.Context, id int64) (*models.ExerciseItem, error) {
	const query = `
		UPDATE todos
		SET is_completed = NOT is_completed
		WHERE id = ?
		RETURNING ` + itemColumns
	return r.getOne(ctx, query, id)
}

// Delete removes the item with the given id and returns it as it was stored.
// It returns nil when no such item exists.
func (r *ItemWriteRepository) Delete(ctx context.Context, id int64) (*models.ExerciseItem, error) {
	const query = `
		DELETE FROM todos
		WHERE id = ?
		RETURNING ` + itemColumns
	return r.getOne(ctx, query, id)
}

// ReassignOwner moves every item owned by fromUserID to toUserID in one statement.
func (r *ItemWriteRepository) ReassignOwner(ctx context.Context, fromUserID, toUserID int64) (int64, error) {
	const query = `
		UPDATE todos
		SET user_id = ?
		WHERE user_id = ?
	`
	args := []any{toUserID, fromUserID}

	ex := executor(ctx, r.db, r.txGetter)
	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}

func (r *ItemWriteRepository) getOne(ctx context.Context, query string, args ...any) (*models.ExerciseItem, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var item models.ExerciseItem
	err := sqlx.GetContext(ctx, ex, &item, ex.Rebind(query), args...)

	logQuery(query, args, item.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
