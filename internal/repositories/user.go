package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// Error variables
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("e-mail already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// Unique constraint names from the users table migration.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// UserReadRepository provides read access to the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ext returns the request transaction when one is bound to the context,
// otherwise the connection pool.
func (r *UserReadRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, id)

	logger.Log.Infow("get user by id",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail returns the user with the given e-mail, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.ext(ctx), &user, query, email)

	logger.Log.Infow("get user by email",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns users ordered by id ascending, with offset/limit pagination.
func (r *UserReadRepository) List(ctx context.Context, offset, limit int) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, r.ext(ctx), &users, query, offset, limit)

	logger.Log.Infow("list users",
		"query", strings.Join(strings.Fields(query), " "),
		"offset", offset,
		"limit", limit,
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository provides write access to the users table.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) ext(ctx context.Context) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// Create inserts a new user and returns the row with its assigned id.
// The username is checked before the e-mail so that a request colliding on
// both reports the username conflict.
func (r *UserWriteRepository) Create(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	ext := r.ext(ctx)

	var exists bool
	if err := sqlx.GetContext(ctx, ext, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	if err := sqlx.GetContext(ctx, ext, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	const query = `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, username, email, password_hash, created_at, updated_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext, &user, query, username, email, passwordHash)

	logger.Log.Infow("create user",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"email", email,
		"error", err,
	)

	if err != nil {
		return nil, translateUniqueViolation(err)
	}

	return &user, nil
}

// Update mutates the user in place, re-checking uniqueness against other rows.
func (r *UserWriteRepository) Update(ctx context.Context, id int64, username, email, passwordHash string) (*models.UserDB, error) {
	ext := r.ext(ctx)

	var exists bool
	if err := sqlx.GetContext(ctx, ext, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND id <> $2)`, username, id); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	if err := sqlx.GetContext(ctx, ext, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`, email, id); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	const query = `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, username, email, password_hash, created_at, updated_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext, &user, query, username, email, passwordHash, id)

	logger.Log.Infow("update user",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"username", username,
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, translateUniqueViolation(err)
	}

	return &user, nil
}

// Delete removes the user with the given id.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.ext(ctx).ExecContext(ctx, query, id)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete user",
		"query", query,
		"id", id,
		"rows_affected", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// translateUniqueViolation maps a unique constraint violation raced in
// between the precheck and the insert back to the conflict error for the
// violated constraint.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return ErrUsernameExists
		case emailConstraint:
			return ErrEmailExists
		}
	}
	return err
}
