package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of *pgxpool.Pool (and pgx.Tx) the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresUserRepository struct {
	db DBTX
}

func NewPostgresUserRepository(db DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, username string) (*model.User, error) {
	const stmt = `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id::text, username`

	var user model.User
	if err := r.db.QueryRow(ctx, stmt, username).Scan(&user.ID, &user.Username); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	const stmt = `
		SELECT id::text, username
		FROM users
		WHERE id = $1`

	var user model.User
	err = r.db.QueryRow(ctx, stmt, userID.String()).Scan(&user.ID, &user.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user %s: %w", id, err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	const stmt = `
		SELECT id::text, username
		FROM users
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.User, error) {
		var u model.User
		err := row.Scan(&u.ID, &u.Username)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

type PostgresExerciseRepository struct {
	db DBTX
}

func NewPostgresExerciseRepository(db DBTX) *PostgresExerciseRepository {
	return &PostgresExerciseRepository{db: db}
}

func (r *PostgresExerciseRepository) CreateExercise(ctx context.Context, params model.CreateExerciseParams) (*model.Exercise, error) {
	userID, err := uuid.Parse(params.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	const stmt = `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, user_id::text, description, duration, date`

	var e model.Exercise
	err = r.db.QueryRow(ctx, stmt, userID.String(), params.Description, params.Duration, params.Date).
		Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}
	e.Date = e.Date.UTC()
	return &e, nil
}

func (r *PostgresExerciseRepository) ListExercises(ctx context.Context, filter model.ExerciseFilter) ([]model.Exercise, error) {
	userID, err := uuid.Parse(filter.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	filter.UserID = userID.String()

	stmt, args := buildListExercisesQuery(filter)

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("select exercises: %w", err)
	}

	exercises, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Exercise, error) {
		var e model.Exercise
		err := row.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date)
		e.Date = e.Date.UTC()
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan exercises: %w", err)
	}
	return exercises, nil
}

// buildListExercisesQuery renders the log query with positional arguments.
// Bounds are inclusive; LIMIT applies after the date filter.
func buildListExercisesQuery(filter model.ExerciseFilter) (string, []any) {
	var sb strings.Builder
	args := []any{filter.UserID}

	sb.WriteString("SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1")

	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}

	sb.WriteString(" ORDER BY date ASC, id ASC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	return sb.String(), args
}
