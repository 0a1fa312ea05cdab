//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/database"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("exercise_tracker"),
		postgrescontainer.WithUsername("tracker"),
		postgrescontainer.WithPassword("tracker"),
		postgrescontainer.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := zerolog.Nop()
	require.NoError(t, database.MigrateDSN(ctx, &logger, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPostgresRepositories(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	users := NewPostgresUserRepository(pool)
	exercises := NewPostgresExerciseRepository(pool)

	alice, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, alice.ID)

	got, err := users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = users.GetUserByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = users.GetUserByID(ctx, "6f1c1c3e-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.User{*alice}, all)

	for _, d := range []string{"2023-01-15", "2023-01-01", "2023-01-10"} {
		_, err := exercises.CreateExercise(ctx, model.CreateExerciseParams{
			UserID:      alice.ID,
			Description: "run " + d,
			Duration:    30,
			Date:        date(d),
		})
		require.NoError(t, err)
	}

	logs, err := exercises.ListExercises(ctx, model.ExerciseFilter{UserID: alice.ID})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, date("2023-01-01"), logs[0].Date)
	assert.Equal(t, date("2023-01-15"), logs[2].Date)

	from := date("2023-01-05")
	to := date("2023-01-15").Add(24*time.Hour - time.Microsecond)
	logs, err = exercises.ListExercises(ctx, model.ExerciseFilter{UserID: alice.ID, From: &from, To: &to, Limit: 1})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "run 2023-01-10", logs[0].Description)
}

func TestPostgresCheckConstraints(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	_, err := NewPostgresUserRepository(pool).CreateUser(ctx, "   ")
	require.Error(t, err)

	_, err = NewPostgresExerciseRepository(pool).CreateExercise(ctx, model.CreateExerciseParams{
		UserID:      "6f1c1c3e-0000-4000-8000-000000000000",
		Description: "run",
		Duration:    0,
		Date:        time.Now(),
	})
	require.Error(t, err)
}
