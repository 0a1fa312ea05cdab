package database

import (
	"context"
	"fmt"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the mongo repositories.
const (
	MongoUsersCollection     = "users"
	MongoExercisesCollection = "exercises"
)

// MongoConnectTimeout bounds connect, ping and index creation at startup.
const MongoConnectTimeout = 10 * time.Second

// Mongo wraps the client and the application database.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// NewMongo connects to cfg.Mongo.URI, pings the primary and ensures the
// {userId, date} index on exercises.
func NewMongo(cfg *config.Config, logger *zerolog.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetAppName(cfg.Observability.ServiceName)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	m := &Mongo{
		Client: client,
		DB:     client.Database(cfg.Mongo.Database),
		log:    logger,
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.DB.Collection(MongoExercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("userId_date"),
	})
	if err != nil {
		return fmt.Errorf("failed to create exercises index: %w", err)
	}
	return nil
}

// Ping checks the primary with the caller's deadline.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	m.log.Info().Msg("closing mongo connection")
	return m.Client.Disconnect(ctx)
}
