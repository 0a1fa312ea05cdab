package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/database"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

func (d userDocument) toModel() model.User {
	return model.User{ID: d.ID.Hex(), Username: d.Username}
}

type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

func (d exerciseDocument) toModel() model.Exercise {
	return model.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date.UTC(),
	}
}

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{users: db.Collection(database.MongoUsersCollection)}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, username string) (*model.User, error) {
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	user := doc.toModel()
	return &user, nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var doc userDocument
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}

	user := doc.toModel()
	return &user, nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "username": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}
	return users, nil
}

type MongoExerciseRepository struct {
	exercises *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	return &MongoExerciseRepository{exercises: db.Collection(database.MongoExercisesCollection)}
}

func (r *MongoExerciseRepository) CreateExercise(ctx context.Context, params model.CreateExerciseParams) (*model.Exercise, error) {
	userOID, err := primitive.ObjectIDFromHex(params.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      userOID,
		Description: params.Description,
		Duration:    params.Duration,
		// BSON dates have millisecond precision; truncate so the returned
		// value matches what a later read sees.
		Date: params.Date.UTC().Truncate(time.Millisecond),
	}

	if _, err := r.exercises.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	exercise := doc.toModel()
	return &exercise, nil
}

func (r *MongoExerciseRepository) ListExercises(ctx context.Context, filter model.ExerciseFilter) ([]model.Exercise, error) {
	userOID, err := primitive.ObjectIDFromHex(filter.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	cursor, err := r.exercises.Find(ctx, exerciseFilterDocument(userOID, filter), exerciseFindOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}

	exercises := make([]model.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, d.toModel())
	}
	return exercises, nil
}

// exerciseFilterDocument builds {userId, date: {$gte, $lte}}; the date key
// is present only when at least one bound is set.
func exerciseFilterDocument(userID primitive.ObjectID, filter model.ExerciseFilter) bson.M {
	doc := bson.M{"userId": userID}

	if filter.From != nil || filter.To != nil {
		date := bson.M{}
		if filter.From != nil {
			date["$gte"] = *filter.From
		}
		if filter.To != nil {
			date["$lte"] = *filter.To
		}
		doc["date"] = date
	}

	return doc
}

func exerciseFindOptions(filter model.ExerciseFilter) *options.FindOptions {
	opts := options.Find().
		SetProjection(bson.M{"description": 1, "duration": 1, "date": 1, "userId": 1}).
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return opts
}
