package repository

import (
	"testing"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/model"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListExercisesQuery(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 31, 23, 59, 59, 999999000, time.UTC)

	tests := []struct {
		name     string
		filter   model.ExerciseFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "user only",
			filter:   model.ExerciseFilter{UserID: "u"},
			wantSQL:  "SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1 ORDER BY date ASC, id ASC",
			wantArgs: []any{"u"},
		},
		{
			name:     "from only",
			filter:   model.ExerciseFilter{UserID: "u", From: &from},
			wantSQL:  "SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1 AND date >= $2 ORDER BY date ASC, id ASC",
			wantArgs: []any{"u", from},
		},
		{
			name:     "to and limit",
			filter:   model.ExerciseFilter{UserID: "u", To: &to, Limit: 5},
			wantSQL:  "SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1 AND date <= $2 ORDER BY date ASC, id ASC LIMIT $3",
			wantArgs: []any{"u", to, 5},
		},
		{
			name:     "everything",
			filter:   model.ExerciseFilter{UserID: "u", From: &from, To: &to, Limit: 2},
			wantSQL:  "SELECT id::text, user_id::text, description, duration, date FROM exercises WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC, id ASC LIMIT $4",
			wantArgs: []any{"u", from, to, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := buildListExercisesQuery(tt.filter)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestExerciseFilterDocument(t *testing.T) {
	userID := primitive.NewObjectID()
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, bson.M{"userId": userID}, exerciseFilterDocument(userID, model.ExerciseFilter{}))

	assert.Equal(t, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from},
	}, exerciseFilterDocument(userID, model.ExerciseFilter{From: &from}))

	assert.Equal(t, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lte": to},
	}, exerciseFilterDocument(userID, model.ExerciseFilter{From: &from, To: &to}))
}

func TestExerciseFindOptions(t *testing.T) {
	opts := exerciseFindOptions(model.ExerciseFilter{})
	assert.Nil(t, opts.Limit)
	assert.Equal(t, bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}, opts.Sort)

	opts = exerciseFindOptions(model.ExerciseFilter{Limit: 3})
	if assert.NotNil(t, opts.Limit) {
		assert.Equal(t, int64(3), *opts.Limit)
	}
}
