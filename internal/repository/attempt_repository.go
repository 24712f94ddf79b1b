package repository

import (
	"context"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AttemptRepository backs both quiz_attempts and challenge_attempts; the
// two flows share the document shape but never mix collections.
type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database, collection string) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection(collection)}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	res, err := r.Col.InsertOne(ctx, attempt)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		attempt.ID = oid.Hex()
	}
	return nil
}

// FindByQuizAndUser is the pre-submission existence check behind the
// one-attempt-per-quiz rule. Returns nil, nil when no attempt exists.
func (r *AttemptRepository) FindByQuizAndUser(ctx context.Context, quizID, username string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"quiz_id": quizID, "attempted_by": username}).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Attempt, error) {
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
