package repository

import (
	"context"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resultTTLSeconds = 86400 // results expire 24 hours after the quiz started

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("quiz_results")}
}

// EnsureIndexes creates the TTL index that expires quiz results a day
// after quiz_started_at. Safe to call on every startup.
func (r *ResultRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "quiz_started_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(resultTTLSeconds),
	}
	_, err := r.Col.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (r *ResultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid.Hex()
	}
	return nil
}

// FindByUser returns a user's results newest-first, the order the report
// page presents them.
func (r *ResultRepository) FindByUser(ctx context.Context, username string) ([]models.QuizResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "quiz_started_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.QuizResult
	for cur.Next(ctx) {
		var res models.QuizResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.QuizResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var result models.QuizResult
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
