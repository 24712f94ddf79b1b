package repository

import (
	"context"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuizRepository stores admin-curated static quizzes.
type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	res, err := r.Col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid.Hex()
	}
	return nil
}

// ChallengeQuizRepository stores the generated quizzes shared by a
// challenge pair, a separate collection from curated quizzes.
type ChallengeQuizRepository struct {
	Col *mongo.Collection
}

func NewChallengeQuizRepository(db *mongo.Database) *ChallengeQuizRepository {
	return &ChallengeQuizRepository{Col: db.Collection("challenge_quizzes")}
}

func (r *ChallengeQuizRepository) FindByID(ctx context.Context, id string) (*models.ChallengeQuiz, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var quiz models.ChallengeQuiz
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *ChallengeQuizRepository) Create(ctx context.Context, quiz *models.ChallengeQuiz) error {
	res, err := r.Col.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		quiz.ID = oid.Hex()
	}
	return nil
}
