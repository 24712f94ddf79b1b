package repository

import (
	"context"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ChallengeRepository struct {
	Col *mongo.Collection
}

func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{Col: db.Collection("challenges")}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	res, err := r.Col.InsertOne(ctx, challenge)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		challenge.ID = oid.Hex()
	}
	return nil
}

func (r *ChallengeRepository) FindByID(ctx context.Context, id string) (*models.Challenge, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var challenge models.Challenge
	if err := r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// FindByStatusFor lists challenges in the given status where username is
// either side of the pairing.
func (r *ChallengeRepository) FindByStatusFor(ctx context.Context, username, status string) ([]models.Challenge, error) {
	cur, err := r.Col.Find(ctx, bson.M{
		"status": status,
		"$or":    []bson.M{{"challenger": username}, {"opponent": username}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var challenges []models.Challenge
	for cur.Next(ctx) {
		var c models.Challenge
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		challenges = append(challenges, c)
	}
	return challenges, nil
}

// SetCompletion writes back the completion set and derived status.
func (r *ChallengeRepository) SetCompletion(ctx context.Context, id string, completedBy []string, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"completed_by": completedBy, "status": status}})
	return err
}
