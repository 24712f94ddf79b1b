package repository

import (
	"context"

	"aiquizzer/internal/adaptive"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRepository persists in-progress adaptive quiz sessions, keyed by
// the opaque token handed to the client.
type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("adaptive_sessions")}
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*adaptive.Session, error) {
	var session adaptive.Session
	if err := r.Col.FindOne(ctx, bson.M{"token": token}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *adaptive.Session) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

// Save replaces the whole session document. State is small and every
// submission rewrites most of it, so field-level updates buy nothing here.
func (r *SessionRepository) Save(ctx context.Context, session *adaptive.Session) error {
	objID, err := primitive.ObjectIDFromHex(session.ID)
	if err != nil {
		return err
	}
	session.ID = ""
	_, err = r.Col.ReplaceOne(ctx, bson.M{"_id": objID}, session)
	session.ID = objID.Hex()
	return err
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"token": token})
	return err
}
