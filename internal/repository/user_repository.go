package repository

import (
	"context"
	"time"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

// FindByLogin matches a username or an email, the login form accepts either.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{
		"$or": []bson.M{{"username": login}, {"email": login}},
	}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists checks for a username or email collision before signup writes.
func (r *UserRepository) Exists(ctx context.Context, username, email string) (bool, error) {
	err := r.Col.FindOne(ctx, bson.M{
		"$or": []bson.M{{"username": username}, {"email": email}},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExistsOther checks whether any user other than excludeUsername already
// holds the given username or email, for profile renames where the
// caller's own document must not count as a collision.
func (r *UserRepository) ExistsOther(ctx context.Context, username, email, excludeUsername string) (bool, error) {
	err := r.Col.FindOne(ctx, bson.M{
		"username": bson.M{"$ne": excludeUsername},
		"$or":      []bson.M{{"username": username}, {"email": email}},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.Col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

func (r *UserRepository) UpdateByUsername(ctx context.Context, username string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": update})
	return err
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *UserRepository) FindByStatus(ctx context.Context, status string) ([]models.User, error) {
	return r.find(ctx, bson.M{"status": status})
}

// FindOthers lists everyone except username, for opponent selection.
func (r *UserRepository) FindOthers(ctx context.Context, username string) ([]models.User, error) {
	return r.find(ctx, bson.M{"username": bson.M{"$ne": username}})
}

// SetApproval flips an admin request to approved or declined. The losing
// timestamp field is cleared, matching how the approval panel writes.
func (r *UserRepository) SetApproval(ctx context.Context, id string, approve bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	now := time.Now()
	var update bson.M
	if approve {
		update = bson.M{"role": models.RoleAdmin, "status": models.StatusApproved, "approved_at": now, "declined_at": nil}
	} else {
		update = bson.M{"role": "", "status": models.StatusDeclined, "declined_at": now, "approved_at": nil}
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}
