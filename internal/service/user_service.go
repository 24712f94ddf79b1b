package service

import (
	"context"
	"errors"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserStore is the user persistence surface the auth and profile services
// need. repository.UserRepository implements it.
type UserStore interface {
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
	ExistsOther(ctx context.Context, username, email, excludeUsername string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	UpdateByUsername(ctx context.Context, username string, update bson.M) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	FindByStatus(ctx context.Context, status string) ([]models.User, error)
	FindOthers(ctx context.Context, username string) ([]models.User, error)
	SetApproval(ctx context.Context, id string, approve bool) error
}

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) Profile(ctx context.Context, username string) (*models.User, error) {
	return s.Users.FindByUsername(ctx, username)
}

type ProfileUpdate struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
}

// UpdateProfile edits the self-service fields. Both the new username and
// the new email must be free of any other user before the write; the
// caller's own document never counts as a collision, so keeping either
// value unchanged is always allowed.
func (s *UserService) UpdateProfile(ctx context.Context, username string, update ProfileUpdate) error {
	taken, err := s.Users.ExistsOther(ctx, update.Username, update.Email, username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUserExists
	}
	return s.Users.UpdateByUsername(ctx, username, bson.M{
		"username": update.Username,
		"email":    update.Email,
		"gender":   update.Gender,
	})
}

func (s *UserService) UpdatePhoto(ctx context.Context, username string, photo []byte) error {
	if len(photo) == 0 {
		return errors.New("photo is empty")
	}
	return s.Users.UpdateByUsername(ctx, username, bson.M{"profile_photo": photo})
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.Users.FindAll(ctx)
}

func (s *UserService) ListByStatus(ctx context.Context, status string) ([]models.User, error) {
	return s.Users.FindByStatus(ctx, status)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.Users.FindByRole(ctx, role)
}

func (s *UserService) ListOpponents(ctx context.Context, username string) ([]models.User, error) {
	return s.Users.FindOthers(ctx, username)
}

// Approve and Decline process the selected pending admin requests one by
// one; a failure aborts the rest, matching the panel's per-row writes.
func (s *UserService) Approve(ctx context.Context, userIDs []string) error {
	for _, id := range userIDs {
		if err := s.Users.SetApproval(ctx, id, true); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) Decline(ctx context.Context, userIDs []string) error {
	for _, id := range userIDs {
		if err := s.Users.SetApproval(ctx, id, false); err != nil {
			return err
		}
	}
	return nil
}
