package service

import (
	"context"
	"errors"
	"testing"

	"aiquizzer/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserStore keeps users in memory and matches the repository's
// observable behavior closely enough for the service tests.
type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) FindByLogin(_ context.Context, login string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, errors.New("no documents in result")
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("no documents in result")
}

func (f *fakeUserStore) Exists(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ExistsOther(_ context.Context, username, email, excludeUsername string) (bool, error) {
	for _, u := range f.users {
		if u.Username == excludeUsername {
			continue
		}
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) UpdateByUsername(_ context.Context, username string, update bson.M) error {
	for _, u := range f.users {
		if u.Username != username {
			continue
		}
		if v, ok := update["username"].(string); ok {
			u.Username = v
		}
		if v, ok := update["email"].(string); ok {
			u.Email = v
		}
		if v, ok := update["gender"].(string); ok {
			u.Gender = v
		}
		if v, ok := update["profile_photo"].([]byte); ok {
			u.ProfilePhoto = v
		}
		return nil
	}
	return errors.New("no documents in result")
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) FindByRole(_ context.Context, role string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) FindByStatus(_ context.Context, status string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Status == status {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) FindOthers(_ context.Context, username string) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Username != username {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) SetApproval(_ context.Context, id string, approve bool) error {
	return nil
}

func signupReq(username, email string) SignupRequest {
	return SignupRequest{
		Username:        username,
		Email:           email,
		Gender:          "Male",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	req := signupReq("alice", "alice@example.com")
	req.ConfirmPassword = "different"

	_, err := svc.Signup(context.Background(), req)
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("err = %v, want ErrPasswordMismatch", err)
	}
	if len(store.users) != 0 {
		t.Fatal("mismatched passwords must not write a user")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	if _, err := svc.Signup(context.Background(), signupReq("alice", "alice@example.com")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), signupReq("alice", "other@example.com"))
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("store holds %d users, duplicate signup must not write", len(store.users))
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	if _, err := svc.Signup(context.Background(), signupReq("alice", "alice@example.com")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	_, err := svc.Signup(context.Background(), signupReq("bob", "alice@example.com"))
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("store holds %d users, duplicate signup must not write", len(store.users))
	}
}

func TestSignupRoles(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	user, err := svc.Signup(context.Background(), signupReq("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.Role != models.RoleUser || user.Status != models.StatusApproved {
		t.Errorf("plain signup = %s/%s, want User/approved", user.Role, user.Status)
	}
	if user.Password == "s3cret" {
		t.Error("password stored in plain text")
	}
	if len(user.ProfilePhoto) == 0 {
		t.Error("signup should assign a default profile photo")
	}

	req := signupReq("bob", "bob@example.com")
	req.AdminRequest = true
	admin, err := svc.Signup(context.Background(), req)
	if err != nil {
		t.Fatalf("admin-request signup failed: %v", err)
	}
	if admin.Role != models.RolePendingAdmin || admin.Status != models.StatusPending {
		t.Errorf("admin request = %s/%s, want pending_admin/pending", admin.Role, admin.Status)
	}
}

func TestLogin(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewAuthService(store)

	if _, err := svc.Signup(context.Background(), signupReq("alice", "alice@example.com")); err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice", "s3cret"); err != nil {
		t.Errorf("login by username failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", "s3cret"); err != nil {
		t.Errorf("login by email failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}
