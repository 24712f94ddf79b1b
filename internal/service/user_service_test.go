package service

import (
	"context"
	"errors"
	"testing"

	"aiquizzer/internal/models"
)

func seededUserStore() *fakeUserStore {
	return &fakeUserStore{users: []*models.User{
		{Username: "alice", Email: "alice@example.com", Gender: "Female"},
		{Username: "bob", Email: "bob@example.com", Gender: "Male"},
	}}
}

func TestUpdateProfileRejectsTakenUsername(t *testing.T) {
	store := seededUserStore()
	svc := NewUserService(store)

	err := svc.UpdateProfile(context.Background(), "alice", ProfileUpdate{
		Username: "bob",
		Email:    "alice@example.com",
		Gender:   "Female",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
	if store.users[0].Username != "alice" {
		t.Fatal("rejected rename must not write")
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	store := seededUserStore()
	svc := NewUserService(store)

	err := svc.UpdateProfile(context.Background(), "alice", ProfileUpdate{
		Username: "alice",
		Email:    "bob@example.com",
		Gender:   "Female",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
	if store.users[0].Email != "alice@example.com" {
		t.Fatal("rejected update must not write")
	}
}

func TestUpdateProfileKeepsOwnIdentity(t *testing.T) {
	store := seededUserStore()
	svc := NewUserService(store)

	err := svc.UpdateProfile(context.Background(), "alice", ProfileUpdate{
		Username: "alice",
		Email:    "alice@example.com",
		Gender:   "Other",
	})
	if err != nil {
		t.Fatalf("keeping own username/email must be allowed, got %v", err)
	}
	if store.users[0].Gender != "Other" {
		t.Fatal("gender update was not written")
	}
}

func TestUpdateProfileRename(t *testing.T) {
	store := seededUserStore()
	svc := NewUserService(store)

	err := svc.UpdateProfile(context.Background(), "alice", ProfileUpdate{
		Username: "alicia",
		Email:    "alicia@example.com",
		Gender:   "Female",
	})
	if err != nil {
		t.Fatalf("rename to free values failed: %v", err)
	}
	if store.users[0].Username != "alicia" || store.users[0].Email != "alicia@example.com" {
		t.Fatalf("rename not written, got %s/%s", store.users[0].Username, store.users[0].Email)
	}
}

func TestUpdatePhotoRejectsEmpty(t *testing.T) {
	store := seededUserStore()
	svc := NewUserService(store)

	if err := svc.UpdatePhoto(context.Background(), "alice", nil); err == nil {
		t.Fatal("empty photo must be rejected")
	}
	if err := svc.UpdatePhoto(context.Background(), "alice", []byte{1, 2, 3}); err != nil {
		t.Fatalf("photo update failed: %v", err)
	}
	if len(store.users[0].ProfilePhoto) != 3 {
		t.Fatal("photo was not written")
	}
}
