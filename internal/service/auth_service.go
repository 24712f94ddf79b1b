package service

import (
	"context"
	"errors"
	"time"

	"aiquizzer/internal/models"
	"aiquizzer/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
)

type AuthService struct {
	Users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{Users: users}
}

type SignupRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Gender          string `json:"gender" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	AdminRequest    bool   `json:"admin_request"`
}

// Signup validates and creates a user. Validation failures happen before
// any write: mismatched passwords first, then the duplicate check. Admin
// requests start as pending_admin/pending until the super admin decides.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	exists, err := s.Users.Exists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	status := models.StatusApproved
	if req.AdminRequest {
		role = models.RolePendingAdmin
		status = models.StatusPending
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Gender:       req.Gender,
		Role:         role,
		Password:     string(hashed),
		ProfilePhoto: utils.DefaultAvatar(req.Gender),
		Status:       status,
		CreatedAt:    time.Now(),
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the identifier against username or email and compares the
// bcrypt hash. Both unknown user and wrong password collapse into the same
// error so the response does not leak which part failed.
func (s *AuthService) Login(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.Users.FindByLogin(ctx, login)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
