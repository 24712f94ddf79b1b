package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"aiquizzer/internal/middleware"
	"aiquizzer/internal/service"
	"aiquizzer/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.Service.Profile(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ProfilePhoto(c *gin.Context) {
	user, err := h.Service.Profile(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.Data(http.StatusOK, "image/png", user.ProfilePhoto)
}

// UpdateProfile edits username/email/gender. The username is the identity
// claim inside the token, so a successful rename returns a fresh token.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var update service.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	err := h.Service.UpdateProfile(context.Background(), middleware.Username(c), update)
	if errors.Is(err, service.ErrUserExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or Email already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(update.Username, c.GetString("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
		"token":   token,
	})
}

func (h *UserHandler) UpdatePhoto(c *gin.Context) {
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select an image to upload."})
		return
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded image"})
		return
	}

	if err := h.Service.UpdatePhoto(context.Background(), middleware.Username(c), photo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile photo updated successfully!"})
}

// Opponents lists every other user, for the challenge creation form.
func (h *UserHandler) Opponents(c *gin.Context) {
	users, err := h.Service.ListOpponents(context.Background(), middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	usernames := make([]string, 0, len(users))
	for _, u := range users {
		usernames = append(usernames, u.Username)
	}
	c.JSON(http.StatusOK, gin.H{"opponents": usernames})
}
