package handlers

import (
	"errors"
	"net/http"

	userRepo "stayhaven/database/repository/user"
	"stayhaven/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler covers the small identity surface the booking flows need.
type UserHandler struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(repo userRepo.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Logger: logger}
}

// RegisterFCMToken records a device push token for the caller so
// booking confirmations can reach it.
func (h *UserHandler) RegisterFCMToken(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "token is required"})
		return
	}

	userID, _ := middleware.Principal(c)
	if err := h.Repo.AddFCMToken(c.Request.Context(), userID, req.Token); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		h.Logger.Error("failed to register FCM token", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCM token registered"})
}
