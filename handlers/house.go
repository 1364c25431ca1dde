package handlers

import (
	"errors"
	"net/http"

	houseRepo "stayhaven/database/repository/house"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HouseHandler serves the listing read surface the booking flow needs.
type HouseHandler struct {
	Repo   houseRepo.HouseRepository
	Logger *zap.Logger
}

// NewHouseHandler creates a new HouseHandler instance.
func NewHouseHandler(repo houseRepo.HouseRepository, logger *zap.Logger) *HouseHandler {
	return &HouseHandler{Repo: repo, Logger: logger}
}

// ListHouses returns all listings.
func (h *HouseHandler) ListHouses(c *gin.Context) {
	houses, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list houses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, houses)
}

// GetHouse returns a single listing by id.
func (h *HouseHandler) GetHouse(c *gin.Context) {
	house, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, houseRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "house not found"})
			return
		}
		h.Logger.Error("failed to fetch house", zap.String("houseId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, house)
}
