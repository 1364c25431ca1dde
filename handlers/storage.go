package handlers

import (
	"errors"
	"net/http"

	houseRepo "stayhaven/database/repository/house"
	"stayhaven/middleware"
	"stayhaven/models"
	"stayhaven/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadFiles = 10

// StorageHandler accepts listing image uploads and attaches the stored
// URLs to the house.
type StorageHandler struct {
	Storage storage.StorageService
	Houses  houseRepo.HouseRepository
	Logger  *zap.Logger
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, houses houseRepo.HouseRepository, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: svc, Houses: houses, Logger: logger}
}

// authorizeHouseImages loads the house and checks that the caller may
// manage its images. On failure the response has been written already.
func (h *StorageHandler) authorizeHouseImages(c *gin.Context, houseID string) bool {
	house, err := h.Houses.GetByID(c.Request.Context(), houseID)
	if err != nil {
		if errors.Is(err, houseRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "house not found"})
			return false
		}
		h.Logger.Error("failed to fetch house for image management", zap.String("houseId", houseID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return false
	}

	userID, role := middleware.Principal(c)
	if house.HostID != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "only the host can manage listing images"})
		return false
	}
	return true
}

// UploadHouseImages uploads one or more images for a house under an
// image group type. Only the listing's host or an admin may upload.
func (h *StorageHandler) UploadHouseImages(c *gin.Context) {
	houseID := c.Param("id")
	if !h.authorizeHouseImages(c, houseID) {
		return
	}

	groupType := c.PostForm("type")
	if groupType == "" {
		groupType = "general"
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid multipart form", "details": err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "at least one image is required"})
		return
	}
	if len(files) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, gin.H{"message": "too many files in one request"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read uploaded file", "details": err.Error()})
			return
		}
		url, err := h.Storage.UploadImage(c.Request.Context(), file, "houses/"+houseID)
		file.Close()
		if err != nil {
			h.Logger.Error("image upload failed", zap.String("houseId", houseID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"message": "image upload failed"})
			return
		}
		urls = append(urls, url)
	}

	group := models.ImageGroup{Type: groupType, URLs: urls}
	if err := h.Houses.AddImageGroup(c.Request.Context(), houseID, group); err != nil {
		h.Logger.Error("failed to attach images to house", zap.String("houseId", houseID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Images uploaded", "type": groupType, "urls": urls})
}

// DeleteHouseImage removes a stored image and detaches its URL from the
// listing. Only the listing's host or an admin may delete.
func (h *StorageHandler) DeleteHouseImage(c *gin.Context) {
	houseID := c.Param("id")
	if !h.authorizeHouseImages(c, houseID) {
		return
	}

	var req struct {
		PublicID string `json:"publicId"`
		URL      string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PublicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "publicId is required"})
		return
	}

	if err := h.Storage.DeleteImage(c.Request.Context(), req.PublicID); err != nil {
		h.Logger.Error("image delete failed",
			zap.String("houseId", houseID),
			zap.String("publicId", req.PublicID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"message": "image delete failed"})
		return
	}

	if req.URL != "" {
		if err := h.Houses.RemoveImageURL(c.Request.Context(), houseID, req.URL); err != nil {
			h.Logger.Error("failed to detach image url from house",
				zap.String("houseId", houseID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
