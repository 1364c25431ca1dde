package handlers

import (
	"errors"
	"net/http"

	"stayhaven/services/booking"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps the service error taxonomy onto HTTP
// responses. Business failures carry enough detail to correct the
// request; security and infrastructure failures stay generic.
func respondServiceError(c *gin.Context, err error) {
	var (
		notFound  *booking.NotFoundError
		validErr  *booking.ValidationError
		conflict  *booking.ConflictError
		capacity  *booking.CapacityError
		forbidden *booking.ForbiddenError
		sigErr    *booking.SignatureError
		provider  *booking.PaymentProviderError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"message": notFound.Error()})
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validErr.Error()})
	case errors.As(err, &capacity):
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   capacity.Error(),
			"category":  capacity.Category,
			"limit":     capacity.Limit,
			"requested": capacity.Requested,
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"message": conflict.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": forbidden.Error()})
	case errors.As(err, &sigErr):
		// Never echo anything derived from the expected signature.
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment signature"})
	case errors.As(err, &provider):
		utils.GetLogger().Error("payment provider failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"message": "payment provider unavailable, booking not created"})
	default:
		utils.GetLogger().Error("unexpected service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}
