package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	houseRepo "stayhaven/database/repository/house"
	"stayhaven/handlers"
	"stayhaven/models"
	"stayhaven/services/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReviewService struct {
	gotHouseID string
	reviews    []models.Review
}

func (s *stubReviewService) CheckEligibility(ctx context.Context, userID, houseID string) (*review.Eligibility, error) {
	return &review.Eligibility{}, nil
}

func (s *stubReviewService) CreateReview(ctx context.Context, userID, bookingID string, rating int, comment string) (*models.Review, error) {
	return nil, nil
}

func (s *stubReviewService) ListHouseReviews(ctx context.Context, houseID string) ([]models.Review, error) {
	s.gotHouseID = houseID
	return s.reviews, nil
}

type stubHouseRepo struct{}

func (s *stubHouseRepo) GetByID(ctx context.Context, id string) (*models.House, error) {
	return nil, houseRepo.ErrNotFound
}

func (s *stubHouseRepo) List(ctx context.Context) ([]models.House, error) {
	return nil, nil
}

func (s *stubHouseRepo) ApplyReviewRating(ctx context.Context, houseID string, rating int) error {
	return nil
}

func (s *stubHouseRepo) AddImageGroup(ctx context.Context, houseID string, group models.ImageGroup) error {
	return nil
}

func (s *stubHouseRepo) RemoveImageURL(ctx context.Context, houseID, url string) error {
	return nil
}

func testBundle(svc *stubReviewService) *handlers.HandlerBundle {
	logger := zap.NewNop()
	repo := &stubHouseRepo{}
	return &handlers.HandlerBundle{
		Review:  handlers.NewReviewHandler(svc, logger),
		House:   handlers.NewHouseHandler(repo, logger),
		Storage: handlers.NewStorageHandler(nil, repo, logger),
	}
}

func TestHouseReviewsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &stubReviewService{reviews: []models.Review{{ID: "r1", HouseID: "h1", Rating: 5}}}
	r := gin.New()
	RegisterHouseRoutes(r, testBundle(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/houses/h1/reviews", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "h1", svc.gotHouseID)

	var got []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
}
