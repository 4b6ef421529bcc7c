//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ad-approval-service/internal/handler/api"
	resdto "ad-approval-service/internal/handler/dto/response"
	"ad-approval-service/internal/usecase/queries"
	"ad-approval-service/tests/common/httptest"
	queriesmock "ad-approval-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdListingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAdListingQueries
	handler     *api.AdListingHandler
}

func (s *AdListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAdListingQueries(s.mockCtrl)
	s.handler = api.NewAdListingHandler(s.mockQueries)

	s.router.GET("/api/ads/:id", s.handler.Get)
	s.router.GET("/health", api.HealthCheck)
}

func (s *AdListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdListingHandlerTestSuite))
}

func (s *AdListingHandlerTestSuite) TestGet() {
	id := uuid.New()
	url := "/api/ads/" + id.String()
	notified := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	view := &queries.AdListingView{
		ID:             id,
		AdUnitID:       "ad1",
		Title:          "Summer Sale Banner",
		AdminContact:   "a@x.com",
		IsApproved:     false,
		Status:         "pending",
		LastNotifiedAt: &notified,
		CreatedAt:      notified.Add(-time.Hour),
		UpdatedAt:      notified,
	}

	s.Run("success: returns 200 OK with the listing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)

		var response resdto.AdListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id.String(), response.ID)
		s.Equal("ad1", response.AdUnitID)
		s.Equal("pending", response.Status)
		s.False(response.IsApproved)
		s.Require().NotNil(response.LastNotifiedAt)
		s.Equal(notified.Unix(), *response.LastNotifiedAt)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/ads/not-a-uuid", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "listing not found", queriesError: queries.ErrAdListingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Not found"},
			{name: "database error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdListingHandlerTestSuite) TestHealthCheck() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Ad approval service is running", rec.Body.String())
}
