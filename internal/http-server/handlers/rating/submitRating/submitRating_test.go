package submitRating_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/rating/submitRating"
	"eventhub/internal/http-server/handlers/rating/submitRating/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestSubmitRatingHandler(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		body      string
		score     int
		respError string
		mockError error
		mockSkip  bool
		code      int
	}{
		{
			name:  "Success",
			url:   "/events/1/ratings",
			body:  `{"user_id": "user1", "score": 5}`,
			score: 5,
			code:  http.StatusCreated,
		},
		{
			name:      "Missing score",
			url:       "/events/1/ratings",
			body:      `{"user_id": "user1"}`,
			respError: "field Score is a required field",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Event not found",
			url:       "/events/1/ratings",
			body:      `{"user_id": "user1", "score": 5}`,
			score:     5,
			respError: "event not found",
			mockError: storage.ErrEventNotFound,
			code:      http.StatusNotFound,
		},
		{
			name:      "Event not completed",
			url:       "/events/1/ratings",
			body:      `{"user_id": "user1", "score": 5}`,
			score:     5,
			respError: "only completed events can be rated",
			mockError: service.ErrEventNotCompleted,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Did not attend",
			url:       "/events/1/ratings",
			body:      `{"user_id": "user1", "score": 5}`,
			score:     5,
			respError: "only attended events can be rated",
			mockError: service.ErrNotAttended,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Score out of range",
			url:       "/events/1/ratings",
			body:      `{"user_id": "user1", "score": 6}`,
			score:     6,
			respError: "score must be between 1 and 5",
			mockError: service.ErrInvalidScore,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Duplicate rating",
			url:       "/events/1/ratings",
			body:      `{"user_id": "user1", "score": 4}`,
			score:     4,
			respError: "user already rated this event",
			mockError: storage.ErrDuplicateRating,
			code:      http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ratingSubmitterMock := mocks.NewRatingSubmitter(t)

			if !tc.mockSkip {
				if tc.mockError != nil {
					ratingSubmitterMock.On("SubmitRating", 1, "user1", tc.score).
						Return(nil, tc.mockError).Once()
				} else {
					ratingSubmitterMock.On("SubmitRating", 1, "user1", tc.score).
						Return(&models.Rating{ID: 3, EventID: 1, UserID: "user1", Score: tc.score}, nil).Once()
				}
			}

			router := chi.NewRouter()
			router.Post("/events/{id}/ratings", submitRating.New(slogdiscard.NewDiscardLogger(), ratingSubmitterMock))

			req, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewReader([]byte(tc.body)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp submitRating.RatingResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)

			if tc.code == http.StatusCreated {
				require.NotNil(t, resp.Rating)
				require.Equal(t, tc.score, resp.Rating.Score)
			}
		})
	}
}
