package cancelBooking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/booking/cancelBooking"
	"eventhub/internal/http-server/handlers/booking/cancelBooking/mocks"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/service"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingHandler(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		body      string
		respError string
		mockError error
		mockSkip  bool
		code      int
	}{
		{
			name: "Success",
			url:  "/bookings/7/cancel",
			body: `{"user_id": "user1"}`,
			code: http.StatusOK,
		},
		{
			name:      "Invalid booking id",
			url:       "/bookings/seven/cancel",
			body:      `{"user_id": "user1"}`,
			respError: "invalid booking id format",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Missing user id",
			url:       "/bookings/7/cancel",
			body:      `{}`,
			respError: "field UserId is a required field",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Booking not found",
			url:       "/bookings/7/cancel",
			body:      `{"user_id": "user1"}`,
			respError: "booking not found",
			mockError: storage.ErrBookingNotFound,
			code:      http.StatusNotFound,
		},
		{
			name:      "Belongs to another user",
			url:       "/bookings/7/cancel",
			body:      `{"user_id": "user1"}`,
			respError: "booking belongs to another user",
			mockError: service.ErrNotBookingOwner,
			code:      http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookingCancellerMock := mocks.NewBookingCanceller(t)

			if !tc.mockSkip {
				bookingCancellerMock.On("CancelBooking", "user1", 7).
					Return(tc.mockError).Once()
			}

			router := chi.NewRouter()
			router.Post("/bookings/{id}/cancel", cancelBooking.New(slogdiscard.NewDiscardLogger(), bookingCancellerMock))

			req, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewReader([]byte(tc.body)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)
		})
	}
}
