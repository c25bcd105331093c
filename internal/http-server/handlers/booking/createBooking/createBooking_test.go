package createBooking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/booking/createBooking"
	"eventhub/internal/http-server/handlers/booking/createBooking/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
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
			url:  "/events/1/book",
			body: `{"user_id": "user1"}`,
			code: http.StatusCreated,
		},
		{
			name:      "Invalid event id",
			url:       "/events/abc/book",
			body:      `{"user_id": "user1"}`,
			respError: "invalid event id format",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Missing user id",
			url:       "/events/1/book",
			body:      `{}`,
			respError: "field UserId is a required field",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Event not found",
			url:       "/events/1/book",
			body:      `{"user_id": "user1"}`,
			respError: "event not found",
			mockError: storage.ErrEventNotFound,
			code:      http.StatusNotFound,
		},
		{
			name:      "Already booked",
			url:       "/events/1/book",
			body:      `{"user_id": "user1"}`,
			respError: "user already booked this event",
			mockError: storage.ErrAlreadyBooked,
			code:      http.StatusConflict,
		},
		{
			name:      "No seats available",
			url:       "/events/1/book",
			body:      `{"user_id": "user1"}`,
			respError: "no seats available",
			mockError: storage.ErrNoSeatsAvailable,
			code:      http.StatusConflict,
		},
		{
			name:      "Booking closed",
			url:       "/events/1/book",
			body:      `{"user_id": "user1"}`,
			respError: "booking is closed",
			mockError: service.ErrBookingClosed,
			code:      http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookingCreatorMock := mocks.NewBookingCreator(t)

			if !tc.mockSkip {
				if tc.mockError != nil {
					bookingCreatorMock.On("CreateBooking", 1, "user1").
						Return(nil, tc.mockError).Once()
				} else {
					bookingCreatorMock.On("CreateBooking", 1, "user1").
						Return(&models.Booking{ID: 7, EventID: 1, UserID: "user1"}, nil).Once()
				}
			}

			router := chi.NewRouter()
			router.Post("/events/{id}/book", createBooking.New(slogdiscard.NewDiscardLogger(), bookingCreatorMock))

			req, err := http.NewRequest(http.MethodPost, tc.url, bytes.NewReader([]byte(tc.body)))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.code, rr.Code)

			var resp createBooking.BookingResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			require.Equal(t, tc.respError, resp.Error)

			if tc.code == http.StatusCreated {
				require.NotNil(t, resp.Booking)
				require.Equal(t, 7, resp.Booking.ID)
			}
		})
	}
}
