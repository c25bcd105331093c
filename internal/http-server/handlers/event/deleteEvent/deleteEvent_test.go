package deleteEvent_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/event/deleteEvent"
	"eventhub/internal/http-server/handlers/event/deleteEvent/mocks"
	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/service"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		respError string
		mockError error
		mockSkip  bool
		code      int
	}{
		{
			name: "Success",
			url:  "/events/1?user_id=org1",
			code: http.StatusOK,
		},
		{
			name:      "Invalid event id",
			url:       "/events/one?user_id=org1",
			respError: "invalid event id format",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Missing user id",
			url:       "/events/1",
			respError: "user id is required",
			mockSkip:  true,
			code:      http.StatusBadRequest,
		},
		{
			name:      "Event not found",
			url:       "/events/1?user_id=org1",
			respError: "event not found",
			mockError: storage.ErrEventNotFound,
			code:      http.StatusNotFound,
		},
		{
			name:      "Not the organizer",
			url:       "/events/1?user_id=org1",
			respError: "available to the organizer only",
			mockError: service.ErrNotOrganizer,
			code:      http.StatusForbidden,
		},
		{
			name:      "Deletion window expired",
			url:       "/events/1?user_id=org1",
			respError: "deletion is available within 1 hour after creation",
			mockError: service.ErrDeletionWindowExpired,
			code:      http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			eventDeleterMock := mocks.NewEventDeleter(t)

			if !tc.mockSkip {
				eventDeleterMock.On("DeleteEvent", "org1", 1).
					Return(tc.mockError).Once()
			}

			router := chi.NewRouter()
			router.Delete("/events/{id}", deleteEvent.New(slogdiscard.NewDiscardLogger(), eventDeleterMock))

			req, err := http.NewRequest(http.MethodDelete, tc.url, nil)
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
