package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings"
	"github.com/elitejetskis/EJS-BookingService/internal/service/bookings/models"
)

type fakeService struct {
	resp *models.BookingResponse
	err  error
}

func (f *fakeService) GetByReference(_ context.Context, _ string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestRouter(svc *fakeService) *mux.Router {
	handler := NewHandler(svc, noopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{reference}", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{
		BookingReference: "EJ-20260914-AABBCCDD",
		PackageID:        "sunset-cruise",
		BookingDate:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		BookingTime:      "10:00",
		CustomerName:     "Sara Haddad",
		Status:           "confirmed",
		PaymentStatus:    "pending",
		PaymentMethod:    "cash",
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/EJ-20260914-AABBCCDD", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EJ-20260914-AABBCCDD", resp.BookingReference)
	assert.Equal(t, "2026-09-20", resp.BookingDate)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Nil(t, resp.CancelledAt)
}

func TestHandle_NotFound(t *testing.T) {
	router := newTestRouter(&fakeService{err: bookings.ErrBookingNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/EJ-20260914-FFFFFFFF", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}
