package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
)

// --- фейки ---

type fakeUseCase struct {
	resp  *createBooking.Response
	err   error
	calls int
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeNotifier struct{}

func (fakeNotifier) ConfirmationMessage(b *createBooking.Response, _ time.Time) string {
	return "New Booking " + b.BookingReference
}

func (fakeNotifier) HandoffURL(message string) string {
	return "https://wa.me/971526977676?text=" + message
}

func (fakeNotifier) CalendarURL(b *createBooking.Response) (string, error) {
	return "https://calendar.google.com/calendar/render?text=" + b.PackageName, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- вспомогательные данные ---

func successResponse() *createBooking.Response {
	return &createBooking.Response{
		ID:               42,
		BookingReference: "EJ-20260914-AABBCCDD",
		PackageID:        "sunset-cruise",
		PackageName:      "Sunset Cruise",
		DurationMinutes:  60,
		BookingDate:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:        "10:00",
		CustomerName:     "Sara Haddad",
		NumParticipants:  2,
		TotalPrice:       650,
		Status:           "confirmed",
		PaymentStatus:    "pending",
		PaymentMethod:    "cash",
		CreatedAt:        time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
	}
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"packageId":       "sunset-cruise",
		"bookingDate":     "2026-09-20",
		"bookingTime":     "10:00",
		"customerName":    "Sara Haddad",
		"customerEmail":   "sara@example.com",
		"customerPhone":   "+971501234567",
		"numParticipants": 2,
		"totalPrice":      650,
	}
}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, fakeNotifier{}, noopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings", handler.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, method string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, "/api/v1/bookings", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// --- тесты ---

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: successResponse()}
	router := newTestRouter(uc)

	w := doRequest(t, router, http.MethodPost, validBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Regexp(t, `^EJ-\d{8}-[0-9A-F]{8}$`, resp.BookingReference)
	assert.Equal(t, "Sunset Cruise", resp.PackageName)
	assert.Equal(t, "2026-09-20", resp.BookingDate)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Contains(t, resp.WhatsAppURL, "wa.me")
	assert.Contains(t, resp.CalendarURL, "calendar.google.com")
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotConflict}
	router := newTestRouter(uc)

	w := doRequest(t, router, http.MethodPost, validBody())
	require.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "This time slot is already booked.", resp["error"])
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: customerEmail is not a valid email address", createBooking.ErrInvalidInput)}
	router := newTestRouter(uc)

	body := validBody()
	body["customerEmail"] = "not-an-email"

	w := doRequest(t, router, http.MethodPost, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "customerEmail is not a valid email address", resp["error"])
}

func TestHandle_MalformedJSON(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	body := validBody()
	body["bookingDate"] = "20/09/2026"

	w := doRequest(t, router, http.MethodPost, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandle_InvalidTimeFormat(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	body := validBody()
	body["bookingTime"] = "10am"

	w := doRequest(t, router, http.MethodPost, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidTime, resp["error"])
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	w := doRequest(t, router, http.MethodGet, nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestHandle_StoreUnavailable(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrStoreUnavailable}
	router := newTestRouter(uc)

	w := doRequest(t, router, http.MethodPost, validBody())
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// Ответ не содержит номера бронирования - подтверждения не было
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp, "booking_reference")
}

func TestHandle_PackageNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrPackageNotFound}
	router := newTestRouter(uc)

	w := doRequest(t, router, http.MethodPost, validBody())
	require.Equal(t, http.StatusNotFound, w.Code)
}
