package list_packages

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	listPackages "github.com/elitejetskis/EJS-BookingService/internal/usecase/list_packages"
)

type fakeUseCase struct {
	packages []*domain.Package
	err      error
}

func (f *fakeUseCase) Execute(_ context.Context) ([]*domain.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.packages, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, noopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/packages", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{packages: []*domain.Package{
		{ID: "jet-blast", Name: "Jet Blast", DurationMinutes: 30, PriceAED: 350, MaxParticipants: 1, DisplayOrder: 1},
		{ID: "sunset-cruise", Name: "Sunset Cruise", DurationMinutes: 60, PriceAED: 650, MaxParticipants: 2, DisplayOrder: 2},
	}}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListPackagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Packages, 2)
	assert.Equal(t, "jet-blast", resp.Packages[0].ID)
	assert.Equal(t, 350.0, resp.Packages[0].PriceAED)
	assert.Equal(t, "sunset-cruise", resp.Packages[1].ID)
}

func TestHandle_CatalogUnavailable(t *testing.T) {
	router := newTestRouter(&fakeUseCase{err: listPackages.ErrCatalogUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Пустой или недоступный каталог - 503, без синтетических пакетов
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "WhatsApp")
}
