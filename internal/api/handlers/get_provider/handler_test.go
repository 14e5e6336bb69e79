package get_provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/providers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/providers/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.ProviderResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ProviderResponse{ID: id, Name: "João"}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"found", nil, http.StatusOK},
		{"not found", providers.ErrProviderNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/providers/{providerId}", NewHandler(&fakeService{err: tt.err}, logger.NewNop()).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/providers/p-1", nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
