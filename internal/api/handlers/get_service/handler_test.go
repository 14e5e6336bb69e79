package get_service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberBooking/internal/service/services"
	"github.com/m04kA/SMC-BarberBooking/internal/service/services/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	id  string
	err error
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.ServiceResponse, error) {
	f.id = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: id, Name: "Corte"}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"found", nil, http.StatusOK},
		{"not found", services.ErrServiceNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/services/{serviceId}", NewHandler(svc, logger.NewNop()).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/s-1", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "s-1", svc.id)
		})
	}
}
