package get_client_appointments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeService struct {
	email string
	err   error
}

func (f *fakeService) ListByClient(_ context.Context, email string) (*models.AppointmentListResponse, error) {
	f.email = email
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	svc := &fakeService{}

	rec := get(svc, "/appointments?clientEmail=maria%40example.com")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria@example.com", svc.email)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"missing email", "/appointments", nil, http.StatusBadRequest},
		{"invalid email", "/appointments?clientEmail=nope", fmt.Errorf("%w: invalid clientEmail", appointments.ErrInvalidInput), http.StatusBadRequest},
		{"internal", "/appointments?clientEmail=maria%40example.com", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&fakeService{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
