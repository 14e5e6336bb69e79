package resolve_working_intervals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	resolveWorkingIntervals "github.com/m04kA/SMC-BarberBooking/internal/usecase/resolve_working_intervals"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fakeUseCase struct {
	req  *resolveWorkingIntervals.Request
	resp *resolveWorkingIntervals.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *resolveWorkingIntervals.Request) (*resolveWorkingIntervals.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/providers/{providerId}/working-intervals", NewHandler(uc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &resolveWorkingIntervals.Response{
		ProviderID: "p-1",
		Date:       time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		DayOfWeek:  domain.Monday,
		Intervals:  []domain.TimeRange{{Start: "09:00", End: "12:00"}},
		Breaks:     []domain.TimeRange{},
	}}

	rec := serve(uc, "/providers/p-1/working-intervals?date=2024-03-04")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p-1", uc.req.ProviderID)

	var body WorkingIntervalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Segunda", body.DayOfWeek)
	assert.Equal(t, []TimeRangeJSON{{Start: "09:00", End: "12:00"}}, body.Intervals)
	assert.Equal(t, []TimeRangeJSON{}, body.Breaks)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"missing date", "/providers/p-1/working-intervals", nil, http.StatusBadRequest},
		{"malformed date", "/providers/p-1/working-intervals?date=04-03-2024", nil, http.StatusBadRequest},
		{"not found", "/providers/p-1/working-intervals?date=2024-03-04", resolveWorkingIntervals.ErrProviderNotFound, http.StatusNotFound},
		{"store unavailable", "/providers/p-1/working-intervals?date=2024-03-04",
			fmt.Errorf("%w: timeout", resolveWorkingIntervals.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"unexpected", "/providers/p-1/working-intervals?date=2024-03-04", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
