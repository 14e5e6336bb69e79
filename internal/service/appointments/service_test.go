package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

const (
	appointmentID = "5e2d8c1a-7f3b-4a9e-b6d4-0c1e2f3a4b5c"
	providerID    = "3f1c2b7e-8d4a-4c6e-9b1f-2a7d5e9c0b11"
	missingID     = "9a0e6f42-1b3c-4d5e-8f70-6c2b1a9d8e33"
)

var testDate = time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

type fakeRepository struct {
	appointments map[string]*domain.Appointment
	lastFilter   domain.AppointmentsFilter
	err          error
	updateErr    error
	calls        int
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepository) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.calls++
	r.lastFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		result = append(result, a)
	}
	return result, nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	r.calls++
	if r.updateErr != nil {
		return r.updateErr
	}
	a, ok := r.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	events []events.AppointmentEvent
}

func (p *fakePublisher) Publish(_ context.Context, event events.AppointmentEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newTestService(status domain.AppointmentStatus) (*Service, *fakeRepository, *fakePublisher) {
	repo := &fakeRepository{appointments: map[string]*domain.Appointment{
		appointmentID: {
			ID:          appointmentID,
			ClientName:  "Maria",
			ClientEmail: "maria@example.com",
			ServiceID:   "corte",
			ProviderID:  providerID,
			Date:        testDate,
			Time:        "10:00",
			Status:      status,
		},
	}}
	pub := &fakePublisher{}
	return NewService(repo, fakeTxManager{}, pub, logger.NewNop()), repo, pub
}

func TestService_GetByID(t *testing.T) {
	svc, _, _ := newTestService(domain.StatusPending)

	resp, err := svc.GetByID(context.Background(), appointmentID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04T10:00:00Z", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, providerID, resp.ProviderID)

	_, err = svc.GetByID(context.Background(), missingID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetByID_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestService(domain.StatusPending)
	repo.err = errors.New("connection refused")

	_, err := svc.GetByID(context.Background(), appointmentID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListByClient(t *testing.T) {
	svc, repo, _ := newTestService(domain.StatusCancelled)

	resp, err := svc.ListByClient(context.Background(), " maria@example.com ")
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	assert.Equal(t, ptr.Ptr("maria@example.com"), repo.lastFilter.ClientEmail)
	assert.True(t, repo.lastFilter.IncludeCancelled)

	_, err = svc.ListByClient(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListByClient(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ListByProvider(t *testing.T) {
	svc, repo, _ := newTestService(domain.StatusPending)

	_, err := svc.ListByProvider(context.Background(), &models.ListByProviderRequest{ProviderID: providerID, Date: &testDate})
	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(providerID), repo.lastFilter.ProviderID)
	assert.Equal(t, &testDate, repo.lastFilter.StartDate)
	assert.Equal(t, &testDate, repo.lastFilter.EndDate)
	assert.False(t, repo.lastFilter.IncludeCancelled)

	_, err = svc.ListByProvider(context.Background(), &models.ListByProviderRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		wantErr error
	}{
		{"confirm pending", domain.StatusPending, "Confirmado", nil},
		{"cancel pending", domain.StatusPending, "Cancelado", nil},
		{"cancel confirmed", domain.StatusConfirmed, "Cancelado", nil},
		{"reopen cancelled", domain.StatusCancelled, "Pendente", ErrInvalidTransition},
		{"confirm cancelled", domain.StatusCancelled, "Confirmado", ErrInvalidTransition},
		{"back to pending", domain.StatusConfirmed, "Pendente", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "Done", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, pub := newTestService(tt.from)

			resp, err := svc.UpdateStatus(context.Background(), appointmentID, &models.UpdateStatusRequest{Status: tt.to})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.appointments[appointmentID].Status)
				assert.Empty(t, pub.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			assert.Equal(t, domain.AppointmentStatus(tt.to), repo.appointments[appointmentID].Status)
			require.Len(t, pub.events, 1)
			assert.Equal(t, events.TypeAppointmentStatusChanged, pub.events[0].Type)
			assert.Equal(t, string(tt.from), pub.events[0].PreviousStatus)
		})
	}
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, _, _ := newTestService(domain.StatusPending)

		_, err := svc.UpdateStatus(context.Background(), missingID, &models.UpdateStatusRequest{Status: "Cancelado"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo, _ := newTestService(domain.StatusPending)
		repo.updateErr = errors.New("deadlock detected")

		_, err := svc.UpdateStatus(context.Background(), appointmentID, &models.UpdateStatusRequest{Status: "Confirmado"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_MalformedIDs(t *testing.T) {
	for _, id := range []string{"abc", "a-1", "5e2d8c1a-7f3b"} {
		t.Run(id, func(t *testing.T) {
			svc, repo, pub := newTestService(domain.StatusPending)

			_, err := svc.GetByID(context.Background(), id)
			assert.ErrorIs(t, err, ErrAppointmentNotFound)

			_, err = svc.UpdateStatus(context.Background(), id, &models.UpdateStatusRequest{Status: "Cancelado"})
			assert.ErrorIs(t, err, ErrAppointmentNotFound)

			_, err = svc.ListByProvider(context.Background(), &models.ListByProviderRequest{ProviderID: id})
			assert.ErrorIs(t, err, ErrInvalidInput)

			assert.Zero(t, repo.calls)
			assert.Empty(t, pub.events)
		})
	}
}
