package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/internal/service/services/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

const (
	serviceID = "c0a8012e-5b7d-4e2f-9a3c-7d1e4b6f8a20"
	missingID = "9a0e6f42-1b3c-4d5e-8f70-6c2b1a9d8e33"
)

type fakeRepository struct {
	services map[string]*domain.Service
	err      error
	calls    int
}

func (r *fakeRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	copied := *svc
	copied.CreatedAt = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	r.services[svc.ID] = &copied
	return &copied, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*domain.Service, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	svc, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (r *fakeRepository) List(_ context.Context) ([]*domain.Service, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Service, 0, len(r.services))
	for _, svc := range r.services {
		result = append(result, svc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	if _, ok := r.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := &fakeRepository{services: map[string]*domain.Service{}}
	svc := NewService(repo, logger.NewNop())
	svc.newID = func() string { return serviceID }
	return svc, repo
}

func validRequest() *models.ServiceRequest {
	return &models.ServiceRequest{
		Name:        " Corte ",
		Price:       "35,5",
		Duration:    30,
		Description: "Corte masculino",
	}
}

func TestService_Create(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, serviceID, resp.ID)
	assert.Equal(t, "Corte", resp.Name)
	assert.Equal(t, "35.50", resp.Price)
	assert.Equal(t, 30, resp.Duration)
	assert.Equal(t, int64(3550), repo.services[serviceID].PriceCents)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.ServiceRequest)
	}{
		{"empty name", func(r *models.ServiceRequest) { r.Name = "  " }},
		{"empty price", func(r *models.ServiceRequest) { r.Price = "" }},
		{"negative price", func(r *models.ServiceRequest) { r.Price = "-5" }},
		{"price with currency", func(r *models.ServiceRequest) { r.Price = "R$ 35" }},
		{"zero duration", func(r *models.ServiceRequest) { r.Duration = 0 }},
		{"duration over a day", func(r *models.ServiceRequest) { r.Duration = domain.MaxServiceDurationMinutes + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.calls)
		})
	}
}

func TestService_Create_RepositoryError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection refused")

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), serviceID)
	require.NoError(t, err)
	assert.Equal(t, "Corte", resp.Name)

	_, err = svc.GetByID(context.Background(), missingID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_List(t *testing.T) {
	svc, repo := newTestService()
	repo.services["s-2"] = &domain.Service{ID: "s-2", Name: "Barba", PriceCents: 2500, DurationMinutes: 20}
	repo.services["s-1"] = &domain.Service{ID: "s-1", Name: "Corte", PriceCents: 3500, DurationMinutes: 30}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Barba", resp.Services[0].Name)
	assert.Equal(t, "25.00", resp.Services[0].Price)
}

func TestService_List_Empty(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Services)
	assert.Empty(t, resp.Services)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()
	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), serviceID))
	assert.Empty(t, repo.services)

	assert.ErrorIs(t, svc.Delete(context.Background(), serviceID), ErrServiceNotFound)
}

func TestService_MalformedIDIsNotFound(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.GetByID(context.Background(), "corte")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "corte"), ErrServiceNotFound)
	assert.Zero(t, repo.calls)
}
