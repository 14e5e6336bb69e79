package resolve_working_intervals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	providerRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

const (
	providerID = "3f1c2b7e-8d4a-4c6e-9b1f-2a7d5e9c0b11"
	missingID  = "9a0e6f42-1b3c-4d5e-8f70-6c2b1a9d8e33"
)

type fakeProviders struct {
	provider *domain.Provider
	err      error
	calls    int
}

func (f *fakeProviders) GetByID(_ context.Context, id string) (*domain.Provider, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.provider == nil || f.provider.ID != id {
		return nil, providerRepo.ErrProviderNotFound
	}
	return f.provider, nil
}

func newProvider() *domain.Provider {
	return &domain.Provider{
		ID:            providerID,
		AvailableDays: []domain.DayOfWeek{domain.Saturday},
		WorkIntervals: []domain.WorkInterval{
			{Start: "08:00", End: "12:00", Category: domain.CategoryWork, DayOfWeek: domain.Saturday},
			{Start: "12:00", End: "13:00", Category: domain.CategoryBreak, DayOfWeek: domain.Saturday},
			{Start: "13:00", End: "17:00", Category: domain.CategoryWork, DayOfWeek: domain.Saturday},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	saturday := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

	t.Run("intervals and breaks", func(t *testing.T) {
		uc := NewUseCase(&fakeProviders{provider: newProvider()}, logger.NewNop())

		resp, err := uc.Execute(context.Background(), &Request{ProviderID: providerID, Date: saturday})
		require.NoError(t, err)
		assert.Equal(t, domain.Saturday, resp.DayOfWeek)
		assert.Equal(t, []domain.TimeRange{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		}, resp.Intervals)
		assert.Equal(t, []domain.TimeRange{{Start: "12:00", End: "13:00"}}, resp.Breaks)
	})

	t.Run("day off", func(t *testing.T) {
		uc := NewUseCase(&fakeProviders{provider: newProvider()}, logger.NewNop())

		resp, err := uc.Execute(context.Background(), &Request{ProviderID: providerID, Date: saturday.AddDate(0, 0, 1)})
		require.NoError(t, err)
		assert.Empty(t, resp.Intervals)
		assert.Empty(t, resp.Breaks)
	})

	t.Run("repeated calls are identical", func(t *testing.T) {
		uc := NewUseCase(&fakeProviders{provider: newProvider()}, logger.NewNop())
		req := &Request{ProviderID: providerID, Date: saturday}

		first, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name    string
			repo    *fakeProviders
			req     *Request
			wantErr error
		}{
			{"empty provider", &fakeProviders{}, &Request{Date: saturday}, ErrInvalidInput},
			{"malformed provider id", &fakeProviders{err: errors.New("invalid input syntax for type uuid")}, &Request{ProviderID: "abc", Date: saturday}, ErrInvalidInput},
			{"zero date", &fakeProviders{}, &Request{ProviderID: providerID}, ErrInvalidDate},
			{"not found", &fakeProviders{}, &Request{ProviderID: missingID, Date: saturday}, ErrProviderNotFound},
			{"store down", &fakeProviders{err: errors.New("timeout")}, &Request{ProviderID: providerID, Date: saturday}, ErrStoreUnavailable},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := NewUseCase(tt.repo, logger.NewNop())
				_, err := uc.Execute(context.Background(), tt.req)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.wantErr == ErrInvalidInput {
					assert.Zero(t, tt.repo.calls)
				}
			})
		}
	})
}
