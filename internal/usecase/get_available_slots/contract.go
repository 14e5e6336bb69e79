package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// ProviderDirectory интерфейс справочника барберов
type ProviderDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
}

// AppointmentStore интерфейс хранилища записей
type AppointmentStore interface {
	// ListOccupiedTimes возвращает время активных записей барбера на дату
	ListOccupiedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error)
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	ObserveFreeSlots(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
