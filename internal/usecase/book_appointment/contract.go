package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// ProviderDirectory интерфейс справочника барберов
type ProviderDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
}

// ServiceCatalog интерфейс прайс-листа услуг
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// AppointmentStore интерфейс хранилища записей
type AppointmentStore interface {
	ListOccupiedTimes(ctx context.Context, providerID string, date time.Time) ([]types.TimeString, error)
	// Create атомарно создает запись или возвращает ErrSlotTaken, если слот занят
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий о записях
type EventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	ObserveBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
