package providers

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ProviderRepository интерфейс репозитория барберов
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	List(ctx context.Context) ([]*domain.Provider, error)
	Update(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	Delete(ctx context.Context, id string) error
}

// ProviderCache интерфейс кэша справочника барберов
type ProviderCache interface {
	Invalidate(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
