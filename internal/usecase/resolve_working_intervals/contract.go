package resolve_working_intervals

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ProviderDirectory интерфейс справочника барберов
type ProviderDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
