package provider

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Repository источник данных о барберах
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
