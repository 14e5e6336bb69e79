package get_provider

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/providers/models"
)

type ProviderService interface {
	GetByID(ctx context.Context, id string) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
