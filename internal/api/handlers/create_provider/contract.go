package create_provider

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/providers/models"
)

type ProviderService interface {
	Create(ctx context.Context, req *models.ProviderRequest) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
