package list_providers

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/providers/models"
)

type ProviderService interface {
	List(ctx context.Context) (*models.ProviderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
