package list_services

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/services/models"
)

type ServiceCatalog interface {
	List(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
