package get_provider_appointments

import (
	"strconv"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из параметров URL
// date и includeCancelled опциональны
func ToServiceRequest(providerID, dateStr, includeCancelledStr string) (*models.ListByProviderRequest, error) {
	req := &models.ListByProviderRequest{
		ProviderID: providerID,
	}

	if dateStr != "" {
		date, err := availability.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
