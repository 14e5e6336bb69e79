package book_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	bookAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ServiceID   string `json:"service"`
	ProviderID  string `json:"barberId"`
	Date        string `json:"date"` // "2024-03-04"
	Time        string `json:"time"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ServiceID   string `json:"service"`
	ProviderID  string `json:"barberId"`
	Date        string `json:"date"` // RFC3339: дата записи со временем слота
	Time        string `json:"time"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := availability.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &bookAppointment.Request{
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ServiceID:   r.ServiceID,
		ProviderID:  r.ProviderID,
		Date:        date,
		Time:        startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		ServiceID:   resp.ServiceID,
		ProviderID:  resp.ProviderID,
		Date:        resp.Time.On(resp.Date).Format(time.RFC3339),
		Time:        resp.Time.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
