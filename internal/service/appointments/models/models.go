package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListByProviderRequest запрос на получение записей барбера (расписание дня или все)
type ListByProviderRequest struct {
	ProviderID       string
	Date             *time.Time // Только записи на дату (опционально)
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByProviderRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		ProviderID:       &r.ProviderID,
		StartDate:        r.Date,
		EndDate:          r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// AppointmentResponse запись в формате API
type AppointmentResponse struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail,omitempty"`
	ServiceID   string    `json:"service"`
	ProviderID  string    `json:"barberId"`
	Date        string    `json:"date"` // RFC3339: дата записи со временем слота
	Time        string    `json:"time"` // "10:00"
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientEmail: a.ClientEmail,
		ServiceID:   a.ServiceID,
		ProviderID:  a.ProviderID,
		Date:        a.StartsAt().Format(time.RFC3339),
		Time:        a.Time.String(),
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if dto := FromDomainAppointment(appt); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
