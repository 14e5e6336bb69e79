package events

import "time"

// Типы событий о записях
const (
	TypeAppointmentCreated       = "appointment.created"
	TypeAppointmentStatusChanged = "appointment.status_changed"
)

// AppointmentEvent событие жизненного цикла записи
type AppointmentEvent struct {
	ID             string    `json:"eventId"`
	Type           string    `json:"type"`
	AppointmentID  string    `json:"appointmentId"`
	ProviderID     string    `json:"barberId"`
	ServiceID      string    `json:"service"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}
