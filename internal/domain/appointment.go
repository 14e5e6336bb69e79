package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// ErrInvalidStatus возвращается при неизвестном статусе записи
var ErrInvalidStatus = errors.New("domain: invalid appointment status")

// AppointmentStatus статус записи (хранится в том же виде, что и в исходном приложении)
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pendente"
	StatusConfirmed AppointmentStatus = "Confirmado"
	StatusCancelled AppointmentStatus = "Cancelado"
)

// allowedTransitions граф переходов статусов: Pendente -> Confirmado|Cancelado, Confirmado -> Cancelado
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// ParseAppointmentStatus валидирует строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// CanTransitionTo проверяет допустимость перехода в новый статус
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment запись клиента к барберу
type Appointment struct {
	ID          string
	ClientName  string
	ClientEmail string // опционально, используется для "Мои записи"
	ServiceID   string
	ProviderID  string
	Date        time.Time        // дата без времени
	Time        types.TimeString // начало слота
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает слот
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// StartsAt возвращает дату записи с временем слота (минуты слота, секунды обнулены)
func (a *Appointment) StartsAt() time.Time {
	return a.Time.On(a.Date)
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	ProviderID       *string
	ClientEmail      *string
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *AppointmentStatus
	IncludeCancelled bool
}
