package domain

// Значения по умолчанию
const (
	DefaultSlotGranularityMinutes = 60 // почасовые слоты
)

// Ограничения бизнес-валидации
const (
	MaxClientNameLength   = 200
	MaxClientEmailLength  = 254
	MaxProviderNameLength = 200
	MaxWorkIntervals      = 64

	MaxServiceNameLength        = 200
	MaxServiceDescriptionLength = 1000
	MaxServiceDurationMinutes   = 24 * 60
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// InactiveStatuses статусы, не занимающие слот
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}
