package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("book_appointment: invalid date")

	// ErrUnknownService возвращается, когда услуги нет в прайс-листе
	ErrUnknownService = errors.New("book_appointment: unknown service")

	// ErrOutsideWorkingHours возвращается, когда время не является слотом барбера на эту дату
	ErrOutsideWorkingHours = errors.New("book_appointment: time is outside working hours")

	// ErrProviderNotFound возвращается, когда барбер не найден
	ErrProviderNotFound = errors.New("book_appointment: provider not found")

	// ErrSlotConflict возвращается, когда на это время уже есть активная запись
	ErrSlotConflict = errors.New("book_appointment: slot already taken")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	ErrStoreUnavailable = errors.New("book_appointment: store unavailable")
)
