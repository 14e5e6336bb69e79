package resolve_working_intervals

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_working_intervals: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("resolve_working_intervals: invalid date")

	// ErrProviderNotFound возвращается, когда барбер не найден
	ErrProviderNotFound = errors.New("resolve_working_intervals: provider not found")

	// ErrStoreUnavailable возвращается, когда справочник барберов недоступен
	ErrStoreUnavailable = errors.New("resolve_working_intervals: store unavailable")
)
