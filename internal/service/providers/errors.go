package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда барбер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderInUse возвращается при удалении барбера, на которого есть записи
	ErrProviderInUse = errors.New("provider has appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
