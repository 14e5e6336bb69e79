package provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда барбер не найден
	ErrProviderNotFound = errors.New("provider.repository: provider not found")

	// ErrProviderHasAppointments возвращается при удалении барбера, на которого есть записи
	ErrProviderHasAppointments = errors.New("provider.repository: provider has appointments")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("provider.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")
)
