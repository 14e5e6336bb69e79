package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientName  string           // Имя клиента, обязательно
	ClientEmail string           // Email клиента, опционально
	ServiceID   string           // Услуга (значение не проверяется по справочнику)
	ProviderID  string           // ID барбера
	Date        time.Time        // Дата записи (без времени)
	Time        types.TimeString // Время начала слота
}

// Response модель ответа с созданной записью
type Response struct {
	ID          string
	ClientName  string
	ClientEmail string
	ServiceID   string
	ProviderID  string
	Date        time.Time
	Time        types.TimeString
	Status      string

	CreatedAt time.Time
}
