package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ProviderID string    // ID барбера
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ProviderID string
	Date       time.Time
	Slots      []types.TimeString // По возрастанию, без повторов
}
