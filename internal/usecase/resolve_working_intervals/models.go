package resolve_working_intervals

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса рабочих интервалов
type Request struct {
	ProviderID string
	Date       time.Time
}

// Response рабочие интервалы и перерывы барбера на дату
type Response struct {
	ProviderID string
	Date       time.Time
	DayOfWeek  domain.DayOfWeek
	Intervals  []domain.TimeRange // порядок как в расписании
	Breaks     []domain.TimeRange
}
