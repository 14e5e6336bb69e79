package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// FreeSlots считает свободные слоты барбера на дату:
// рабочие интервалы дня -> точки сетки без занятых -> без пересечений с перерывами.
// Используется и при показе слотов, и при проверке записи, чтобы правило было одно.
func FreeSlots(
	provider *domain.Provider,
	date time.Time,
	occupied []types.TimeString,
	granularity int,
) ([]types.TimeString, error) {
	intervals, err := ResolveWorkingIntervals(provider, date)
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return []types.TimeString{}, nil
	}

	breaks, err := ResolveBreaks(provider, date)
	if err != nil {
		return nil, err
	}

	slots := GenerateSlots(intervals, occupied, granularity)
	return ExcludeBreaks(slots, breaks, granularity), nil
}
