package resolve_working_intervals

import (
	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	resolveWorkingIntervals "github.com/m04kA/SMC-BarberBooking/internal/usecase/resolve_working_intervals"
)

// WorkingIntervalsResponse HTTP response model
type WorkingIntervalsResponse struct {
	ProviderID string          `json:"barberId"`
	Date       string          `json:"date"`
	DayOfWeek  string          `json:"diaSemana"`
	Intervals  []TimeRangeJSON `json:"intervals"`
	Breaks     []TimeRangeJSON `json:"breaks"`
}

// TimeRangeJSON интервал времени
type TimeRangeJSON struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// ToUseCaseRequest создает запрос use case из параметров URL
func ToUseCaseRequest(providerID, dateStr string) (*resolveWorkingIntervals.Request, error) {
	date, err := availability.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &resolveWorkingIntervals.Request{
		ProviderID: providerID,
		Date:       date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveWorkingIntervals.Response) *WorkingIntervalsResponse {
	return &WorkingIntervalsResponse{
		ProviderID: resp.ProviderID,
		Date:       resp.Date.Format(domain.DateFormat),
		DayOfWeek:  resp.DayOfWeek.String(),
		Intervals:  toJSONRanges(resp.Intervals),
		Breaks:     toJSONRanges(resp.Breaks),
	}
}

func toJSONRanges(ranges []domain.TimeRange) []TimeRangeJSON {
	result := make([]TimeRangeJSON, len(ranges))
	for i, r := range ranges {
		result[i] = TimeRangeJSON{
			Start: r.Start.String(),
			End:   r.End.String(),
		}
	}
	return result
}
