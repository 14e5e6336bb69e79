package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ErrInvalidDate возвращается для нулевой или некорректной даты
var ErrInvalidDate = errors.New("availability: invalid date")

// ResolveWorkingIntervals возвращает рабочие интервалы барбера на дату
//
// Если барбер не работает в этот день недели, возвращается пустой список.
// Интервалы категории "almoco" не включаются. Порядок - как в расписании.
func ResolveWorkingIntervals(provider *domain.Provider, date time.Time) ([]domain.TimeRange, error) {
	return resolve(provider, date, domain.CategoryWork)
}

// ResolveBreaks возвращает перерывы барбера на дату
func ResolveBreaks(provider *domain.Provider, date time.Time) ([]domain.TimeRange, error) {
	return resolve(provider, date, domain.CategoryBreak)
}

func resolve(provider *domain.Provider, date time.Time, category domain.IntervalCategory) ([]domain.TimeRange, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	result := make([]domain.TimeRange, 0)
	if provider == nil {
		return result, nil
	}

	day := domain.DayOfWeekFromDate(date)
	if !provider.WorksOn(day) {
		return result, nil
	}

	for _, interval := range provider.WorkIntervals {
		if interval.DayOfWeek != day || interval.Category != category {
			continue
		}
		result = append(result, interval.Range())
	}

	return result, nil
}

// validateDate отбрасывает нулевую дату и даты вне диапазона 4-значного года
func validateDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if y := date.Year(); y < 1 || y > 9999 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidDate, y)
	}
	return nil
}

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return date, nil
}
