package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var (
	// ErrInvalidCategory возвращается при неизвестной категории интервала
	ErrInvalidCategory = errors.New("domain: invalid interval category")

	// ErrInvalidInterval возвращается, когда начало интервала не раньше конца
	ErrInvalidInterval = errors.New("domain: interval start must be before end")
)

// IntervalCategory категория интервала расписания
type IntervalCategory string

const (
	CategoryWork  IntervalCategory = "trabalho" // рабочее время, доступно для записи
	CategoryBreak IntervalCategory = "almoco"   // перерыв, для записи недоступен
)

// ParseIntervalCategory валидирует строковую категорию
func ParseIntervalCategory(s string) (IntervalCategory, error) {
	switch c := IntervalCategory(s); c {
	case CategoryWork, CategoryBreak:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// TimeRange полуоткрытый интервал времени суток [Start, End)
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// WorkInterval интервал расписания барбера на конкретный день недели
type WorkInterval struct {
	Start     types.TimeString
	End       types.TimeString
	Category  IntervalCategory
	DayOfWeek DayOfWeek
}

// Validate проверяет инварианты интервала
func (w WorkInterval) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return err
	}
	if err := w.End.Validate(); err != nil {
		return err
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, w.Start, w.End)
	}
	if _, err := ParseIntervalCategory(string(w.Category)); err != nil {
		return err
	}
	if !w.DayOfWeek.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidDayOfWeek, int(w.DayOfWeek))
	}
	return nil
}

// Range возвращает интервал без дня недели
func (w WorkInterval) Range() TimeRange {
	return TimeRange{Start: w.Start, End: w.End}
}

// Provider барбер и его недельное расписание
type Provider struct {
	ID            string
	Name          string
	AvailableDays []DayOfWeek
	WorkIntervals []WorkInterval // порядок заведения сохраняется

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorksOn проверяет, работает ли барбер в указанный день недели
func (p *Provider) WorksOn(day DayOfWeek) bool {
	for _, d := range p.AvailableDays {
		if d == day {
			return true
		}
	}
	return false
}
