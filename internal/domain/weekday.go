package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDayOfWeek возвращается при неизвестном дне недели
var ErrInvalidDayOfWeek = errors.New("domain: invalid day of week")

// DayOfWeek день недели по ISO: понедельник = 0, воскресенье = 6
// Единственное каноническое отображение - и при заведении расписания, и при расчете слотов
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// dayLabels подписи дней в хранимом формате расписания
var dayLabels = [...]string{
	Monday:    "Segunda",
	Tuesday:   "Terça",
	Wednesday: "Quarta",
	Thursday:  "Quinta",
	Friday:    "Sexta",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

// DayOfWeekFromDate вычисляет день недели даты
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	// time.Weekday: воскресенье = 0
	return DayOfWeek((int(date.Weekday()) + 6) % 7)
}

// ParseDayOfWeek разбирает подпись дня ("Segunda", "terca", "Sábado" ...)
func ParseDayOfWeek(label string) (DayOfWeek, error) {
	normalized := normalizeLabel(label)
	for i, l := range dayLabels {
		if normalizeLabel(l) == normalized {
			return DayOfWeek(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDayOfWeek, label)
}

// IsValid проверяет диапазон значения
func (d DayOfWeek) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// String возвращает подпись дня
func (d DayOfWeek) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayLabels[d]
}

func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("ç", "c", "á", "a").Replace(s)
}
