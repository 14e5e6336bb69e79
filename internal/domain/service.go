package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPrice возвращается при некорректной цене услуги
var ErrInvalidPrice = errors.New("domain: invalid price")

// Service услуга из прайс-листа барбершопа
type Service struct {
	ID              string
	Name            string
	PriceCents      int64 // цена в сентаво
	DurationMinutes int
	Description     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParsePrice разбирает цену вида "35", "35.5" или "35,50" в сентаво
func ParsePrice(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseUint(whole, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	cents, err := strconv.ParseUint(frac, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	return int64(units)*100 + int64(cents), nil
}

// FormatPrice форматирует сентаво как "35.50"
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
