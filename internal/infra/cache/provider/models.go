package provider

import (
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// cachedProvider запись барбера в кэше, в формате справочника ({id, nome, diasDisponiveis, horarios})
type cachedProvider struct {
	ID            string           `json:"id"`
	Name          string           `json:"nome"`
	AvailableDays []string         `json:"diasDisponiveis"`
	WorkIntervals []cachedInterval `json:"horarios"`
}

type cachedInterval struct {
	Start     string `json:"inicio"`
	End       string `json:"fim"`
	Category  string `json:"tipo"`
	DayOfWeek string `json:"diaSemana"`
}

func toCached(p *domain.Provider) cachedProvider {
	days := make([]string, 0, len(p.AvailableDays))
	for _, d := range p.AvailableDays {
		days = append(days, d.String())
	}

	intervals := make([]cachedInterval, 0, len(p.WorkIntervals))
	for _, w := range p.WorkIntervals {
		intervals = append(intervals, cachedInterval{
			Start:     w.Start.String(),
			End:       w.End.String(),
			Category:  string(w.Category),
			DayOfWeek: w.DayOfWeek.String(),
		})
	}

	return cachedProvider{
		ID:            p.ID,
		Name:          p.Name,
		AvailableDays: days,
		WorkIntervals: intervals,
	}
}

func (c cachedProvider) toDomain() (*domain.Provider, error) {
	days := make([]domain.DayOfWeek, 0, len(c.AvailableDays))
	for _, label := range c.AvailableDays {
		d, err := domain.ParseDayOfWeek(label)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	intervals := make([]domain.WorkInterval, 0, len(c.WorkIntervals))
	for _, ci := range c.WorkIntervals {
		start, err := types.NewTimeStringFromString(ci.Start)
		if err != nil {
			return nil, fmt.Errorf("inicio: %w", err)
		}
		end, err := types.NewTimeStringFromString(ci.End)
		if err != nil {
			return nil, fmt.Errorf("fim: %w", err)
		}
		category, err := domain.ParseIntervalCategory(ci.Category)
		if err != nil {
			return nil, err
		}
		day, err := domain.ParseDayOfWeek(ci.DayOfWeek)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, domain.WorkInterval{
			Start:     start,
			End:       end,
			Category:  category,
			DayOfWeek: day,
		})
	}

	return &domain.Provider{
		ID:            c.ID,
		Name:          c.Name,
		AvailableDays: days,
		WorkIntervals: intervals,
	}, nil
}
