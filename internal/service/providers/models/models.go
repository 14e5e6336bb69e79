package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// ErrInvalidProvider возвращается при некорректных данных барбера
var ErrInvalidProvider = errors.New("invalid provider")

// Request модели

// ProviderRequest данные барбера для создания и обновления
type ProviderRequest struct {
	Name          string            `json:"nome"`
	AvailableDays []string          `json:"diasDisponiveis"`
	WorkIntervals []WorkIntervalDTO `json:"horarios"`
}

// WorkIntervalDTO интервал расписания в формате справочника
type WorkIntervalDTO struct {
	Start     string `json:"inicio"`    // "09:00"
	End       string `json:"fim"`       // "18:00"
	Category  string `json:"tipo"`      // "trabalho" | "almoco"
	DayOfWeek string `json:"diaSemana"` // "Segunda" ...
}

// ToDomain валидирует запрос и конвертирует в domain модель
// Дни недели дедуплицируются, порядок интервалов сохраняется
func (r *ProviderRequest) ToDomain(id string) (*domain.Provider, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrInvalidProvider)
	}
	if utf8.RuneCountInString(name) > domain.MaxProviderNameLength {
		return nil, fmt.Errorf("%w: nome exceeds %d characters", ErrInvalidProvider, domain.MaxProviderNameLength)
	}

	days := make([]domain.DayOfWeek, 0, len(r.AvailableDays))
	seen := make(map[domain.DayOfWeek]bool, len(r.AvailableDays))
	for _, label := range r.AvailableDays {
		day, err := domain.ParseDayOfWeek(label)
		if err != nil {
			return nil, fmt.Errorf("%w: diasDisponiveis: %v", ErrInvalidProvider, err)
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	if len(r.WorkIntervals) > domain.MaxWorkIntervals {
		return nil, fmt.Errorf("%w: at most %d horarios allowed", ErrInvalidProvider, domain.MaxWorkIntervals)
	}

	intervals := make([]domain.WorkInterval, 0, len(r.WorkIntervals))
	for i, dto := range r.WorkIntervals {
		interval, err := dto.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: horarios[%d]: %v", ErrInvalidProvider, i, err)
		}
		intervals = append(intervals, interval)
	}

	return &domain.Provider{
		ID:            id,
		Name:          name,
		AvailableDays: days,
		WorkIntervals: intervals,
	}, nil
}

func (d WorkIntervalDTO) toDomain() (domain.WorkInterval, error) {
	start, err := types.NewTimeStringFromString(d.Start)
	if err != nil {
		return domain.WorkInterval{}, fmt.Errorf("inicio: %w", err)
	}
	end, err := types.NewTimeStringFromString(d.End)
	if err != nil {
		return domain.WorkInterval{}, fmt.Errorf("fim: %w", err)
	}
	category, err := domain.ParseIntervalCategory(d.Category)
	if err != nil {
		return domain.WorkInterval{}, err
	}
	day, err := domain.ParseDayOfWeek(d.DayOfWeek)
	if err != nil {
		return domain.WorkInterval{}, err
	}

	interval := domain.WorkInterval{
		Start:     start,
		End:       end,
		Category:  category,
		DayOfWeek: day,
	}
	if err := interval.Validate(); err != nil {
		return domain.WorkInterval{}, err
	}
	return interval, nil
}

// Response модели

// ProviderResponse барбер в формате справочника
type ProviderResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"nome"`
	AvailableDays []string          `json:"diasDisponiveis"`
	WorkIntervals []WorkIntervalDTO `json:"horarios"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ProviderListResponse ответ со списком барберов
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// Методы конвертации

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	if p == nil {
		return nil
	}

	days := make([]string, 0, len(p.AvailableDays))
	for _, d := range p.AvailableDays {
		days = append(days, d.String())
	}

	intervals := make([]WorkIntervalDTO, 0, len(p.WorkIntervals))
	for _, w := range p.WorkIntervals {
		intervals = append(intervals, WorkIntervalDTO{
			Start:     w.Start.String(),
			End:       w.End.String(),
			Category:  string(w.Category),
			DayOfWeek: w.DayOfWeek.String(),
		})
	}

	return &ProviderResponse{
		ID:            p.ID,
		Name:          p.Name,
		AvailableDays: days,
		WorkIntervals: intervals,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainProviderList конвертирует список domain моделей в DTO
func FromDomainProviderList(providers []*domain.Provider) *ProviderListResponse {
	resp := &ProviderListResponse{
		Providers: make([]ProviderResponse, 0, len(providers)),
	}
	for _, p := range providers {
		if dto := FromDomainProvider(p); dto != nil {
			resp.Providers = append(resp.Providers, *dto)
		}
	}
	return resp
}
