package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ErrInvalidService возвращается при некорректных данных услуги
var ErrInvalidService = errors.New("invalid service")

// ServiceRequest данные новой услуги прайс-листа
type ServiceRequest struct {
	Name        string `json:"nome"`
	Price       string `json:"preco"`   // "35.00"
	Duration    int    `json:"duracao"` // минуты
	Description string `json:"descricao"`
}

// ToDomain валидирует запрос и конвертирует в domain модель
func (r *ServiceRequest) ToDomain(id string) (*domain.Service, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrInvalidService)
	}
	if utf8.RuneCountInString(name) > domain.MaxServiceNameLength {
		return nil, fmt.Errorf("%w: nome exceeds %d characters", ErrInvalidService, domain.MaxServiceNameLength)
	}

	price, err := domain.ParsePrice(r.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: preco: %v", ErrInvalidService, err)
	}

	if r.Duration <= 0 || r.Duration > domain.MaxServiceDurationMinutes {
		return nil, fmt.Errorf("%w: duracao must be between 1 and %d minutes", ErrInvalidService, domain.MaxServiceDurationMinutes)
	}

	description := strings.TrimSpace(r.Description)
	if utf8.RuneCountInString(description) > domain.MaxServiceDescriptionLength {
		return nil, fmt.Errorf("%w: descricao exceeds %d characters", ErrInvalidService, domain.MaxServiceDescriptionLength)
	}

	return &domain.Service{
		ID:              id,
		Name:            name,
		PriceCents:      price,
		DurationMinutes: r.Duration,
		Description:     description,
	}, nil
}

// ServiceResponse услуга в формате прайс-листа
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Price       string    `json:"preco"`
	Duration    int       `json:"duracao"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       domain.FormatPrice(s.PriceCents),
		Duration:    s.DurationMinutes,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(list)),
	}
	for _, s := range list {
		if dto := FromDomainService(s); dto != nil {
			resp.Services = append(resp.Services, *dto)
		}
	}
	return resp
}
