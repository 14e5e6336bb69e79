package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	providerRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBooking/internal/service/providers/models"
)

// Service сервис справочника барберов: ведение расписаний
type Service struct {
	providerRepo ProviderRepository
	cache        ProviderCache
	txManager    TransactionManager
	newID        func() string
	logger       Logger
}

// NewService создает новый экземпляр сервиса барберов
// cache может быть nil, если кэш отключен
func NewService(
	providerRepo ProviderRepository,
	cache ProviderCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		providerRepo: providerRepo,
		cache:        cache,
		txManager:    txManager,
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Create создает барбера с расписанием
func (s *Service) Create(ctx context.Context, req *models.ProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Create: creating provider name=%s, days=%v, intervals=%d", req.Name, req.AvailableDays, len(req.WorkIntervals))

	provider, err := req.ToDomain(s.newID())
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.providerRepo.Create(txCtx, provider)
		if err != nil {
			return err
		}
		provider = created
		return nil
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created provider id=%s", provider.ID)
	return models.FromDomainProvider(provider), nil
}

// GetByID получает барбера с расписанием
func (s *Service) GetByID(ctx context.Context, id string) (*models.ProviderResponse, error) {
	s.logger.Info("GetByID: fetching provider id=%s", id)

	if !isValidID(id) {
		s.logger.Warn("GetByID: malformed provider id=%q", id)
		return nil, ErrProviderNotFound
	}

	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("GetByID: provider id=%s not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("GetByID: repository error for provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(provider), nil
}

// List получает всех барберов
func (s *Service) List(ctx context.Context) (*models.ProviderListResponse, error) {
	s.logger.Info("List: fetching providers")

	list, err := s.providerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d providers", len(list))
	return models.FromDomainProviderList(list), nil
}

// Update заменяет имя, рабочие дни и расписание барбера
// Существующие записи не пересчитываются
func (s *Service) Update(ctx context.Context, id string, req *models.ProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Update: updating provider id=%s", id)

	if !isValidID(id) {
		s.logger.Warn("Update: malformed provider id=%q", id)
		return nil, ErrProviderNotFound
	}

	provider, err := req.ToDomain(id)
	if err != nil {
		s.logger.Warn("Update: validation failed for provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		updated, err := s.providerRepo.Update(txCtx, provider)
		if err != nil {
			return err
		}
		provider = updated
		return nil
	})
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Update: provider id=%s not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Update: repository error for provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, id)

	s.logger.Info("Update: successfully updated provider id=%s", id)
	return models.FromDomainProvider(provider), nil
}

// Delete удаляет барбера вместе с расписанием. Барбера с записями удалить нельзя
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting provider id=%s", id)

	if !isValidID(id) {
		s.logger.Warn("Delete: malformed provider id=%q", id)
		return ErrProviderNotFound
	}

	if err := s.providerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Delete: provider id=%s not found", id)
			return ErrProviderNotFound
		}
		if errors.Is(err, providerRepo.ErrProviderHasAppointments) {
			s.logger.Warn("Delete: provider id=%s has appointments", id)
			return ErrProviderInUse
		}
		s.logger.Error("Delete: repository error for provider id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, id)

	s.logger.Info("Delete: successfully deleted provider id=%s", id)
	return nil
}

// invalidate сбрасывает кэш. Ошибка только логируется: запись истечет по TTL
func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("invalidate: failed to drop cached provider id=%s: %v", id, err)
	}
}

// isValidID проверяет, что id является UUID. Иначе строка не может совпасть ни с одним ключом
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
