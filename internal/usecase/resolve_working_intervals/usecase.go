package resolve_working_intervals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	providerRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/provider"
)

// UseCase use case определения рабочих интервалов барбера на дату
type UseCase struct {
	providers ProviderDirectory
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(providers ProviderDirectory, logger Logger) *UseCase {
	return &UseCase{
		providers: providers,
		logger:    logger,
	}
}

// Execute возвращает рабочие интервалы и перерывы барбера на дату
// Если барбер не работает в этот день недели, оба списка пустые
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveWorkingIntervals: provider=%s, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveWorkingIntervals: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбера
	provider, err := uc.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("ResolveWorkingIntervals: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("ResolveWorkingIntervals: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrStoreUnavailable, err)
	}

	// 3. Разрешаем расписание на дату
	intervals, err := availability.ResolveWorkingIntervals(provider, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	breaks, err := availability.ResolveBreaks(provider, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return &Response{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		DayOfWeek:  domain.DayOfWeekFromDate(req.Date),
		Intervals:  intervals,
		Breaks:     breaks,
	}, nil
}
