package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	providerRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/provider"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// UseCase use case для получения свободных слотов барбера на дату
type UseCase struct {
	providers    ProviderDirectory
	appointments AppointmentStore
	metrics      Metrics
	granularity  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// granularity - шаг слотов в минутах (0 = значение по умолчанию)
func NewUseCase(
	providers ProviderDirectory,
	appointments AppointmentStore,
	metrics Metrics,
	granularity int,
	logger Logger,
) *UseCase {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	return &UseCase{
		providers:    providers,
		appointments: appointments,
		metrics:      metrics,
		granularity:  granularity,
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Результат не изменяет состояние и может устареть к моменту бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%s, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем барбера
	provider, err := uc.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%s not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get provider id=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrStoreUnavailable, err)
	}

	// 3. Рабочие интервалы на дату. День без работы - пустой список без обращения к записям
	intervals, err := availability.ResolveWorkingIntervals(provider, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to resolve intervals: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if len(intervals) == 0 {
		uc.logger.Info("GetAvailableSlots: provider=%s does not work on %s", req.ProviderID, req.Date.Format(domain.DateFormat))
		uc.metrics.ObserveFreeSlots(0)
		return uc.response(req, []types.TimeString{}), nil
	}

	// 4. Занятое время на дату
	occupied, err := uc.appointments.ListOccupiedTimes(ctx, req.ProviderID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied times: %v", err)
		return nil, fmt.Errorf("%w: failed to get occupied times: %v", ErrStoreUnavailable, err)
	}

	// 5. Свободные слоты за вычетом занятых и перерывов
	slots, err := availability.FreeSlots(provider, req.Date, occupied, uc.granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	uc.metrics.ObserveFreeSlots(len(slots))
	uc.logger.Info("GetAvailableSlots: %d free slots for provider=%s, date=%s",
		len(slots), req.ProviderID, req.Date.Format(domain.DateFormat))

	return uc.response(req, slots), nil
}

func (uc *UseCase) response(req *Request, slots []types.TimeString) *Response {
	return &Response{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Slots:      slots,
	}
}
