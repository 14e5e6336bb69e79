package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	providerRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/provider"
	serviceRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

// UseCase use case создания записи к барберу
type UseCase struct {
	providers    ProviderDirectory
	services     ServiceCatalog
	appointments AppointmentStore
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	granularity  int
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providers ProviderDirectory,
	services ServiceCatalog,
	appointments AppointmentStore,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	granularity int,
	logger Logger,
) *UseCase {
	if granularity <= 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	return &UseCase{
		providers:    providers,
		services:     services,
		appointments: appointments,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		granularity:  granularity,
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute создает запись в статусе Pendente
//
// На один (барбер, дата, время) не может существовать двух активных записей:
// хранилище выполняет проверку и вставку атомарно, проигравший в гонке получает ErrSlotConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: provider=%s, service=%s, date=%s, time=%s",
		req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		uc.metrics.ObserveBooking(metrics.BookingRejected)
		return nil, err
	}

	// 2. Получаем барбера
	provider, err := uc.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			uc.logger.Warn("BookAppointment: provider id=%s not found", req.ProviderID)
			uc.metrics.ObserveBooking(metrics.BookingRejected)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("BookAppointment: failed to get provider id=%s: %v", req.ProviderID, err)
		uc.metrics.ObserveBooking(metrics.BookingFailed)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrStoreUnavailable, err)
	}

	// 3. Услуга должна быть в прайс-листе
	if _, err := uc.services.GetByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%s not found", req.ServiceID)
			uc.metrics.ObserveBooking(metrics.BookingRejected)
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, req.ServiceID)
		}
		uc.logger.Error("BookAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		uc.metrics.ObserveBooking(metrics.BookingFailed)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrStoreUnavailable, err)
	}

	// 4. Время должно быть слотом барбера на эту дату (без учета занятости)
	schedule, err := availability.FreeSlots(provider, req.Date, nil, uc.granularity)
	if err != nil {
		uc.metrics.ObserveBooking(metrics.BookingRejected)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if !availability.Contains(schedule, req.Time) {
		uc.logger.Warn("BookAppointment: time=%s is not a slot of provider=%s on %s",
			req.Time, req.ProviderID, req.Date.Format(domain.DateFormat))
		uc.metrics.ObserveBooking(metrics.BookingRejected)
		return nil, fmt.Errorf("%w: %s on %s", ErrOutsideWorkingHours, req.Time, req.Date.Format(domain.DateFormat))
	}

	var result *domain.Appointment

	// 5. Проверка занятости и вставка в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 5.1. Занятое время барбера на дату (FOR UPDATE)
		occupied, err := uc.appointments.ListOccupiedTimes(txCtx, req.ProviderID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get occupied times: %v", ErrStoreUnavailable, err)
		}

		// 5.2. Проверяем, что слот свободен
		if availability.IsOccupied(req.Time, occupied, uc.granularity) {
			return ErrSlotConflict
		}

		// 5.3. Создаем запись. Конкурентная вставка на тот же слот отсекается индексом
		appt := &domain.Appointment{
			ID:          uc.newID(),
			ClientName:  strings.TrimSpace(req.ClientName),
			ClientEmail: strings.TrimSpace(req.ClientEmail),
			ServiceID:   req.ServiceID,
			ProviderID:  req.ProviderID,
			Date:        req.Date,
			Time:        req.Time,
			Status:      domain.StatusPending,
		}

		created, err := uc.appointments.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict):
			uc.logger.Warn("BookAppointment: slot provider=%s, date=%s, time=%s already taken",
				req.ProviderID, req.Date.Format(domain.DateFormat), req.Time)
			uc.metrics.ObserveBooking(metrics.BookingConflict)
			return nil, err
		case errors.Is(err, ErrStoreUnavailable):
			uc.logger.Error("BookAppointment: %v", err)
			uc.metrics.ObserveBooking(metrics.BookingFailed)
			return nil, err
		default:
			uc.logger.Error("BookAppointment: transaction failed: %v", err)
			uc.metrics.ObserveBooking(metrics.BookingFailed)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	uc.metrics.ObserveBooking(metrics.BookingCreated)
	uc.logger.Info("BookAppointment: successfully created appointment id=%s", result.ID)

	// 6. Событие публикуется после фиксации, ошибка публикации не отменяет запись
	uc.publish(ctx, result)

	return &Response{
		ID:          result.ID,
		ClientName:  result.ClientName,
		ClientEmail: result.ClientEmail,
		ServiceID:   result.ServiceID,
		ProviderID:  result.ProviderID,
		Date:        result.Date,
		Time:        result.Time,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
	}, nil
}

func (uc *UseCase) publish(ctx context.Context, appt *domain.Appointment) {
	err := uc.publisher.Publish(ctx, events.AppointmentEvent{
		Type:          events.TypeAppointmentCreated,
		AppointmentID: appt.ID,
		ProviderID:    appt.ProviderID,
		ServiceID:     appt.ServiceID,
		Date:          appt.Date.Format(domain.DateFormat),
		Time:          appt.Time.String(),
		Status:        string(appt.Status),
	})
	if err != nil {
		uc.logger.Warn("BookAppointment: failed to publish event for appointment id=%s: %v", appt.ID, err)
	}
}
