package appointments

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/events"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// Service сервис для работы с записями: просмотр и смена статуса
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	publisher       EventPublisher
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		publisher:       publisher,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	if !isValidID(id) {
		s.logger.Warn("GetByID: malformed appointment id=%q", id)
		return nil, ErrAppointmentNotFound
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByClient получает записи клиента по email, включая отмененные
func (s *Service) ListByClient(ctx context.Context, email string) (*models.AppointmentListResponse, error) {
	email = strings.TrimSpace(email)
	s.logger.Info("ListByClient: fetching appointments for client=%s", email)

	if email == "" {
		return nil, fmt.Errorf("%w: clientEmail is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid clientEmail", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		ClientEmail:      &email,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", email, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d appointments for client=%s", len(list), email)
	return models.FromDomainAppointmentList(list), nil
}

// ListByProvider получает записи барбера, опционально на конкретную дату
func (s *Service) ListByProvider(ctx context.Context, req *models.ListByProviderRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("ListByProvider: fetching appointments for provider=%s", req.ProviderID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	if strings.TrimSpace(req.ProviderID) == "" {
		return nil, fmt.Errorf("%w: providerId is required", ErrInvalidInput)
	}
	if !isValidID(req.ProviderID) {
		return nil, fmt.Errorf("%w: providerId must be a UUID", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListByProvider: repository error for provider=%s: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProvider: fetched %d appointments for provider=%s", len(list), req.ProviderID)
	return models.FromDomainAppointmentList(list), nil
}

// UpdateStatus меняет статус записи по графу Pendente -> Confirmado -> Cancelado
// Отмена освобождает слот для нового бронирования
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	newStatus, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !isValidID(id) {
		s.logger.Warn("UpdateStatus: malformed appointment id=%q", id)
		return nil, ErrAppointmentNotFound
	}

	var (
		updated        *domain.Appointment
		previousStatus domain.AppointmentStatus
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Запись блокируется до конца транзакции
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !appt.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				return ErrSlotTaken
			default:
				return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
			}
		}

		previousStatus = appt.Status
		appt.Status = newStatus
		updated = appt
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrSlotTaken):
			s.logger.Warn("UpdateStatus: appointment id=%s: %v", id, err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: appointment id=%s: %v", id, err)
			return nil, err
		default:
			s.logger.Error("UpdateStatus: transaction failed for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: appointment id=%s %s -> %s", id, previousStatus, newStatus)

	if err := s.publisher.Publish(ctx, events.AppointmentEvent{
		Type:           events.TypeAppointmentStatusChanged,
		AppointmentID:  updated.ID,
		ProviderID:     updated.ProviderID,
		ServiceID:      updated.ServiceID,
		Date:           updated.Date.Format(domain.DateFormat),
		Time:           updated.Time.String(),
		Status:         string(updated.Status),
		PreviousStatus: string(previousStatus),
	}); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish event for appointment id=%s: %v", id, err)
	}

	return models.FromDomainAppointment(updated), nil
}

// isValidID проверяет, что id является UUID
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
