package resolve_working_intervals

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	resolveWorkingIntervals "github.com/m04kA/SMC-BarberBooking/internal/usecase/resolve_working_intervals"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgProviderNotFound = "барбер не найден"
	msgStoreUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	useCase ResolveWorkingIntervalsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveWorkingIntervalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/working-intervals
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/working-intervals - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(providerID, dateStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/working-intervals - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveWorkingIntervals.ErrInvalidDate):
			h.logger.Warn("GET /providers/{id}/working-intervals - Invalid date: provider_id=%s", providerID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, resolveWorkingIntervals.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/working-intervals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, resolveWorkingIntervals.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id}/working-intervals - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, resolveWorkingIntervals.ErrStoreUnavailable):
			h.logger.Error("GET /providers/{id}/working-intervals - Store unavailable: provider_id=%s, error=%v", providerID, err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /providers/{id}/working-intervals - Failed to resolve intervals: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/working-intervals - Intervals resolved: provider_id=%s, date=%s, intervals=%d",
		providerID, dateStr, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
