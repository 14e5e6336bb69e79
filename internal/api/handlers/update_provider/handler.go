package update_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/providers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/providers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProvider    = "некорректные данные барбера"
	msgNotFound           = "барбер не найден"
)

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/providers/{providerId}
// Полностью заменяет имя, рабочие дни и расписание
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	var req models.ProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /providers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	provider, err := h.service.Update(r.Context(), providerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			h.logger.Warn("PUT /providers/{id} - Invalid provider: provider_id=%s, error=%v", providerID, err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidProvider+": "+err.Error())

		case errors.Is(err, providers.ErrProviderNotFound):
			h.logger.Warn("PUT /providers/{id} - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /providers/{id} - Failed to update provider: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /providers/{id} - Provider updated successfully: provider_id=%s", providerID)
	handlers.RespondJSON(w, http.StatusOK, provider)
}
