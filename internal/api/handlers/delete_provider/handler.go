package delete_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/providers"
)

const (
	msgNotFound = "барбер не найден"
	msgInUse    = "у барбера есть записи, удаление невозможно"
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

// Handle DELETE /api/v1/providers/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]

	if err := h.service.Delete(r.Context(), providerID); err != nil {
		switch {
		case errors.Is(err, providers.ErrProviderNotFound):
			h.logger.Warn("DELETE /providers/{id} - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, providers.ErrProviderInUse):
			h.logger.Warn("DELETE /providers/{id} - Provider has appointments: provider_id=%s", providerID)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /providers/{id} - Failed to delete provider: provider_id=%s, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id} - Provider deleted successfully: provider_id=%s", providerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
