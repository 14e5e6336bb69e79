package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgMissingEmail = "clientEmail обязателен"
	msgInvalidEmail = "некорректный clientEmail"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?clientEmail=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("clientEmail")
	if email == "" {
		h.logger.Warn("GET /appointments - Missing clientEmail")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	list, err := h.service.ListByClient(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid clientEmail: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Client appointments retrieved successfully: count=%d", len(list.Appointments))
	handlers.RespondJSON(w, http.StatusOK, list)
}
