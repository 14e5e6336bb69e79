package book_appointment

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса до обращения к хранилищам
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.ClientEmail != "" {
		if len(req.ClientEmail) > domain.MaxClientEmailLength {
			return fmt.Errorf("%w: clientEmail is too long", ErrInvalidInput)
		}
		if _, err := mail.ParseAddress(req.ClientEmail); err != nil {
			return fmt.Errorf("%w: invalid clientEmail: %v", ErrInvalidInput, err)
		}
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.ServiceID); err != nil {
		return fmt.Errorf("%w: service must be a UUID", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ProviderID) == "" {
		return fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.ProviderID); err != nil {
		return fmt.Errorf("%w: barberId must be a UUID", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}
