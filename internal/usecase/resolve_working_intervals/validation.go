package resolve_working_intervals

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProviderID) == "" {
		return fmt.Errorf("%w: providerId is required", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.ProviderID); err != nil {
		return fmt.Errorf("%w: providerId must be a UUID", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	return nil
}
