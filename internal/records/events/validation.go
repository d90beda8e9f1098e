package events

import (
	"fmt"
	"strings"

	"github.com/workdesk/workdesk/internal/shared"
)

func (s *Service) validate(e Event) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: event name is required", shared.ErrValidation)
	}
	if strings.TrimSpace(e.Address) == "" {
		return fmt.Errorf("%w: event address is required", shared.ErrValidation)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: event date is required", shared.ErrValidation)
	}
	if strings.TrimSpace(e.StartTime) == "" || strings.TrimSpace(e.EndTime) == "" {
		return fmt.Errorf("%w: event start and end times are required", shared.ErrValidation)
	}
	if strings.TrimSpace(e.Type) == "" {
		return fmt.Errorf("%w: event type is required", shared.ErrValidation)
	}
	if e.Happened != "Yes" && e.Happened != "No" {
		return fmt.Errorf("%w: happend must be Yes or No", shared.ErrValidation)
	}
	return nil
}
