package projects

import (
	"fmt"
	"strings"

	"github.com/workdesk/workdesk/internal/shared"
)

var validStatuses = map[string]struct{}{
	"Planning":    {},
	"In Progress": {},
	"On Hold":     {},
	"Completed":   {},
}

func (s *Service) validate(p Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", shared.ErrValidation)
	}
	if strings.TrimSpace(p.Client) == "" {
		return fmt.Errorf("%w: client name is required", shared.ErrValidation)
	}
	if strings.TrimSpace(p.Manager) == "" {
		return fmt.Errorf("%w: project manager is required", shared.ErrValidation)
	}
	if p.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", shared.ErrValidation)
	}
	if _, ok := validStatuses[p.Status]; !ok {
		return fmt.Errorf("%w: status must be Planning, In Progress, On Hold or Completed", shared.ErrValidation)
	}
	if !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", shared.ErrValidation)
	}
	return nil
}
