package departments

import (
	"fmt"
	"strings"

	"github.com/workdesk/workdesk/internal/shared"
)

func (s *Service) validate(d Department) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: department name is required", shared.ErrValidation)
	}
	if strings.TrimSpace(d.Email) == "" {
		return fmt.Errorf("%w: department email is required", shared.ErrValidation)
	}
	if strings.TrimSpace(d.Responsible) == "" {
		return fmt.Errorf("%w: responsible person is required", shared.ErrValidation)
	}
	if d.Status != "Active" && d.Status != "Inactive" {
		return fmt.Errorf("%w: status must be Active or Inactive", shared.ErrValidation)
	}
	return nil
}
