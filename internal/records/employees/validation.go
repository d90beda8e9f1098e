package employees

import (
	"fmt"
	"strings"

	"github.com/workdesk/workdesk/internal/shared"
)

func (s *Service) validate(e Employee) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: employee name is required", shared.ErrValidation)
	}
	if e.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date of birth is required", shared.ErrValidation)
	}
	if e.Gender != "Male" && e.Gender != "Female" {
		return fmt.Errorf("%w: gender must be Male or Female", shared.ErrValidation)
	}
	if strings.TrimSpace(e.Email) == "" {
		return fmt.Errorf("%w: employee email is required", shared.ErrValidation)
	}
	if strings.TrimSpace(e.Designation) == "" {
		return fmt.Errorf("%w: designation is required", shared.ErrValidation)
	}
	if e.JoiningDate.IsZero() {
		return fmt.Errorf("%w: joining date is required", shared.ErrValidation)
	}
	return nil
}
