package shared

import (
	"fmt"
	"time"

	internalShared "github.com/workdesk/workdesk/internal/shared"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate accepts the formats browser date inputs and API clients send.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", internalShared.ErrValidation, value)
}
