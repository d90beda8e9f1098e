package shared

import (
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// NormalizeEmail trims and case-folds an email address so lookups and the
// unique index agree on one canonical form.
func NormalizeEmail(email string) string {
	return fold.String(strings.TrimSpace(email))
}

// NormalizeAnswer trims and case-folds a security answer. Answers are stored
// and compared in this form only.
func NormalizeAnswer(answer string) string {
	return fold.String(strings.TrimSpace(answer))
}
