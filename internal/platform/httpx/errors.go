package httpx

import (
	"errors"
	"net/http"

	"github.com/workdesk/workdesk/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Raw internal errors are
// never surfaced; anything unrecognized becomes a generic 500.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrEmailExists):
		Problem(w, http.StatusBadRequest, "Email Exists", err.Error())
	case errors.Is(err, shared.ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, shared.ErrWrongAnswer):
		Problem(w, http.StatusBadRequest, "Wrong Answer", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, shared.ErrTokenExpired), errors.Is(err, shared.ErrTokenInvalid):
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
