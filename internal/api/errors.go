package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	apperrors "github.com/bankim/content-admin/internal/core/errors"
)

const msgInternalError = "internal server error"

var errMissingKey = errors.New("content key is required")

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidID),
		errors.Is(err, apperrors.ErrUnsupportedContentType),
		errors.Is(err, apperrors.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrContentItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeErr writes err with its mapped status. Server errors are logged and
// their details are not sent to the client.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteError(w, r, status, msgInternalError)

		return
	}

	WriteError(w, r, status, err.Error())
}
