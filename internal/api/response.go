package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSON marshals v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write JSON response")
	}
}

// WriteData writes a successful envelope.
func WriteData(w http.ResponseWriter, r *http.Request, data any) {
	WriteJSON(w, r, http.StatusOK, Envelope{
		Success:   true,
		Data:      data,
		RequestID: RequestIDFrom(r.Context()),
	})
}

// WriteError writes a failed envelope with the given message.
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSON(w, r, status, Envelope{
		Success:   false,
		Error:     message,
		RequestID: RequestIDFrom(r.Context()),
	})
}
