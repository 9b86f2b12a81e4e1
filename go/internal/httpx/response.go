// Package httpx holds the JSON envelope and request helpers shared by the
// REST services.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/leagueoffice/go/internal/apperrors"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

var devMode atomic.Bool

// SetDevMode controls whether 500 responses include the raw error.
func SetDevMode(enabled bool) {
	devMode.Store(enabled)
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteData writes a successful envelope.
func WriteData(w http.ResponseWriter, status int, data any, message string) {
	WriteJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

// WriteList writes a successful envelope with a count.
func WriteList(w http.ResponseWriter, data any, count int) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// WriteError converts err into the failure envelope. Domain errors keep their
// message and fields; anything else is a 500 with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Internal(err)
	}
	status := appErr.HTTPStatus()

	body := map[string]any{
		"success": false,
		"message": appErr.Message,
		"error":   string(appErr.Code),
	}
	for k, v := range appErr.Fields {
		body[k] = v
	}

	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("code", string(appErr.Code)).
			Msg("request failed")
		if devMode.Load() {
			body["detail"] = err.Error()
		}
	}

	WriteJSON(w, status, body)
}

// DecodeJSON decodes the request body into dst. Unknown fields are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.InvalidInput("body", "request body is required")
		}
		return apperrors.InvalidInput("body", "malformed JSON body: "+err.Error())
	}
	return nil
}

// PathUUID parses the named path value as a uuid.
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, apperrors.InvalidInput(name, "invalid "+name+": must be a uuid")
	}
	return id, nil
}

// QueryUUID parses an optional uuid query parameter.
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.InvalidInput(name, "invalid "+name+": must be a uuid")
	}
	return &id, nil
}
