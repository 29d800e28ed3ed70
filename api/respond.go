package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rs/zerolog"
)

// envelope is the uniform response shape every endpoint honors: success
// responses carry {statusCode, data, message, success:true}; failures carry
// {statusCode, message, error, success:false}.
type envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
	Success    bool   `json:"success"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteData writes a success envelope with the given status code.
func (r Responder) WriteData(w http.ResponseWriter, statusCode int, data any, message string) {
	r.writeEnvelope(w, envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// WriteError maps err to a failure envelope. Expected failures arrive as
// *errs.ApiErr and keep their status code; anything else is logged and
// collapses to a generic 500 so no raw persistence or upstream error reaches
// the client.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeEnvelope(w, envelope{
			StatusCode: http.StatusInternalServerError,
			Message:    "An unexpected error occurred",
			Error:      "Internal Server Error",
			Success:    false,
		})
		return
	}

	message := apiErr.Error()

	// Configuration and upstream failures stay generic on the wire; the
	// underlying cause is logged, not exposed.
	if errs.IsConfiguration(apiErr) || errors.Is(apiErr, errs.ErrUpstream) {
		r.logger.Error().Msg(apiErr.GetFullError())
		message = "Server configuration error"
		if errors.Is(apiErr, errs.ErrUpstream) {
			message = "Upstream service failure"
		}
	} else if apiErr.Cause != nil {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	r.writeEnvelope(w, envelope{
		StatusCode: apiErr.StatusCode,
		Message:    message,
		Error:      message,
		Success:    false,
	})
}

func (r Responder) writeEnvelope(w http.ResponseWriter, env envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal first so an encoding failure can still produce a clean 500
	jsonData, err := json.Marshal(env)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(env.StatusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
