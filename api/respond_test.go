package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResponder() Responder {
	return NewResponder(zerolog.Nop())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testResponder().WriteData(rec, http.StatusCreated, map[string]string{"id": "abc"}, "Created")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, float64(http.StatusCreated), body["statusCode"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
	assert.NotContains(t, body, "error")
}

func TestWriteError_ApiErr(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testResponder().WriteError(rec, errs.NewBadRequestError("All fields are required"))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "All fields are required", body["message"])
	assert.Equal(t, "All fields are required", body["error"])
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "data")
}

func TestWriteError_UnknownErrorCollapsesTo500(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testResponder().WriteError(rec, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "An unexpected error occurred", body["message"])
	assert.NotContains(t, body["error"], "pq:")
}

func TestWriteError_ConfigurationStaysGeneric(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testResponder().WriteError(rec, errs.NewConfigurationError(errors.New("JWT_SECRET is empty")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Server configuration error", body["message"])
	assert.NotContains(t, body["message"], "JWT_SECRET")
}

func TestWriteError_NotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testResponder().WriteError(rec, errs.NewNotFoundError("Project not found"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Project not found", body["message"])
}
