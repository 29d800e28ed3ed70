package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithID builds a request carrying a chi route parameter named "id".
func requestWithID(method, target, id string, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// Every by-id endpoint must reject a malformed 24-hex id before touching the
// store. The handlers here are built over nil stores, so any store access
// would panic the test.
func TestByIDEndpoints_RejectMalformedID(t *testing.T) {
	t.Parallel()

	projects := newProjectHandler(nil, nil, nil)
	skills := newSkillHandler(nil)
	education := newEducationHandler(nil)
	certifications := newCertificationHandler(nil)
	contacts := newContactHandler(nil, nil)

	tests := []struct {
		name    string
		method  string
		handler http.HandlerFunc
	}{
		{"update project", http.MethodPatch, projects.updateProject()},
		{"delete project", http.MethodDelete, projects.deleteProject()},
		{"archive project", http.MethodPatch, projects.toggleArchived()},
		{"update skill", http.MethodPatch, skills.updateSkill()},
		{"delete skill", http.MethodDelete, skills.deleteSkill()},
		{"update education", http.MethodPatch, education.updateEducation()},
		{"delete education", http.MethodDelete, education.deleteEducation()},
		{"update certification", http.MethodPatch, certifications.updateCertification()},
		{"delete certification", http.MethodDelete, certifications.deleteCertification()},
		{"mark message read", http.MethodPatch, contacts.setMessageRead(true)},
		{"mark message unread", http.MethodPatch, contacts.setMessageRead(false)},
		{"delete message", http.MethodDelete, contacts.deleteMessage()},
	}

	for _, badID := range []string{"not-an-id", "507f1f77bcf86cd79943901", "507f1f77bcf86cd79943901g", ""} {
		for _, tt := range tests {
			t.Run(tt.name+"/"+badID, func(t *testing.T) {
				rec := httptest.NewRecorder()
				tt.handler.ServeHTTP(rec, requestWithID(tt.method, "/", badID, ""))

				require.Equal(t, http.StatusBadRequest, rec.Code)
				body := decodeEnvelope(t, rec)
				assert.Equal(t, false, body["success"])
				assert.Contains(t, body["message"], "Invalid")
			})
		}
	}
}

func TestCreateContact_MissingField(t *testing.T) {
	t.Parallel()

	h := newContactHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/contacts",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","subject":"Hello"}`))
	rec := httptest.NewRecorder()
	h.createContact().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "All fields are required", body["error"])
	assert.Equal(t, "All fields are required", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestCreateContact_NonStringField(t *testing.T) {
	t.Parallel()

	h := newContactHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/contacts",
		strings.NewReader(`{"name":42,"email":"ada@example.com","subject":"Hello","message":"Hi"}`))
	rec := httptest.NewRecorder()
	h.createContact().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid input types", body["message"])
}

func TestCreateProject_MissingFields(t *testing.T) {
	t.Parallel()

	h := newProjectHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/projects",
		strings.NewReader(`{"title":"Portfolio"}`))
	rec := httptest.NewRecorder()
	h.createProject().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Contains(t, body["message"], "Missing required fields")
	assert.Contains(t, body["message"], "description")
	assert.Contains(t, body["message"], "technologies")
}
