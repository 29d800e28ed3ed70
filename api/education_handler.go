package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rajnish018/portfolio-admin-backend/database"
	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
}

func newEducationHandler(educationRepo *database.EducationRepo) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
	}
}

type educationRequest struct {
	Degree       string          `json:"degree"`
	Institution  string          `json:"institution"`
	Year         string          `json:"year"`
	Achievements json.RawMessage `json:"achievements"`
}

func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req educationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		degree := strings.TrimSpace(req.Degree)
		institution := strings.TrimSpace(req.Institution)
		year := strings.TrimSpace(req.Year)
		if degree == "" || institution == "" || year == "" || len(req.Achievements) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError(
				"All fields are required. Please provide degree, institution, year, and achievements."))
			return
		}

		achievements, err := normalizeStringList(req.Achievements)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
				"Achievements must contain at least one valid entry.", "achievements"))
			return
		}

		record := models.Education{
			Degree:       degree,
			Institution:  institution,
			Year:         year,
			Achievements: achievements,
		}

		if err := h.educationRepo.Add(&record); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "education record", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, record, "Education record created successfully.")
	}
}

func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid education ID format"))
			return
		}

		existing, err := h.educationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education record", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Education record not found"))
			return
		}

		var req educationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if degree := strings.TrimSpace(req.Degree); degree != "" {
			fields["degree"] = degree
		}
		if institution := strings.TrimSpace(req.Institution); institution != "" {
			fields["institution"] = institution
		}
		if year := strings.TrimSpace(req.Year); year != "" {
			fields["year"] = year
		}
		if len(req.Achievements) > 0 {
			achievements, err := normalizeStringList(req.Achievements)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
					"Achievements must contain at least one valid entry.", "achievements"))
				return
			}
			fields["achievements"] = datatypes.NewJSONSlice(achievements)
		}

		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError(
				"No fields provided to update. Supply at least one of: degree, institution, year, achievements."))
			return
		}

		if err := h.educationRepo.UpdateFields(id, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "education record", err))
			return
		}

		updated, err := h.educationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "education record", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, updated, "Education record updated successfully.")
	}
}

func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid education ID format"))
			return
		}

		record, err := h.educationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education record", err))
			return
		}
		if record == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Education record not found"))
			return
		}

		if err := h.educationRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "education record", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, record, "Education record deleted successfully.")
	}
}

// getAllEducation lists education records with optional search over degree
// and institution and an optional sort key (default newest year first).
func (h educationHandler) getAllEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := strings.TrimSpace(r.URL.Query().Get("search"))
		sort := strings.TrimSpace(r.URL.Query().Get("sort"))

		records, err := h.educationRepo.FindAll(search, sort)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education records", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, records, "Education records fetched successfully.")
	}
}
