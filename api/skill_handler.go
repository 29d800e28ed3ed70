package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// skillStore is the persistence surface the skill handler works against.
type skillStore interface {
	FindPage(page, limit int) ([]*models.Skill, int64, error)
	FindByID(id string) (*models.Skill, error)
	FindDuplicateName(name, excludeID string) (*models.Skill, error)
	Add(skill *models.Skill) error
	UpdateFields(id string, fields map[string]any) error
	Delete(id string) error
}

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo skillStore
}

func newSkillHandler(skillRepo skillStore) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type skillRequest struct {
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Items json.RawMessage `json:"items"`
}

// createSkill validates and persists a new skill category. The duplicate-name
// check is case-insensitive here; the unique index on name is the
// case-sensitive backstop at the persistence layer.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		icon := strings.TrimSpace(req.Icon)
		color := strings.TrimSpace(req.Color)
		if name == "" || icon == "" || color == "" || len(req.Items) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError(
				"All fields are required. Please provide name, icon, items, and color."))
			return
		}

		items, err := normalizeSkillItems(req.Items)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
				"Items must be a non-empty array. Please provide at least one item.", "items"))
			return
		}

		duplicate, err := h.skillRepo.FindDuplicateName(name, "")
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if duplicate != nil {
			h.responder.WriteError(w, errs.NewConflictError(
				fmt.Sprintf("A skill category called %q already exists.", name)))
			return
		}

		skill := models.Skill{
			Name:  name,
			Icon:  icon,
			Color: color,
			Items: items,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, skill, "Skill created successfully.")
	}
}

// updateSkill merges a partial update; a name change re-runs the duplicate
// check against every other record.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid skill category ID format"))
			return
		}

		existing, err := h.skillRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}

		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}

		if name := strings.TrimSpace(req.Name); name != "" {
			duplicate, err := h.skillRepo.FindDuplicateName(name, id)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
				return
			}
			if duplicate != nil {
				h.responder.WriteError(w, errs.NewConflictError(
					fmt.Sprintf("A skill category called %q already exists.", name)))
				return
			}
			fields["name"] = name
		}
		if icon := strings.TrimSpace(req.Icon); icon != "" {
			fields["icon"] = icon
		}
		if color := strings.TrimSpace(req.Color); color != "" {
			fields["color"] = color
		}
		if len(req.Items) > 0 {
			items, err := normalizeSkillItems(req.Items)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
					"Items must be a non-empty array when provided.", "items"))
				return
			}
			fields["items"] = datatypes.NewJSONSlice(items)
		}

		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError(
				"No fields provided to update. Supply at least one of: name, icon, items, color."))
			return
		}

		if err := h.skillRepo.UpdateFields(id, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		updated, err := h.skillRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "skill", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, updated,
			fmt.Sprintf("Skill %q updated successfully.", updated.Name))
	}
}

// deleteSkill removes a skill category and returns the deleted snapshot.
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid skill category ID format"))
			return
		}

		skill, err := h.skillRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Skill category not found"))
			return
		}

		if err := h.skillRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, skill,
			fmt.Sprintf("Skill category %q deleted successfully.", skill.Name))
	}
}

// getAllSkills returns one page of skills, newest first.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := parsePagination(r)

		skills, total, err := h.skillRepo.FindPage(page, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"skills":     skills,
			"pagination": newPagination(page, limit, total),
		}, "Skills fetched successfully.")
	}
}

// pagination is the page metadata attached to paginated listings.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func newPagination(page, limit int, total int64) pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// parsePagination reads page/limit query parameters, defaulting to 1/20 and
// clamping both to a minimum of 1.
func parsePagination(r *http.Request) (page, limit int) {
	page = 1
	limit = 20

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 1 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 1 {
		limit = v
	}
	return page, limit
}
