package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rajnish018/portfolio-admin-backend/database"
	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/rajnish018/portfolio-admin-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// categoryFinder is the slice of the skill store the project handler needs
// for resolving category references.
type categoryFinder interface {
	FindByID(id string) (*models.Skill, error)
	FindByName(name string) (*models.Skill, error)
}

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	skillRepo   categoryFinder
	images      *services.ImageStore
}

func newProjectHandler(projectRepo *database.ProjectRepo, skillRepo categoryFinder, images *services.ImageStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		images:      images,
	}
}

type projectRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	GithubLink   string          `json:"githubLink"`
	LiveLink     string          `json:"liveLink"`
	Category     string          `json:"category"`
	Technologies json.RawMessage `json:"technologies"`
	Image        string          `json:"image"`
	IsArchived   json.RawMessage `json:"isArchived"`
	IsFeatured   json.RawMessage `json:"isFeatured"`
}

// resolveCategory maps a category given as a 24-hex skill id or a
// case-insensitive skill name to the referenced skill's id. A category that
// cannot be resolved fails the request; the reference is never persisted
// blindly.
func (h projectHandler) resolveCategory(category string) (string, error) {
	category = strings.TrimSpace(category)

	if models.IsValidID(category) {
		skill, err := h.skillRepo.FindByID(category)
		if err != nil {
			return "", wrapDatabaseError("find", "skill category", err)
		}
		if skill == nil {
			return "", errs.NewNotFoundError("Skill category not found")
		}
		return skill.ID, nil
	}

	skill, err := h.skillRepo.FindByName(category)
	if err != nil {
		return "", wrapDatabaseError("find", "skill category", err)
	}
	if skill == nil {
		return "", errs.NewNotFoundError("Skill category not found")
	}
	return skill.ID, nil
}

// createProject validates and persists a new project. The technologies field
// accepts a list, a JSON-encoded list string, or a comma-separated string.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var missing []string
		for field, value := range map[string]string{
			"title":       req.Title,
			"description": req.Description,
			"githubLink":  req.GithubLink,
			"liveLink":    req.LiveLink,
			"category":    req.Category,
		} {
			if strings.TrimSpace(value) == "" {
				missing = append(missing, field)
			}
		}
		if len(req.Technologies) == 0 {
			missing = append(missing, "technologies")
		}
		if len(missing) > 0 {
			h.responder.WriteError(w, errs.NewBadRequestError(
				fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))))
			return
		}

		technologies, err := normalizeStringList(req.Technologies)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
				"Technologies must contain at least one valid item", "technologies"))
			return
		}

		categoryID, err := h.resolveCategory(req.Category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		isArchived, err := parseFlexBool(req.IsArchived)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("isArchived must be a boolean", "isArchived"))
			return
		}
		isFeatured, err := parseFlexBool(req.IsFeatured)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("isFeatured must be a boolean", "isFeatured"))
			return
		}

		project := models.Project{
			Title:        strings.TrimSpace(req.Title),
			Description:  strings.TrimSpace(req.Description),
			GithubLink:   strings.TrimSpace(req.GithubLink),
			LiveLink:     strings.TrimSpace(req.LiveLink),
			Image:        strings.TrimSpace(req.Image),
			CategoryID:   categoryID,
			Technologies: technologies,
		}
		if isArchived != nil {
			project.IsArchived = *isArchived
		}
		if isFeatured != nil {
			project.IsFeatured = *isFeatured
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, created, "Project created successfully")
	}
}

// updateProject merges a partial update into an existing project. Category
// and technologies changes are re-validated before anything is written.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID format"))
			return
		}

		existing, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if trimmed := strings.TrimSpace(req.Title); trimmed != "" {
			fields["title"] = trimmed
		}
		if trimmed := strings.TrimSpace(req.Description); trimmed != "" {
			fields["description"] = trimmed
		}
		if trimmed := strings.TrimSpace(req.GithubLink); trimmed != "" {
			fields["github_link"] = trimmed
		}
		if trimmed := strings.TrimSpace(req.LiveLink); trimmed != "" {
			fields["live_link"] = trimmed
		}
		if trimmed := strings.TrimSpace(req.Image); trimmed != "" {
			fields["image"] = trimmed
		}

		if isArchived, err := parseFlexBool(req.IsArchived); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("isArchived must be a boolean", "isArchived"))
			return
		} else if isArchived != nil {
			fields["is_archived"] = *isArchived
		}
		if isFeatured, err := parseFlexBool(req.IsFeatured); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("isFeatured must be a boolean", "isFeatured"))
			return
		} else if isFeatured != nil {
			fields["is_featured"] = *isFeatured
		}

		if strings.TrimSpace(req.Category) != "" {
			categoryID, err := h.resolveCategory(req.Category)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			fields["category_id"] = categoryID
		}

		if len(req.Technologies) > 0 {
			technologies, err := normalizeStringList(req.Technologies)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestErrorWithField(
					"Technologies must be a non-empty array", "technologies"))
				return
			}
			fields["technologies"] = datatypes.NewJSONSlice(technologies)
		}

		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("No fields provided to update"))
			return
		}

		if err := h.projectRepo.UpdateFields(id, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, updated, "Project updated successfully")
	}
}

// deleteProject removes a project and returns the deleted snapshot.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID format"))
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projectRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, project, "Project deleted successfully")
	}
}

// getAllProjects lists projects for the public site with optional archived,
// category and search filters.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ProjectFilter{
			Search: strings.TrimSpace(r.URL.Query().Get("search")),
		}

		switch r.URL.Query().Get("archived") {
		case "true":
			v := true
			filter.Archived = &v
		case "false":
			v := false
			filter.Archived = &v
		}

		if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
			categoryID, err := h.resolveCategory(category)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			filter.CategoryID = categoryID
		}

		projects, err := h.projectRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"projects": projects,
		}, "Projects fetched successfully")
	}
}

// toggleArchived flips the archived flag on a project.
func (h projectHandler) toggleArchived() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid project ID format"))
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if err := h.projectRepo.UpdateFields(id, map[string]any{"is_archived": !project.IsArchived}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		message := "Project archived successfully"
		if !updated.IsArchived {
			message = "Project unarchived successfully"
		}
		h.responder.WriteData(w, http.StatusOK, updated, message)
	}
}

// getArchivedAndFeatured returns both admin panel collections in one call.
func (h projectHandler) getArchivedAndFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		archivedFlag := true
		archived, err := h.projectRepo.FindAll(database.ProjectFilter{Archived: &archivedFlag})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find archived", "projects", err))
			return
		}

		featured, err := h.projectRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "projects", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"archivedCount":    len(archived),
			"archivedProjects": archived,
			"featuredCount":    len(featured),
			"featuredProjects": featured,
		}, "Projects fetched successfully")
	}
}

// uploadImage stores a project image and returns its URL plus the stable key
// the client can later reference. Only the URL ends up on a project record.
func (h projectHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := ctxGetPrincipal(r.Context()); err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if h.images == nil {
			h.responder.WriteError(w, errs.NewConfigurationError(fmt.Errorf("image store is not configured")))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("Image file is required", "image"))
			return
		}
		defer file.Close()
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		key := "projects/project_" + uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")

		url, err := h.images.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewUpstreamError("image store", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"url":       url,
			"public_id": key,
		}, "Project image uploaded successfully")
	}
}
