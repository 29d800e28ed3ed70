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
)

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	certificationRepo *database.CertificationRepo
}

func newCertificationHandler(certificationRepo *database.CertificationRepo) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		certificationRepo: certificationRepo,
	}
}

type certificationRequest struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req certificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		name := strings.TrimSpace(req.Name)
		issuer := strings.TrimSpace(req.Issuer)
		year := strings.TrimSpace(req.Year)
		if name == "" || issuer == "" || year == "" {
			h.responder.WriteError(w, errs.NewBadRequestError(
				"All fields are required: name, issuer, and year."))
			return
		}

		cert := models.Certification{
			Name:   name,
			Issuer: issuer,
			Year:   year,
		}

		if err := h.certificationRepo.Add(&cert); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certification", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, cert, "Certification created successfully.")
	}
}

func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid certification ID format"))
			return
		}

		existing, err := h.certificationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certification", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Certification not found"))
			return
		}

		var req certificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := map[string]any{}
		if name := strings.TrimSpace(req.Name); name != "" {
			fields["name"] = name
		}
		if issuer := strings.TrimSpace(req.Issuer); issuer != "" {
			fields["issuer"] = issuer
		}
		if year := strings.TrimSpace(req.Year); year != "" {
			fields["year"] = year
		}

		if len(fields) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError(
				"No fields provided to update. Supply at least one of: name, issuer, year."))
			return
		}

		if err := h.certificationRepo.UpdateFields(id, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certification", err))
			return
		}

		updated, err := h.certificationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "certification", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, updated, "Certification updated successfully.")
	}
}

func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			h.responder.WriteError(w, errs.NewBadRequestError("Invalid certification ID format"))
			return
		}

		cert, err := h.certificationRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certification", err))
			return
		}
		if cert == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Certification not found"))
			return
		}

		if err := h.certificationRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certification", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, cert, "Certification deleted successfully.")
	}
}

func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certs, err := h.certificationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certifications", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, certs, "Certifications fetched successfully.")
	}
}
