package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rajnish018/portfolio-admin-backend/auth"
	"github.com/rajnish018/portfolio-admin-backend/database"
	"github.com/rajnish018/portfolio-admin-backend/errs"
	"github.com/rajnish018/portfolio-admin-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder   Responder
	logger      zerolog.Logger
	accountRepo *database.AdminAccountRepo
	images      *services.ImageStore
	secret      []byte
	tokenTTL    time.Duration
}

func newAdminHandler(accountRepo *database.AdminAccountRepo, images *services.ImageStore, secret []byte, tokenTTL time.Duration) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		accountRepo: accountRepo,
		images:      images,
		secret:      secret,
		tokenTTL:    tokenTTL,
	}
}

// getProfile returns the sanitized admin profile for the public site.
func (h adminHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := h.accountRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin profile", err))
			return
		}
		if account == nil {
			h.responder.WriteError(w, errs.NewNotFound("admin profile"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, account, "")
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login verifies the submitted credential pair against the stored account and
// issues a signed bearer token with the fixed admin role claim.
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Email and password are required"))
			return
		}

		// re-read on every attempt so password changes take effect immediately
		account, err := h.accountRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin account", err))
			return
		}
		if account == nil || !auth.CheckPassword(account.Password, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		token, err := auth.IssueToken(account.Email, h.secret, h.tokenTTL)
		if err != nil {
			h.responder.WriteError(w, errs.NewConfigurationError(err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"profile": account,
			"token":   token,
		}, "Login successful")
	}
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// updateProfile updates the display name and optionally the avatar URL.
// Email, password and creation time are not reachable through this endpoint.
func (h adminHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("Name is required", "name"))
			return
		}

		account, err := h.accountRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin profile", err))
			return
		}
		if account == nil {
			h.responder.WriteError(w, errs.NewNotFound("admin profile"))
			return
		}

		account.Name = strings.TrimSpace(req.Name)
		if trimmed := strings.TrimSpace(req.Avatar); trimmed != "" {
			account.Avatar = trimmed
		}

		if err := h.accountRepo.Update(account); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "admin profile", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, account, "Profile updated successfully")
	}
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// changePassword verifies the old credential before storing a new hash.
// Nothing from the request body is ever logged on this path.
func (h adminHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.OldPassword == "" || req.NewPassword == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Both old and new passwords are required"))
			return
		}

		account, err := h.accountRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin profile", err))
			return
		}
		if account == nil {
			h.responder.WriteError(w, errs.NewNotFound("admin profile"))
			return
		}

		if !auth.CheckPassword(account.Password, req.OldPassword) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Old password is incorrect"))
			return
		}

		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("Failed to change password"))
			return
		}

		account.Password = hash
		if err := h.accountRepo.Update(account); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "admin profile", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, account, "Password updated successfully")
	}
}

// uploadAvatar replaces the admin avatar: the previous remote image is
// deleted best-effort, the new file is uploaded under a fresh key, and only
// the resulting URL is persisted on the account.
func (h adminHandler) uploadAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := ctxGetPrincipal(r.Context()); err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		if h.images == nil {
			h.responder.WriteError(w, errs.NewConfigurationError(errors.New("image store is not configured")))
			return
		}

		file, header, err := r.FormFile("avatar")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("Avatar file is required", "avatar"))
			return
		}
		defer file.Close()
		if r.MultipartForm != nil {
			// release any temp spill from multipart parsing
			defer r.MultipartForm.RemoveAll()
		}

		account, err := h.accountRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin profile", err))
			return
		}
		if account == nil {
			h.responder.WriteError(w, errs.NewNotFound("admin profile"))
			return
		}

		// best-effort removal of the superseded image
		if account.AvatarKey != "" {
			if err := h.images.Delete(r.Context(), account.AvatarKey); err != nil {
				h.logger.Warn().Err(err).Str("key", account.AvatarKey).Msg("Failed to delete previous avatar")
			}
		}

		key := "avatars/" + uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")

		url, err := h.images.Upload(r.Context(), key, contentType, file)
		if err != nil {
			h.responder.WriteError(w, errs.NewUpstreamError("image store", err))
			return
		}

		account.Avatar = url
		account.AvatarKey = key
		if err := h.accountRepo.Update(account); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "admin profile", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"url":     url,
			"profile": account,
		}, "Avatar uploaded successfully")
	}
}
