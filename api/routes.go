package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public read surface and the Bearer-gated admin
// surface under /api/v1, mirroring the deployed site.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/public", func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Get("/profile", handlers.adminHandler.getProfile())
			r.Post("/login", handlers.adminHandler.login())

			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/skills", handlers.skillHandler.getAllSkills())
			r.Get("/education", handlers.educationHandler.getAllEducation())
			r.Get("/certifications", handlers.certificationHandler.getAllCertifications())

			r.Post("/contacts", handlers.contactHandler.createContact())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)
			r.Use(authMiddleware.authenticate)

			r.Patch("/profile", handlers.adminHandler.updateProfile())
			r.Post("/change-password", handlers.adminHandler.changePassword())
			r.Post("/upload-avatar", handlers.adminHandler.uploadAvatar())

			r.Get("/dashboard/summary", handlers.dashboardHandler.getSummary())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Get("/projects/archived-featured", handlers.projectHandler.getArchivedAndFeatured())
			r.Patch("/projects/{id}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{id}", handlers.projectHandler.deleteProject())
			r.Patch("/projects/{id}/archive", handlers.projectHandler.toggleArchived())
			r.Post("/upload-project-image", handlers.projectHandler.uploadImage())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Patch("/skills/{id}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{id}", handlers.skillHandler.deleteSkill())

			r.Get("/education", handlers.educationHandler.getAllEducation())
			r.Post("/education", handlers.educationHandler.createEducation())
			r.Patch("/education/{id}", handlers.educationHandler.updateEducation())
			r.Delete("/education/{id}", handlers.educationHandler.deleteEducation())

			r.Post("/certifications", handlers.certificationHandler.createCertification())
			r.Patch("/certifications/{id}", handlers.certificationHandler.updateCertification())
			r.Delete("/certifications/{id}", handlers.certificationHandler.deleteCertification())

			r.Get("/messages", handlers.contactHandler.getAllMessages())
			r.Get("/messages/unread-count", handlers.contactHandler.getUnreadCount())
			r.Patch("/messages/{id}/read", handlers.contactHandler.setMessageRead(true))
			r.Patch("/messages/{id}/unread", handlers.contactHandler.setMessageRead(false))
			r.Delete("/messages/{id}", handlers.contactHandler.deleteMessage())
		})
	})
}
