package api

import (
	"time"

	"github.com/rajnish018/portfolio-admin-backend/database"
	"github.com/rajnish018/portfolio-admin-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, images *services.ImageStore, notifier services.ContactNotifier, secret []byte, tokenTTL time.Duration) *routeHandlers {
	return &routeHandlers{
		adminHandler:         newAdminHandler(db.AdminAccountRepo(), images, secret, tokenTTL),
		projectHandler:       newProjectHandler(db.ProjectRepo(), db.SkillRepo(), images),
		skillHandler:         newSkillHandler(db.SkillRepo()),
		educationHandler:     newEducationHandler(db.EducationRepo()),
		certificationHandler: newCertificationHandler(db.CertificationRepo()),
		contactHandler:       newContactHandler(db.ContactMessageRepo(), notifier),
		dashboardHandler:     newDashboardHandler(db.ProjectRepo(), db.SkillRepo(), db.ContactMessageRepo()),
	}
}
