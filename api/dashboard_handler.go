package api

import (
	"net/http"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// The dashboard only reads aggregate figures, so it depends on the narrow
// stats slices of each store.
type projectStats interface {
	Count() (int64, error)
	CountByCategory() ([]models.CategoryCount, error)
	FindRecent(orderColumn string, limit int) ([]*models.Project, error)
}

type skillStats interface {
	Count() (int64, error)
}

type messageStats interface {
	CountUnread() (int64, error)
}

type dashboardHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo projectStats
	skillRepo   skillStats
	contactRepo messageStats
}

func newDashboardHandler(projectRepo projectStats, skillRepo skillStats, contactRepo messageStats) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		contactRepo: contactRepo,
	}
}

const recentProjectLimit = 6

// getSummary assembles the admin dashboard metrics. The independent count
// and listing queries run concurrently; the first error wins.
func (h dashboardHandler) getSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			totalProjects  int64
			totalSkills    int64
			unreadMessages int64
			distribution   []models.CategoryCount
			recentCreated  []*models.Project
			recentUpdated  []*models.Project
		)

		// The stores don't take a context, so a plain group is used rather
		// than one implying cancellation.
		var g errgroup.Group

		g.Go(func() (err error) {
			totalProjects, err = h.projectRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			totalSkills, err = h.skillRepo.Count()
			return err
		})
		g.Go(func() (err error) {
			unreadMessages, err = h.contactRepo.CountUnread()
			return err
		})
		g.Go(func() (err error) {
			distribution, err = h.projectRepo.CountByCategory()
			return err
		})
		g.Go(func() (err error) {
			recentCreated, err = h.projectRepo.FindRecent("created_at", recentProjectLimit)
			return err
		})
		g.Go(func() (err error) {
			recentUpdated, err = h.projectRepo.FindRecent("updated_at", recentProjectLimit)
			return err
		})

		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "dashboard summary", err))
			return
		}

		if distribution == nil {
			distribution = []models.CategoryCount{}
		}

		h.responder.WriteData(w, http.StatusOK, map[string]any{
			"totalProjects":          totalProjects,
			"unreadMessages":         unreadMessages,
			"totalSkills":            totalSkills,
			"skillsDistribution":     distribution,
			"recentProjectsCreated":  recentCreated,
			"recentProjectsUpdated":  recentUpdated,
		}, "Dashboard summary fetched successfully")
	}
}
