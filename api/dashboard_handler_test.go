package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rajnish018/portfolio-admin-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProjectStats struct {
	count  int64
	dist   []models.CategoryCount
	recent []*models.Project
	err    error
}

func (s stubProjectStats) Count() (int64, error) {
	return s.count, s.err
}

func (s stubProjectStats) CountByCategory() ([]models.CategoryCount, error) {
	return s.dist, s.err
}

func (s stubProjectStats) FindRecent(orderColumn string, limit int) ([]*models.Project, error) {
	return s.recent, s.err
}

type stubSkillStats struct {
	count int64
}

func (s stubSkillStats) Count() (int64, error) {
	return s.count, nil
}

type stubMessageStats struct {
	unread int64
}

func (s stubMessageStats) CountUnread() (int64, error) {
	return s.unread, nil
}

func TestGetSummary(t *testing.T) {
	t.Parallel()

	projects := stubProjectStats{
		count: 7,
		dist: []models.CategoryCount{
			{Name: "Frontend", Value: 4},
			{Name: "Backend", Value: 3},
		},
		recent: []*models.Project{{ID: models.NewID(), Title: "Portfolio"}},
	}
	h := newDashboardHandler(projects, stubSkillStats{count: 5}, stubMessageStats{unread: 2})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	h.getSummary().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, float64(7), data["totalProjects"])
	assert.Equal(t, float64(5), data["totalSkills"])
	assert.Equal(t, float64(2), data["unreadMessages"])

	dist, ok := data["skillsDistribution"].([]any)
	require.True(t, ok)
	assert.Len(t, dist, 2)
	assert.Len(t, data["recentProjectsCreated"], 1)
	assert.Len(t, data["recentProjectsUpdated"], 1)
}

// An empty store still yields a present, empty distribution list.
func TestGetSummary_EmptyDistribution(t *testing.T) {
	t.Parallel()

	h := newDashboardHandler(stubProjectStats{}, stubSkillStats{}, stubMessageStats{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	h.getSummary().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	data := body["data"].(map[string]any)

	dist, ok := data["skillsDistribution"].([]any)
	require.True(t, ok)
	assert.Empty(t, dist)
}

func TestGetSummary_QueryFailure(t *testing.T) {
	t.Parallel()

	h := newDashboardHandler(
		stubProjectStats{err: errors.New("relation does not exist")},
		stubSkillStats{},
		stubMessageStats{},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	h.getSummary().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
}
