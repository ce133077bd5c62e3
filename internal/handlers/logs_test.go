package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/internal/models"
)

type fakeLogService struct {
	page      *models.RenderedLogPage
	err       error
	gotGuild  string
	gotQuery  models.LogsQuery
	allCalled bool
}

func (f *fakeLogService) GetGuildLogs(ctx context.Context, guildID string, query models.LogsQuery) (*models.RenderedLogPage, error) {
	f.gotGuild = guildID
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *fakeLogService) GetAllLogs(ctx context.Context, query models.LogsQuery) (*models.RenderedLogPage, error) {
	f.allCalled = true
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func newLogsRouter(svc *fakeLogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewLogsHandler(svc)

	router := gin.New()
	router.GET("/api/v1/guilds/:id/logs", handler.GetGuildLogs)
	router.GET("/api/v1/logs", handler.GetAllLogs)
	return router
}

func TestGetGuildLogs_DefaultsAndPassthrough(t *testing.T) {
	svc := &fakeLogService{
		page: &models.RenderedLogPage{
			Logs:  []*models.RenderedLog{{ID: 1, Message: "Nefretta joined"}},
			Total: 1,
		},
	}
	router := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guilds/guild-1/logs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "guild-1", svc.gotGuild)
	assert.Equal(t, 1, svc.gotQuery.Page)
	assert.Equal(t, 25, svc.gotQuery.Limit)

	var page models.RenderedLogPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Logs, 1)
	assert.Equal(t, "Nefretta joined", page.Logs[0].Message)
}

func TestGetGuildLogs_FilterParams(t *testing.T) {
	svc := &fakeLogService{page: &models.RenderedLogPage{}}
	router := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/guilds/guild-1/logs?page=3&limit=50&type=stash&user=Nefretta", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.gotQuery.Page)
	assert.Equal(t, 50, svc.gotQuery.Limit)
	assert.Equal(t, "stash", svc.gotQuery.Type)
	assert.Equal(t, "Nefretta", svc.gotQuery.User)
}

func TestGetGuildLogs_LimitOutOfRange(t *testing.T) {
	svc := &fakeLogService{page: &models.RenderedLogPage{}}
	router := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guilds/guild-1/logs?limit=500", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGuildLogs_GuildNotFound(t *testing.T) {
	svc := &fakeLogService{err: models.ErrGuildNotFound}
	router := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guilds/nope/logs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ErrGuildNotFound.Code, resp.Error)
}

func TestGetAllLogs(t *testing.T) {
	svc := &fakeLogService{page: &models.RenderedLogPage{Total: 7}}
	router := newLogsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.allCalled)
}
