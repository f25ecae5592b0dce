package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/infrastructure/docstore"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/jwt"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) (*gin.Engine, project.Repository, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := docstore.New(t.TempDir())
	require.NoError(t, err)
	repo, err := repository.NewDocstoreRepository(store)
	require.NoError(t, err)

	h := NewProjectHandler(service.NewProjectService(repo))
	manager := jwt.NewManager("test-secret", time.Hour)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/projects", h.List)
	v1.GET("/projects/:id", h.GetByID)

	adminOnly := v1.Group("/projects")
	adminOnly.Use(middleware.AuthMiddleware(manager), middleware.AdminMiddleware())
	adminOnly.POST("", h.Create)
	adminOnly.PUT("/:id", h.Update)
	adminOnly.DELETE("/:id", h.Delete)

	token, _, err := manager.Generate("1", "admin@portfolio.com", "admin")
	require.NoError(t, err)

	return router, repo, token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRequiresAdminSession(t *testing.T) {
	router, repo, _ := setupTest(t)

	body := map[string]interface{}{"title": "Site", "description": "A site"}

	// No token at all
	w := doJSON(router, http.MethodPost, "/api/v1/projects", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token not produced by our issuer
	foreign, _, err := jwt.NewManager("other-secret", time.Hour).Generate("1", "admin@portfolio.com", "admin")
	require.NoError(t, err)
	w = doJSON(router, http.MethodPost, "/api/v1/projects", foreign, body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The store was never touched
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateValidation(t *testing.T) {
	router, repo, token := setupTest(t)

	w := doJSON(router, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"description": "no title",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateThenGetByID(t *testing.T) {
	router, _, token := setupTest(t)

	w := doJSON(router, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title":        "Portfolio Site",
		"description":  "Personal site",
		"technologies": []string{"Go", "React"},
		"featured":     true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var created project.Project
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, project.DefaultImage, created.Image)

	// Read it back by id
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var fetched project.Project
	require.NoError(t, json.Unmarshal(resp.Data, &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	router, _, token := setupTest(t)

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		w := doJSON(router, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
			"title":       fmt.Sprintf("Project %d", i),
			"description": "desc",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		var p project.Project
		require.NoError(t, json.Unmarshal(resp.Data, &p))

		assert.False(t, seen[p.ID], "id %d assigned twice", p.ID)
		seen[p.ID] = true
	}
}

func TestUpdateMergesOnlyPatchedFields(t *testing.T) {
	router, _, token := setupTest(t)

	w := doJSON(router, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title":        "Original",
		"description":  "Original description",
		"technologies": []string{"Go"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var created project.Project
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/v1/projects/%d", created.ID), token, map[string]interface{}{
		"featured": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var updated project.Project
	require.NoError(t, json.Unmarshal(resp.Data, &updated))

	assert.True(t, updated.Featured)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Technologies, updated.Technologies)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdateUnknownID(t *testing.T) {
	router, _, token := setupTest(t)

	w := doJSON(router, http.MethodPut, "/api/v1/projects/999", token, map[string]interface{}{
		"featured": true,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteThenGet(t *testing.T) {
	router, _, token := setupTest(t)

	w := doJSON(router, http.MethodPost, "/api/v1/projects", token, map[string]interface{}{
		"title":       "Doomed",
		"description": "Will be deleted",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var created project.Project
	require.NoError(t, json.Unmarshal(resp.Data, &created))

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIsPublic(t *testing.T) {
	router, _, _ := setupTest(t)

	w := doJSON(router, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
