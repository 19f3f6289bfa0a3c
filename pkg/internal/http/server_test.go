package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/al-alloush/blogapi/pkg/internal/database"
	"github.com/al-alloush/blogapi/pkg/internal/models"
	"github.com/al-alloush/blogapi/pkg/internal/services"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorize(t *testing.T, req *http.Request, account models.Account) {
	t.Helper()

	token, err := services.IssueAccessToken(account, time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
}

func seedServerFixtures(t *testing.T) (models.Account, models.Account) {
	t.Helper()

	database.NewTestGorm(t)
	viper.Set("security.jwt_secret", "unit-test-secret")
	viper.Set("uploads.root", t.TempDir())

	editor := models.Account{
		Name:              "editor",
		Email:             "editor@example.com",
		Role:              models.RoleEditor,
		SelectedLanguages: "en,",
	}
	require.NoError(t, database.C.Create(&editor).Error)

	admin := models.Account{
		Name:              "admin",
		Email:             "admin@example.com",
		Role:              models.RoleSuperAdmin,
		SelectedLanguages: "en,ar,",
	}
	require.NoError(t, database.C.Create(&admin).Error)

	for _, lang := range []string{"en", "en", "fr"} {
		blog := models.Blog{
			Title:       "A post in " + lang,
			Body:        "Body",
			Language:    lang,
			Publish:     true,
			Commentable: true,
			ReleaseDate: time.Now(),
			AccountID:   editor.ID,
		}
		require.NoError(t, database.C.Create(&blog).Error)
	}

	return editor, admin
}

func TestListBlogRequiresAuthentication(t *testing.T) {
	seedServerFixtures(t)
	server := NewServer()

	resp, err := server.app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var envelope struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, http.StatusUnauthorized, envelope.Status)
	assert.NotEmpty(t, envelope.Message)
}

func TestListBlogFollowsReaderLanguages(t *testing.T) {
	editor, _ := seedServerFixtures(t)
	server := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	authorize(t, req, editor)

	resp, err := server.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		PageIndex  int           `json:"page_index"`
		PageSize   int           `json:"page_size"`
		TotalCount int64         `json:"total_count"`
		Data       []models.Blog `json:"data"`
	}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&envelope))

	// The French post falls outside the reader's selected languages
	assert.Equal(t, 1, envelope.PageIndex)
	assert.Equal(t, 10, envelope.PageSize)
	assert.EqualValues(t, 2, envelope.TotalCount)
	assert.Len(t, envelope.Data, 2)
}

func TestListBlogEmptyPage(t *testing.T) {
	editor, _ := seedServerFixtures(t)
	server := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/api/blogs?page=5", nil)
	authorize(t, req, editor)

	resp, err := server.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCategoryManagementRequiresSuperAdmin(t *testing.T) {
	editor, admin := seedServerFixtures(t)
	server := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/api/categories/sources", nil)
	authorize(t, req, editor)

	resp, err := server.app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/categories/sources", nil)
	authorize(t, req, admin)

	resp, err = server.app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
