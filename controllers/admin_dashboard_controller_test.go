// file: controllers/admin_dashboard_controller_test.go
package controllers

import (
	"SponsorPortal/database"
	"SponsorPortal/middlewares"
	"SponsorPortal/models"
	"SponsorPortal/services"
	"SponsorPortal/utils"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nextTestUserID uint32 = 100

// adminRouter 挂上真实的 JWT 与角色中间件，按测试分配独立的会话身份，
// 避免仪表盘会话缓存在测试间串台。
func adminRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	nextTestUserID++
	token, err := utils.GenerateToken(models.AdminUser{
		ID:       nextTestUserID,
		Username: gofakeit.Username(),
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	r := gin.New()
	admin := r.Group("/api/v1/admin")
	admin.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
	{
		admin.GET("/sponsorships", AdminListSponsorships)
		admin.PUT("/sponsorships/:id/status", AdminUpdateSponsorshipStatus)
		admin.GET("/dashboard", AdminDashboard)
		admin.POST("/dashboard/refresh", AdminDashboardRefresh)
		admin.PUT("/dashboard/sponsorships/:id/status", AdminDashboardUpdateStatus)
	}
	return r, token
}

func doAuthed(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Code int                    `json:"code"`
		Msg  string                 `json:"msg"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func seedRequests(t *testing.T, statuses ...models.RequestStatus) {
	t.Helper()
	for i, status := range statuses {
		require.NoError(t, services.SubmitSponsorship(models.SponsorshipRequest{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Company: gofakeit.Company(),
		}))
		if status != models.StatusPending {
			require.NoError(t, database.DB.Model(&models.SponsorshipRequest{}).
				Where("id = ?", i+1).Update("status", status).Error)
		}
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	setupTestDB(t)
	r, _ := adminRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sponsorships", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListSponsorshipsEndpoint(t *testing.T) {
	setupTestDB(t)
	seedRequests(t, models.StatusPending, models.StatusHired)
	r, token := adminRouter(t)

	w := doAuthed(t, r, http.MethodGet, "/api/v1/admin/sponsorships", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.EqualValues(t, 2, data["total"])
}

func TestAdminUpdateStatusEndpoint_NotFound(t *testing.T) {
	setupTestDB(t)
	r, token := adminRouter(t)

	w := doAuthed(t, r, http.MethodPut, "/api/v1/admin/sponsorships/9999/status", token,
		gin.H{"status": "Reviewed"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUpdateStatusEndpoint_InvalidStatus(t *testing.T) {
	setupTestDB(t)
	seedRequests(t, models.StatusPending)
	r, token := adminRouter(t)

	w := doAuthed(t, r, http.MethodPut, "/api/v1/admin/sponsorships/1/status", token,
		gin.H{"status": "Archived"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDashboard_SeedFilterAndPatch(t *testing.T) {
	setupTestDB(t)
	seedRequests(t, models.StatusPending, models.StatusHired)
	r, token := adminRouter(t)

	// 播种 + Pending 过滤
	w := doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard?filter=Pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.EqualValues(t, 2, data["total"])
	require.Len(t, data["requests"], 1)

	// 成功迁移后，仍生效的 Pending 过滤器让视图变空
	w = doAuthed(t, r, http.MethodPut, "/api/v1/admin/dashboard/sponsorships/1/status", token,
		gin.H{"status": "Reviewed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard?filter=Pending", token, nil)
	data = decodeData(t, w)
	assert.Len(t, data["requests"], 0)
	assert.Equal(t, "No requests matching the current filter.", data["empty_message"])
	assert.EqualValues(t, 2, data["total"])

	// 数据库行确实被改了
	var row models.SponsorshipRequest
	require.NoError(t, database.DB.First(&row, 1).Error)
	assert.Equal(t, models.StatusReviewed, row.Status)
}

func TestAdminDashboard_NoAutoRefresh(t *testing.T) {
	setupTestDB(t)
	seedRequests(t, models.StatusPending)
	r, token := adminRouter(t)

	w := doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	assert.EqualValues(t, 1, decodeData(t, w)["total"])

	// 播种之后旁路写入的数据不会自动出现
	seedRequests(t, models.StatusPending)
	w = doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	assert.EqualValues(t, 1, decodeData(t, w)["total"])

	// 显式刷新才会重新播种
	w = doAuthed(t, r, http.MethodPost, "/api/v1/admin/dashboard/refresh", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	assert.EqualValues(t, 2, decodeData(t, w)["total"])
}

func TestAdminDashboard_InvalidFilter(t *testing.T) {
	setupTestDB(t)
	r, token := adminRouter(t)

	w := doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard?filter=Archived", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDashboard_FailedSeedIsDistinctFromEmpty(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, database.DB.Migrator().DropTable(&models.SponsorshipRequest{}))
	r, token := adminRouter(t)

	w := doAuthed(t, r, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Could not load sponsorship requests.")
}
