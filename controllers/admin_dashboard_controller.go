// file: controllers/admin_dashboard_controller.go
package controllers

import (
	"SponsorPortal/dto"
	"SponsorPortal/mappers"
	"SponsorPortal/models"
	"SponsorPortal/services"
	"SponsorPortal/utils"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
	"sync"
)

// 仪表盘为每个管理员会话持有一份 AdminView：首次访问用列表服务播种一次，
// 之后的过滤纯走本地缓存；状态变更经由视图执行（在途保护 + 确认后补丁）。
// 会话之间互不共享，“单笔在途”保护也只在会话内生效。
var (
	viewsMu sync.Mutex
	views   = make(map[uint32]*services.AdminView)
)

func sessionView(c *gin.Context) *services.AdminView {
	userID := c.MustGet("user_id").(uint32)
	viewsMu.Lock()
	defer viewsMu.Unlock()
	v, ok := views[userID]
	if !ok {
		v = services.NewAdminView()
		views[userID] = v
	}
	return v
}

// AdminDashboard 返回当前会话的过滤视图。
// 缓存未播种时先经列表服务播种一次；之后不再自动重查。
func AdminDashboard(c *gin.Context) {
	filter := c.DefaultQuery("filter", services.FilterAll)
	if !services.ValidFilter(filter) {
		utils.Error(c, http.StatusBadRequest, 1001, "Filter must be one of All, Pending, Reviewed, Hired")
		return
	}

	view := sessionView(c)
	if !view.Seeded() {
		requests, err := services.ListSponsorships()
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, 5000, "Could not load sponsorship requests.")
			return
		}
		view.Seed(requests)
	}

	filtered := view.Filtered(filter)
	resp := gin.H{
		"total":    view.Size(),
		"filter":   filter,
		"requests": mappers.MapModelsToAdminItems(filtered),
	}
	if len(filtered) == 0 {
		// 过滤结果为空与缓存本身为空共用同一条文案（沿用既有契约），
		// total 字段让调用方仍可自行区分。
		resp["empty_message"] = "No requests matching the current filter."
	}
	utils.Success(c, "success", resp)
}

// AdminDashboardRefresh 显式重新播种会话缓存
func AdminDashboardRefresh(c *gin.Context) {
	requests, err := services.ListSponsorships()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "Could not load sponsorship requests.")
		return
	}
	sessionView(c).Seed(requests)
	utils.Success(c, "Dashboard refreshed", gin.H{"total": len(requests)})
}

// AdminDashboardUpdateStatus 经由会话视图的状态变更：
// 同会话已有变更在途时返回 409，不触达数据库；
// 远端确认成功后才打本地补丁，失败时缓存保持不变。
func AdminDashboardUpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, 1002, "Invalid request ID")
		return
	}

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "Invalid status value")
		return
	}

	view := sessionView(c)
	outcome, err := view.Transition(id, models.RequestStatus(req.Status), services.TransitionStatus)
	if err != nil {
		if errors.Is(err, services.ErrTransitionInFlight) {
			utils.Error(c, http.StatusConflict, 4009, "Another status update is still in progress.")
			return
		}
		respondTransitionError(c, err)
		return
	}

	utils.Success(c, "Status updated successfully", gin.H{
		"request_id": id,
		"status":     req.Status,
		"matched":    outcome == services.TransitionApplied,
	})
}
