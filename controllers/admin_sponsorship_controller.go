// file: controllers/admin_sponsorship_controller.go
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
)

// AdminListSponsorships 后台全量列表，created_at 倒序。
// 读失败返回 500 的“无法加载”文案，与空列表的 200 严格区分。
func AdminListSponsorships(c *gin.Context) {
	requests, err := services.ListSponsorships()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "Could not load sponsorship requests.")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":    len(requests),
		"requests": mappers.MapModelsToAdminItems(requests),
	})
}

// AdminUpdateSponsorshipStatus 无状态的直连状态变更接口。
// 零行匹配不再伪装成成功，这里映射为 404。
func AdminUpdateSponsorshipStatus(c *gin.Context) {
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

	outcome, err := services.TransitionStatus(id, models.RequestStatus(req.Status))
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	if outcome == services.TransitionNoMatch {
		utils.Error(c, http.StatusNotFound, 4004, "Sponsorship request not found")
		return
	}

	utils.Success(c, "Status updated successfully", gin.H{
		"request_id": id,
		"status":     req.Status,
	})
}

// respondTransitionError 按错误分类映射状态码；
// 策略层拒绝时把它自己的文案原样交给特权调用方。
func respondTransitionError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var authErr *services.AuthorizationError
	switch {
	case errors.As(err, &vErr):
		utils.Error(c, http.StatusBadRequest, 1001, vErr.Message)
	case errors.As(err, &authErr):
		utils.Error(c, http.StatusForbidden, 4003, authErr.Message)
	default:
		utils.Error(c, http.StatusInternalServerError, 5000, "Failed to update status")
	}
}
