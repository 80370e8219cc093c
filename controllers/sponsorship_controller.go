// file: controllers/sponsorship_controller.go
package controllers

import (
	"SponsorPortal/dto"
	"SponsorPortal/mappers"
	"SponsorPortal/services"
	"SponsorPortal/utils"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

// SubmitSponsorship 公开的赞助意向提交接口。
// 成功 201；必填缺失 400；持久化或意外失败 500，且对提交者只给通用文案，
// 不透出内部错误细节。
func SubmitSponsorship(c *gin.Context) {
	var req dto.SubmitSponsorshipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// 对齐原有契约：非法请求体归入“意外失败”，不是 400
		utils.Error(c, http.StatusInternalServerError, 5001, "An unexpected error occurred.")
		return
	}
	req.Normalize()

	if err := services.SubmitSponsorship(mappers.MapSubmitReqToModel(req)); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			utils.Error(c, http.StatusBadRequest, 1003, vErr.Message)
			return
		}
		utils.Error(c, http.StatusInternalServerError, 5000, "Database insertion failed.")
		return
	}

	utils.Created(c, "Sponsorship request submitted successfully.", nil)
}
