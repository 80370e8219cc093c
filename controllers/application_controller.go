// file: controllers/application_controller.go
package controllers

import (
	"SponsorPortal/dto"
	"SponsorPortal/utils"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// SubmitApplication 求职申请表单。简历附件只做确认，不落盘也不入库，
// 整个接口没有任何持久化副作用。
func SubmitApplication(c *gin.Context) {
	var req dto.SubmitApplicationReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1004, "Please fill out all required fields with a valid email.")
		return
	}
	req.Normalize()

	resumeName := ""
	if file, err := c.FormFile("resume"); err == nil {
		// 记录文件名和大小后即丢弃
		resumeName = file.Filename
		log.Printf("Received application resume %q (%d bytes), discarded by policy.", file.Filename, file.Size)
	}

	log.Printf("Job application received: name=%q email=%q position=%q resume=%q",
		req.FullName, req.Email, req.Position, resumeName)

	utils.Success(c, "Application received. We will be in touch.", nil)
}
