// file: controllers/auth_controller.go
package controllers

import (
	"SponsorPortal/database"
	"SponsorPortal/models"
	"SponsorPortal/utils"
	"github.com/gin-gonic/gin"
	"net/http"
)

// Login 管理员登录，签发 JWT
func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, 1001, "Username and password are required")
		return
	}

	var user models.AdminUser
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		// 账号不存在与密码错误对外同一种文案
		utils.Error(c, http.StatusUnauthorized, 4001, "Invalid username or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, 4001, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, 5000, "Failed to issue token")
		return
	}

	utils.Success(c, "success", gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}
