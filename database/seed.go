// file: database/seed.go
package database

import (
	"SponsorPortal/models"
	"SponsorPortal/utils"
	"log"
	"os"
)

// EnsureDefaultAdmin 首次启动时创建默认管理员账号。
// 密码优先取 PORTAL_ADMIN_PASSWORD，否则生成临时密码并打印一次到日志。
func EnsureDefaultAdmin() {
	var count int64
	if err := DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count admin users:", err)
	}
	if count > 0 {
		return
	}

	password := os.Getenv("PORTAL_ADMIN_PASSWORD")
	generated := false
	if password == "" {
		password = utils.GenerateTempPassword()
		generated = true
	}

	admin := models.AdminUser{
		Username: "admin",
		Password: password,
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to seed default admin:", err)
	}

	if generated {
		// 只在首次创建时打印，之后请尽快修改
		log.Printf("Seeded default admin 'admin' with temporary password: %s", password)
	} else {
		log.Println("Seeded default admin 'admin' from PORTAL_ADMIN_PASSWORD.")
	}
}
