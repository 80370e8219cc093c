// file: routes/router.go
package routes

import (
	"SponsorPortal/controllers"
	"SponsorPortal/middlewares"
	"SponsorPortal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"time"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := r.Group("/api/v1")
	{
		// --- 公开接口 ---
		sponsorshipPublic := apiV1.Group("/sponsorships")
		{
			sponsorshipPublic.POST("", middlewares.SubmitRateLimitMiddleware(10, time.Minute), controllers.SubmitSponsorship)
		}
		applicationRoutes := apiV1.Group("/applications")
		{
			applicationRoutes.POST("", controllers.SubmitApplication)
		}
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", controllers.Login)
		}

		// --- 管理员接口 ---
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			// 无状态直连接口
			adminRoutes.GET("/sponsorships", controllers.AdminListSponsorships)
			adminRoutes.PUT("/sponsorships/:id/status", controllers.AdminUpdateSponsorshipStatus)

			// 会话级仪表盘（本地缓存 + 过滤 + 在途保护）
			adminRoutes.GET("/dashboard", controllers.AdminDashboard)
			adminRoutes.POST("/dashboard/refresh", controllers.AdminDashboardRefresh)
			adminRoutes.PUT("/dashboard/sponsorships/:id/status", controllers.AdminDashboardUpdateStatus)
		}
	}

	return r
}
