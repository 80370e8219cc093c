// file: middlewares/rate_limit.go
package middlewares

import (
	"SponsorPortal/database"
	"SponsorPortal/utils"
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

// SubmitRateLimitMiddleware 公开提交接口的固定窗口限流（按客户端 IP）。
// Redis 不可用或出错时直接放行：限流挂掉不应拖垮提交本身。
func SubmitRateLimitMiddleware(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.RDB == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:submit:%s", c.ClientIP())
		count, err := database.RDB.Incr(database.Ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			database.RDB.Expire(database.Ctx, key, window)
		}
		if count > limit {
			utils.Error(c, http.StatusTooManyRequests, 4029, "Too many submissions, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
