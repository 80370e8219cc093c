// file: database/redis.go
package database

import (
	"context"
	"github.com/redis/go-redis/v9"
	"log"
	"os"
	"time"
)

var RDB *redis.Client
var Ctx = context.Background()

// InitRedis 初始化 Redis 连接。Redis 只用于提交接口的限流，
// 连接失败时仅告警，限流中间件会自动放行（fail open）。
func InitRedis() {
	addr := os.Getenv("PORTAL_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Printf("Redis unavailable, submission rate limiting disabled: %v", err)
		RDB = nil
		return
	}

	log.Println("Redis connection successfully established.")
}
