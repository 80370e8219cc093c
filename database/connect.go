// file: database/connect.go
package database

import (
	"SponsorPortal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"log"
	"os"
	"time"
)

var DB *gorm.DB

const defaultDSN = "root:123456@tcp(localhost:3306)/sponsor_portal?charset=utf8mb4&parseTime=True&loc=Local"

func Connect() {
	var err error
	dsn := os.Getenv("PORTAL_DB_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 配置数据库连接池
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	// SetMaxIdleConns 用于设置连接池中空闲连接的最大数量。
	sqlDB.SetMaxIdleConns(10)

	// SetMaxOpenConns 设置打开数据库连接的最大数量。
	sqlDB.SetMaxOpenConns(100)

	// SetConnMaxLifetime 设置了连接可复用的最大时间。
	// 设置为1小时以避免 MySQL 的 'wait_timeout' 问题。
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

// MigrateTables 建表。status/created_at 的列默认值随建表一起落到数据库，
// 插入路径依赖这两个默认值，所以新环境必须先跑一次迁移。
func MigrateTables() {
	err := DB.AutoMigrate(&models.SponsorshipRequest{}, &models.AdminUser{})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
