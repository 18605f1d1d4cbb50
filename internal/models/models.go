package models

import (
	"planner-go/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 全局数据库实例
var DB *gorm.DB

// InitDB 初始化数据库
func InitDB(cfg *config.Config) error {
	var err error

	// 配置GORM
	// 外键开关必须写进DSN：pragma是连接级的，连接池换连接后
	// 单次Exec的设置会丢失
	DB, err = gorm.Open(sqlite.Open(cfg.Database.Path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // 使用静默模式
	})
	if err != nil {
		return err
	}

	return AutoMigrate(DB)
}

// AutoMigrate 自动迁移数据库表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Activity{},
		&Allergen{},
		&UserActivity{},
		&UserAllergen{},
		&PlannedActivity{},
	)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
