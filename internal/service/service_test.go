package service

import (
	"fmt"
	"testing"

	"planner-go/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 为每个测试打开独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开数据库失败: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

// seedUser 插入测试用户
func seedUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		Address:      username + "的地址",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvexample",
		IsAdmin:      isAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return user
}

// seedActivity 插入测试活动
func seedActivity(t *testing.T, db *gorm.DB, name string) *models.Activity {
	t.Helper()
	a := &models.Activity{Name: name, Description: name + "描述"}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("创建活动失败: %v", err)
	}
	return a
}

// seedAllergen 插入测试过敏原
func seedAllergen(t *testing.T, db *gorm.DB, name string) *models.Allergen {
	t.Helper()
	a := &models.Allergen{Name: name, Description: name + "描述"}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("创建过敏原失败: %v", err)
	}
	return a
}
