package repository

import (
	"fmt"
	"testing"
	"time"

	"planner-go/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestUserDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{
		Username: "alice", Email: "alice@example.com",
		Address: "北京", PasswordHash: "hash",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	keeper := &models.User{
		Username: "bob", Email: "bob@example.com",
		Address: "上海", PasswordHash: "hash",
	}
	if err := repo.Create(keeper); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	hiking := &models.Activity{Name: "徒步", Description: "徒步描述"}
	pollen := &models.Allergen{Name: "花粉", Description: "花粉描述"}
	db.Create(hiking)
	db.Create(pollen)

	// 两个用户各挂一组归属记录
	for _, uid := range []uint{user.ID, keeper.ID} {
		db.Create(&models.UserActivity{UserID: uid, ActivityID: hiking.ID})
		db.Create(&models.UserAllergen{UserID: uid, AllergenID: pollen.ID})
		db.Create(&models.PlannedActivity{
			UserID: uid, ActivityID: hiking.ID,
			Location:  "香山",
			StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		})
	}

	if err := repo.Delete(user.ID); err != nil {
		t.Fatalf("删除用户失败: %v", err)
	}

	// 被删用户的归属记录全部消失
	for _, target := range []interface{}{
		&models.UserActivity{}, &models.UserAllergen{}, &models.PlannedActivity{},
	} {
		var count int64
		db.Model(target).Where("user_id = ?", user.ID).Count(&count)
		if count != 0 {
			t.Fatalf("%T: 级联删除未生效, count=%d", target, count)
		}
	}

	// 其他用户的记录不受影响
	for _, target := range []interface{}{
		&models.UserActivity{}, &models.UserAllergen{}, &models.PlannedActivity{},
	} {
		var count int64
		db.Model(target).Where("user_id = ?", keeper.ID).Count(&count)
		if count != 1 {
			t.Fatalf("%T: 不应影响其他用户, count=%d", target, count)
		}
	}

	// 目录数据不受影响
	var activities int64
	db.Model(&models.Activity{}).Count(&activities)
	if activities != 1 {
		t.Fatalf("目录数据不应被删除, count=%d", activities)
	}

	if _, err := repo.GetByID(user.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("用户应已删除, got %v", err)
	}
}

func TestUserUniqueConstraints(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	if err := repo.Create(&models.User{
		Username: "alice", Email: "alice@example.com",
		Address: "北京", PasswordHash: "hash",
	}); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	cases := []models.User{
		{Username: "alice", Email: "x@example.com", Address: "地址1", PasswordHash: "hash"},
		{Username: "bob", Email: "alice@example.com", Address: "地址2", PasswordHash: "hash"},
		{Username: "carol", Email: "y@example.com", Address: "北京", PasswordHash: "hash"},
	}
	for i := range cases {
		if err := repo.Create(&cases[i]); err == nil {
			t.Fatalf("唯一约束未生效: %+v", cases[i])
		}
	}
}
