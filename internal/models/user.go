package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Address      string    `gorm:"uniqueIndex;size:250;not null" json:"address"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联（删除用户时级联删除所有归属记录）
	UserActivities    []UserActivity    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user_activities,omitempty"`
	UserAllergens     []UserAllergen    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user_allergens,omitempty"`
	PlannedActivities []PlannedActivity `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"planned_activities,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// OwnerID 返回记录归属用户ID（用户本身即归属者）
func (u *User) OwnerID() uint {
	return u.ID
}
