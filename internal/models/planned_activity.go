package models

import (
	"time"
)

// PlannedActivity 用户计划活动（地点 + 日期范围）
type PlannedActivity struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_planned" json:"user_id"`
	ActivityID uint      `gorm:"not null;uniqueIndex:idx_planned" json:"activity_id"`
	Location   string    `gorm:"size:250;not null" json:"location"`
	StartDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_planned" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null;uniqueIndex:idx_planned" json:"end_date"`

	// 关联
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Activity Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"activity,omitempty"`
}

// TableName 指定表名
func (PlannedActivity) TableName() string {
	return "planned_activities"
}

// OwnerID 返回记录归属用户ID
func (p *PlannedActivity) OwnerID() uint {
	return p.UserID
}
