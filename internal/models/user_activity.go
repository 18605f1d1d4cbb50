package models

// UserActivity 用户-活动关联
type UserActivity struct {
	ID         uint `gorm:"primarykey" json:"id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_user_activity" json:"user_id"`
	ActivityID uint `gorm:"not null;uniqueIndex:idx_user_activity" json:"activity_id"`

	// 关联
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Activity Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"activity,omitempty"`
}

// TableName 指定表名
func (UserActivity) TableName() string {
	return "user_activities"
}

// OwnerID 返回记录归属用户ID
func (ua *UserActivity) OwnerID() uint {
	return ua.UserID
}
