package models

// UserAllergen 用户-过敏原关联
type UserAllergen struct {
	ID         uint `gorm:"primarykey" json:"id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_user_allergen" json:"user_id"`
	AllergenID uint `gorm:"not null;uniqueIndex:idx_user_allergen" json:"allergen_id"`

	// 关联
	User     User     `gorm:"foreignKey:UserID" json:"-"`
	Allergen Allergen `gorm:"foreignKey:AllergenID;constraint:OnDelete:CASCADE" json:"allergen,omitempty"`
}

// TableName 指定表名
func (UserAllergen) TableName() string {
	return "user_allergens"
}

// OwnerID 返回记录归属用户ID
func (ua *UserAllergen) OwnerID() uint {
	return ua.UserID
}
