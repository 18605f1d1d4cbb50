package models

// Allergen 过敏原模型（共享目录数据）
type Allergen struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Description string `gorm:"uniqueIndex;size:150;not null" json:"description"`
}

// TableName 指定表名
func (Allergen) TableName() string {
	return "allergens"
}
