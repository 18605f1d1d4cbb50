package dto

// CreateUserActivityRequest 创建用户-活动关联请求
// UserID为空时默认为当前调用者(仅管理员可代他人创建)
type CreateUserActivityRequest struct {
	UserID     uint `json:"user_id"`
	ActivityID uint `json:"activity_id" binding:"required"`
}

// CreateUserAllergenRequest 创建用户-过敏原关联请求
type CreateUserAllergenRequest struct {
	UserID     uint `json:"user_id"`
	AllergenID uint `json:"allergen_id" binding:"required"`
}

// ReplaceActivitiesRequest 整体替换当前用户活动选择
type ReplaceActivitiesRequest struct {
	ActivityIDs []uint `json:"activity_ids" binding:"required"`
}

// ReplaceAllergensRequest 整体替换当前用户过敏原选择
type ReplaceAllergensRequest struct {
	AllergenIDs []uint `json:"allergen_ids" binding:"required"`
}
