package dto

// 日期格式：YYYY-MM-DD
const DateLayout = "2006-01-02"

// CreatePlannedActivityRequest 创建计划活动请求
// UserID为空时默认为当前调用者(仅管理员可代他人创建)
type CreatePlannedActivityRequest struct {
	UserID     uint   `json:"user_id"`
	ActivityID uint   `json:"activity_id" binding:"required"`
	Location   string `json:"location" binding:"required,max=250"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// UpdatePlannedActivityRequest 计划活动部分更新请求
type UpdatePlannedActivityRequest struct {
	ActivityID *uint   `json:"activity_id,omitempty"`
	Location   *string `json:"location,omitempty" binding:"omitempty,max=250"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

// ReplacePlannedActivityRequest 计划活动整体更新请求(PUT，所有字段必填)
type ReplacePlannedActivityRequest struct {
	ActivityID uint   `json:"activity_id" binding:"required"`
	Location   string `json:"location" binding:"required,max=250"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

// Partial 转为部分更新请求(所有字段给定)
func (r *ReplacePlannedActivityRequest) Partial() *UpdatePlannedActivityRequest {
	return &UpdatePlannedActivityRequest{
		ActivityID: &r.ActivityID,
		Location:   &r.Location,
		StartDate:  &r.StartDate,
		EndDate:    &r.EndDate,
	}
}
