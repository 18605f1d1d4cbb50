package dto

// UpdateUserRequest 用户部分更新请求(字段为空指针表示不修改)
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Address  *string `json:"address,omitempty" binding:"omitempty,max=250"`
	Password *string `json:"password,omitempty"`
}

// ReplaceUserRequest 用户整体更新请求(PUT，所有字段必填)
type ReplaceUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Address  string `json:"address" binding:"required,max=250"`
	Password string `json:"password" binding:"required"`
}

// Partial 转为部分更新请求(所有字段给定)
func (r *ReplaceUserRequest) Partial() *UpdateUserRequest {
	return &UpdateUserRequest{
		Username: &r.Username,
		Email:    &r.Email,
		Address:  &r.Address,
		Password: &r.Password,
	}
}
