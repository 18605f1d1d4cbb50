package dto

// CatalogItemRequest 目录条目创建/整体更新请求(活动与过敏原共用)
type CatalogItemRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"required,max=150"`
}

// CatalogItemPatchRequest 目录条目部分更新请求
type CatalogItemPatchRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=50"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=150"`
}
