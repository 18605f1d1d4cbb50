package handler

import (
	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/permission"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户资源处理器
type UserHandler struct {
	userService *service.UserService
	policy      permission.Policy
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userService *service.UserService, policy permission.Policy) *UserHandler {
	return &UserHandler{
		userService: userService,
		policy:      policy,
	}
}

// List 用户列表(仅管理员)
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]dto.UserInfo}
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionList, 0) {
		return
	}

	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, users)
}

// Retrieve 获取用户
// @Summary 获取用户
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/users/{id} [get]
func (h *UserHandler) Retrieve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionRetrieve, user.OwnerID()) {
		return
	}
	utils.SuccessResponse(c, service.ToUserInfo(user))
}

// Update 更新用户(PUT整体/PATCH部分)
// @Summary 更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param request body dto.UpdateUserRequest true "更新字段"
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	action := updateAction(c)
	if !authorize(c, h.policy, action, user.OwnerID()) {
		return
	}

	var req *dto.UpdateUserRequest
	if action == permission.ActionUpdate {
		var full dto.ReplaceUserRequest
		if err := c.ShouldBindJSON(&full); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		req = full.Partial()
	} else {
		var partial dto.UpdateUserRequest
		if err := c.ShouldBindJSON(&partial); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		req = &partial
	}

	updated, err := h.userService.UpdateUser(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", service.ToUserInfo(updated))
}

// Destroy 删除用户
// @Summary 删除用户
// @Tags 用户
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 204
// @Router /api/users/{id} [delete]
func (h *UserHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionDestroy, user.OwnerID()) {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// GetAccount 获取当前用户资料
// @Summary 获取当前用户资料
// @Tags 账户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/account [get]
func (h *UserHandler) GetAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, service.ToUserInfo(user))
}

// UpdateAccount 更新当前用户资料
// @Summary 更新当前用户资料
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "更新字段"
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	updated, err := h.userService.UpdateUser(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", service.ToUserInfo(updated))
}

// DeleteAccount 删除当前账户
// @Summary 删除当前账户
// @Tags 账户
// @Security BearerAuth
// @Success 204
// @Router /api/account [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
