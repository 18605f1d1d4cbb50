package handler

import (
	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/permission"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// SelectionHandler 用户选择处理器(活动与过敏原关联)
type SelectionHandler struct {
	selectionService *service.SelectionService
	policy           permission.Policy
}

// NewSelectionHandler 创建选择处理器
func NewSelectionHandler(selectionService *service.SelectionService, policy permission.Policy) *SelectionHandler {
	return &SelectionHandler{
		selectionService: selectionService,
		policy:           policy,
	}
}

// resolveTargetUser 创建请求的归属用户：默认当前调用者，管理员可代他人
func resolveTargetUser(c *gin.Context, requested uint) uint {
	caller := middleware.GetCaller(c)
	if requested != 0 && caller.IsAdmin {
		return requested
	}
	return caller.UserID
}

// ListUserActivities 全部用户-活动关联(仅管理员)
// @Summary 全部用户活动关联
// @Tags 用户选择
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.UserActivity}
// @Router /api/user-activities [get]
func (h *SelectionHandler) ListUserActivities(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionList, 0) {
		return
	}

	uas, err := h.selectionService.ListUserActivities()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, uas)
}

// ListOwnActivities 当前用户的活动选择
// @Summary 我的活动选择
// @Tags 用户选择
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.UserActivity}
// @Router /api/my/activities [get]
func (h *SelectionHandler) ListOwnActivities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	uas, err := h.selectionService.ListOwnActivities(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, uas)
}

// CreateUserActivity 创建用户-活动关联
// @Summary 创建用户活动关联
// @Tags 用户选择
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserActivityRequest true "关联信息"
// @Success 201 {object} utils.Response{data=models.UserActivity}
// @Router /api/user-activities [post]
func (h *SelectionHandler) CreateUserActivity(c *gin.Context) {
	var req dto.CreateUserActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	targetUser := resolveTargetUser(c, req.UserID)
	if !authorize(c, h.policy, permission.ActionCreate, targetUser) {
		return
	}

	ua, err := h.selectionService.CreateUserActivity(targetUser, req.ActivityID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "创建成功", ua)
}

// RetrieveUserActivity 获取用户-活动关联
// @Summary 获取用户活动关联
// @Tags 用户选择
// @Produce json
// @Security BearerAuth
// @Param id path int true "关联ID"
// @Success 200 {object} utils.Response{data=models.UserActivity}
// @Router /api/user-activities/{id} [get]
func (h *SelectionHandler) RetrieveUserActivity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ua, err := h.selectionService.GetUserActivity(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionRetrieve, ua.OwnerID()) {
		return
	}
	utils.SuccessResponse(c, ua)
}

// DestroyUserActivity 删除用户-活动关联
// @Summary 删除用户活动关联
// @Tags 用户选择
// @Security BearerAuth
// @Param id path int true "关联ID"
// @Success 204
// @Router /api/user-activities/{id} [delete]
func (h *SelectionHandler) DestroyUserActivity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ua, err := h.selectionService.GetUserActivity(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionDestroy, ua.OwnerID()) {
		return
	}

	if err := h.selectionService.DeleteUserActivity(id); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ReplaceOwnActivities 整体替换当前用户的活动选择
// @Summary 替换我的活动选择
// @Tags 用户选择
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReplaceActivitiesRequest true "活动ID列表"
// @Success 200 {object} utils.Response{data=[]models.UserActivity}
// @Router /api/my/activities [put]
func (h *SelectionHandler) ReplaceOwnActivities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.ReplaceActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	uas, err := h.selectionService.ReplaceActivities(userID, req.ActivityIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "替换成功", uas)
}

// ListUserAllergens 全部用户-过敏原关联(仅管理员)
// @Summary 全部用户过敏原关联
// @Tags 用户选择
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.UserAllergen}
// @Router /api/user-allergens [get]
func (h *SelectionHandler) ListUserAllergens(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionList, 0) {
		return
	}

	uas, err := h.selectionService.ListUserAllergens()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, uas)
}

// ListOwnAllergens 当前用户的过敏原选择
// @Summary 我的过敏原选择
// @Tags 用户选择
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.UserAllergen}
// @Router /api/my/allergens [get]
func (h *SelectionHandler) ListOwnAllergens(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	uas, err := h.selectionService.ListOwnAllergens(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, uas)
}

// CreateUserAllergen 创建用户-过敏原关联
// @Summary 创建用户过敏原关联
// @Tags 用户选择
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserAllergenRequest true "关联信息"
// @Success 201 {object} utils.Response{data=models.UserAllergen}
// @Router /api/user-allergens [post]
func (h *SelectionHandler) CreateUserAllergen(c *gin.Context) {
	var req dto.CreateUserAllergenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	targetUser := resolveTargetUser(c, req.UserID)
	if !authorize(c, h.policy, permission.ActionCreate, targetUser) {
		return
	}

	ua, err := h.selectionService.CreateUserAllergen(targetUser, req.AllergenID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "创建成功", ua)
}

// RetrieveUserAllergen 获取用户-过敏原关联
// @Summary 获取用户过敏原关联
// @Tags 用户选择
// @Produce json
// @Security BearerAuth
// @Param id path int true "关联ID"
// @Success 200 {object} utils.Response{data=models.UserAllergen}
// @Router /api/user-allergens/{id} [get]
func (h *SelectionHandler) RetrieveUserAllergen(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ua, err := h.selectionService.GetUserAllergen(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionRetrieve, ua.OwnerID()) {
		return
	}
	utils.SuccessResponse(c, ua)
}

// DestroyUserAllergen 删除用户-过敏原关联
// @Summary 删除用户过敏原关联
// @Tags 用户选择
// @Security BearerAuth
// @Param id path int true "关联ID"
// @Success 204
// @Router /api/user-allergens/{id} [delete]
func (h *SelectionHandler) DestroyUserAllergen(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ua, err := h.selectionService.GetUserAllergen(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionDestroy, ua.OwnerID()) {
		return
	}

	if err := h.selectionService.DeleteUserAllergen(id); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// ReplaceOwnAllergens 整体替换当前用户的过敏原选择
// @Summary 替换我的过敏原选择
// @Tags 用户选择
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ReplaceAllergensRequest true "过敏原ID列表"
// @Success 200 {object} utils.Response{data=[]models.UserAllergen}
// @Router /api/my/allergens [put]
func (h *SelectionHandler) ReplaceOwnAllergens(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	var req dto.ReplaceAllergensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	uas, err := h.selectionService.ReplaceAllergens(userID, req.AllergenIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "替换成功", uas)
}
