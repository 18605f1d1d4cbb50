package handler

import (
	"planner-go/internal/dto"
	"planner-go/internal/permission"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ActivityHandler 活动目录处理器
type ActivityHandler struct {
	catalogService *service.CatalogService
	policy         permission.Policy
}

// NewActivityHandler 创建活动处理器
func NewActivityHandler(catalogService *service.CatalogService, policy permission.Policy) *ActivityHandler {
	return &ActivityHandler{
		catalogService: catalogService,
		policy:         policy,
	}
}

// List 活动列表
// @Summary 活动列表
// @Tags 活动目录
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.Activity}
// @Router /api/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionList, 0) {
		return
	}

	activities, err := h.catalogService.ListActivities()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, activities)
}

// Retrieve 获取活动
// @Summary 获取活动
// @Tags 活动目录
// @Produce json
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Success 200 {object} utils.Response{data=models.Activity}
// @Router /api/activities/{id} [get]
func (h *ActivityHandler) Retrieve(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionRetrieve, 0) {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	activity, err := h.catalogService.GetActivity(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, activity)
}

// Create 创建活动(仅管理员)
// @Summary 创建活动
// @Tags 活动目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CatalogItemRequest true "活动信息"
// @Success 201 {object} utils.Response{data=models.Activity}
// @Router /api/activities [post]
func (h *ActivityHandler) Create(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionCreate, 0) {
		return
	}

	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	activity, err := h.catalogService.CreateActivity(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "创建成功", activity)
}

// Update 更新活动(PUT整体/PATCH部分，仅管理员)
// @Summary 更新活动
// @Tags 活动目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Success 200 {object} utils.Response{data=models.Activity}
// @Router /api/activities/{id} [patch]
func (h *ActivityHandler) Update(c *gin.Context) {
	action := updateAction(c)
	if !authorize(c, h.policy, action, 0) {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if action == permission.ActionUpdate {
		var req dto.CatalogItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		activity, err := h.catalogService.UpdateActivity(id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessWithMessage(c, "更新成功", activity)
		return
	}

	var req dto.CatalogItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	activity, err := h.catalogService.PatchActivity(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", activity)
}

// Destroy 删除活动(仅管理员)
// @Summary 删除活动
// @Tags 活动目录
// @Security BearerAuth
// @Param id path int true "活动ID"
// @Success 204
// @Router /api/activities/{id} [delete]
func (h *ActivityHandler) Destroy(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionDestroy, 0) {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteActivity(id); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
