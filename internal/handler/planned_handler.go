package handler

import (
	"planner-go/internal/dto"
	"planner-go/internal/middleware"
	"planner-go/internal/permission"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// PlannedHandler 计划活动处理器
type PlannedHandler struct {
	plannerService *service.PlannerService
	policy         permission.Policy
}

// NewPlannedHandler 创建计划活动处理器
func NewPlannedHandler(plannerService *service.PlannerService, policy permission.Policy) *PlannedHandler {
	return &PlannedHandler{
		plannerService: plannerService,
		policy:         policy,
	}
}

// List 全部计划活动(仅管理员)
// @Summary 全部计划活动
// @Tags 计划活动
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.PlannedActivity}
// @Router /api/planned-activities [get]
func (h *PlannedHandler) List(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionList, 0) {
		return
	}

	pas, err := h.plannerService.ListPlanned()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, pas)
}

// ListOwn 当前用户的计划活动
// @Summary 我的计划活动
// @Tags 计划活动
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.PlannedActivity}
// @Router /api/my/planned [get]
func (h *PlannedHandler) ListOwn(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "未认证")
		return
	}

	pas, err := h.plannerService.ListOwnPlanned(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, pas)
}

// Create 创建计划活动
// @Summary 创建计划活动
// @Tags 计划活动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlannedActivityRequest true "计划信息"
// @Success 201 {object} utils.Response{data=models.PlannedActivity}
// @Router /api/planned-activities [post]
func (h *PlannedHandler) Create(c *gin.Context) {
	var req dto.CreatePlannedActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	targetUser := resolveTargetUser(c, req.UserID)
	if !authorize(c, h.policy, permission.ActionCreate, targetUser) {
		return
	}

	pa, err := h.plannerService.CreatePlanned(targetUser, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "创建成功", pa)
}

// Retrieve 获取计划活动
// @Summary 获取计划活动
// @Tags 计划活动
// @Produce json
// @Security BearerAuth
// @Param id path int true "计划ID"
// @Success 200 {object} utils.Response{data=models.PlannedActivity}
// @Router /api/planned-activities/{id} [get]
func (h *PlannedHandler) Retrieve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pa, err := h.plannerService.GetPlanned(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionRetrieve, pa.OwnerID()) {
		return
	}
	utils.SuccessResponse(c, pa)
}

// Update 更新计划活动(PUT整体/PATCH部分)
// @Summary 更新计划活动
// @Tags 计划活动
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "计划ID"
// @Param request body dto.UpdatePlannedActivityRequest true "更新字段"
// @Success 200 {object} utils.Response{data=models.PlannedActivity}
// @Router /api/planned-activities/{id} [patch]
func (h *PlannedHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pa, err := h.plannerService.GetPlanned(id)
	if err != nil {
		respondError(c, err)
		return
	}

	action := updateAction(c)
	if !authorize(c, h.policy, action, pa.OwnerID()) {
		return
	}

	var req *dto.UpdatePlannedActivityRequest
	if action == permission.ActionUpdate {
		var full dto.ReplacePlannedActivityRequest
		if err := c.ShouldBindJSON(&full); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		req = full.Partial()
	} else {
		var partial dto.UpdatePlannedActivityRequest
		if err := c.ShouldBindJSON(&partial); err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		req = &partial
	}

	updated, err := h.plannerService.UpdatePlanned(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", updated)
}

// Destroy 删除计划活动
// @Summary 删除计划活动
// @Tags 计划活动
// @Security BearerAuth
// @Param id path int true "计划ID"
// @Success 204
// @Router /api/planned-activities/{id} [delete]
func (h *PlannedHandler) Destroy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pa, err := h.plannerService.GetPlanned(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if !authorize(c, h.policy, permission.ActionDestroy, pa.OwnerID()) {
		return
	}

	if err := h.plannerService.DeletePlanned(id); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
