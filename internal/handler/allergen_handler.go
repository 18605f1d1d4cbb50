package handler

import (
	"planner-go/internal/dto"
	"planner-go/internal/permission"
	"planner-go/internal/service"
	"planner-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AllergenHandler 过敏原目录处理器
type AllergenHandler struct {
	catalogService *service.CatalogService
	policy         permission.Policy
}

// NewAllergenHandler 创建过敏原处理器
func NewAllergenHandler(catalogService *service.CatalogService, policy permission.Policy) *AllergenHandler {
	return &AllergenHandler{
		catalogService: catalogService,
		policy:         policy,
	}
}

// List 过敏原列表
// @Summary 过敏原列表
// @Tags 过敏原目录
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=[]models.Allergen}
// @Router /api/allergens [get]
func (h *AllergenHandler) List(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionList, 0) {
		return
	}

	allergens, err := h.catalogService.ListAllergens()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, allergens)
}

// Retrieve 获取过敏原
// @Summary 获取过敏原
// @Tags 过敏原目录
// @Produce json
// @Security BearerAuth
// @Param id path int true "过敏原ID"
// @Success 200 {object} utils.Response{data=models.Allergen}
// @Router /api/allergens/{id} [get]
func (h *AllergenHandler) Retrieve(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionRetrieve, 0) {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	allergen, err := h.catalogService.GetAllergen(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, allergen)
}

// Create 创建过敏原(仅管理员)
// @Summary 创建过敏原
// @Tags 过敏原目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CatalogItemRequest true "过敏原信息"
// @Success 201 {object} utils.Response{data=models.Allergen}
// @Router /api/allergens [post]
func (h *AllergenHandler) Create(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionCreate, 0) {
		return
	}

	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	allergen, err := h.catalogService.CreateAllergen(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, "创建成功", allergen)
}

// Update 更新过敏原(PUT整体/PATCH部分，仅管理员)
// @Summary 更新过敏原
// @Tags 过敏原目录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "过敏原ID"
// @Success 200 {object} utils.Response{data=models.Allergen}
// @Router /api/allergens/{id} [patch]
func (h *AllergenHandler) Update(c *gin.Context) {
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
		allergen, err := h.catalogService.UpdateAllergen(id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.SuccessWithMessage(c, "更新成功", allergen)
		return
	}

	var req dto.CatalogItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	allergen, err := h.catalogService.PatchAllergen(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", allergen)
}

// Destroy 删除过敏原(仅管理员)
// @Summary 删除过敏原
// @Tags 过敏原目录
// @Security BearerAuth
// @Param id path int true "过敏原ID"
// @Success 204
// @Router /api/allergens/{id} [delete]
func (h *AllergenHandler) Destroy(c *gin.Context) {
	if !authorize(c, h.policy, permission.ActionDestroy, 0) {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteAllergen(id); err != nil {
		respondError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
