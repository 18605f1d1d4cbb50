package service

import (
	"fmt"

	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
)

// CatalogService 共享目录服务(活动与过敏原)
type CatalogService struct {
	activityRepo *repository.ActivityRepository
	allergenRepo *repository.AllergenRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(activityRepo *repository.ActivityRepository, allergenRepo *repository.AllergenRepository) *CatalogService {
	return &CatalogService{
		activityRepo: activityRepo,
		allergenRepo: allergenRepo,
	}
}

// CreateActivity 创建活动
func (s *CatalogService) CreateActivity(req *dto.CatalogItemRequest) (*models.Activity, error) {
	activity := &models.Activity{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.activityRepo.Create(activity); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 活动名称或描述已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("创建活动失败: %w", err)
	}
	return activity, nil
}

// GetActivity 获取活动
func (s *CatalogService) GetActivity(id uint) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return activity, nil
}

// ListActivities 获取活动列表
func (s *CatalogService) ListActivities() ([]models.Activity, error) {
	return s.activityRepo.List()
}

// UpdateActivity 整体更新活动
func (s *CatalogService) UpdateActivity(id uint, req *dto.CatalogItemRequest) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	activity.Name = req.Name
	activity.Description = req.Description
	if err := s.activityRepo.Update(activity); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 活动名称或描述已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("更新活动失败: %w", err)
	}
	return activity, nil
}

// PatchActivity 部分更新活动
func (s *CatalogService) PatchActivity(id uint, req *dto.CatalogItemPatchRequest) (*models.Activity, error) {
	activity, err := s.activityRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if err := s.activityRepo.Update(activity); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 活动名称或描述已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("更新活动失败: %w", err)
	}
	return activity, nil
}

// DeleteActivity 删除活动
func (s *CatalogService) DeleteActivity(id uint) error {
	if _, err := s.activityRepo.GetByID(id); err != nil {
		return translateDBError(err)
	}
	return s.activityRepo.Delete(id)
}

// CreateAllergen 创建过敏原
func (s *CatalogService) CreateAllergen(req *dto.CatalogItemRequest) (*models.Allergen, error) {
	allergen := &models.Allergen{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.allergenRepo.Create(allergen); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 过敏原名称或描述已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("创建过敏原失败: %w", err)
	}
	return allergen, nil
}

// GetAllergen 获取过敏原
func (s *CatalogService) GetAllergen(id uint) (*models.Allergen, error) {
	allergen, err := s.allergenRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return allergen, nil
}

// ListAllergens 获取过敏原列表
func (s *CatalogService) ListAllergens() ([]models.Allergen, error) {
	return s.allergenRepo.List()
}

// UpdateAllergen 整体更新过敏原
func (s *CatalogService) UpdateAllergen(id uint, req *dto.CatalogItemRequest) (*models.Allergen, error) {
	allergen, err := s.allergenRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	allergen.Name = req.Name
	allergen.Description = req.Description
	if err := s.allergenRepo.Update(allergen); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 过敏原名称或描述已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("更新过敏原失败: %w", err)
	}
	return allergen, nil
}

// PatchAllergen 部分更新过敏原
func (s *CatalogService) PatchAllergen(id uint, req *dto.CatalogItemPatchRequest) (*models.Allergen, error) {
	allergen, err := s.allergenRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	if req.Name != nil {
		allergen.Name = *req.Name
	}
	if req.Description != nil {
		allergen.Description = *req.Description
	}
	if err := s.allergenRepo.Update(allergen); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 过敏原名称或描述已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("更新过敏原失败: %w", err)
	}
	return allergen, nil
}

// DeleteAllergen 删除过敏原
func (s *CatalogService) DeleteAllergen(id uint) error {
	if _, err := s.allergenRepo.GetByID(id); err != nil {
		return translateDBError(err)
	}
	return s.allergenRepo.Delete(id)
}
