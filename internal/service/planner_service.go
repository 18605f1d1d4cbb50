package service

import (
	"fmt"
	"time"

	"planner-go/internal/dto"
	"planner-go/internal/models"
	"planner-go/internal/repository"
)

// PlannerService 计划活动服务
type PlannerService struct {
	plannedRepo  *repository.PlannedActivityRepository
	activityRepo *repository.ActivityRepository
}

// NewPlannerService 创建计划活动服务
func NewPlannerService(plannedRepo *repository.PlannedActivityRepository, activityRepo *repository.ActivityRepository) *PlannerService {
	return &PlannerService{
		plannedRepo:  plannedRepo,
		activityRepo: activityRepo,
	}
}

// CreatePlanned 创建计划活动
func (s *PlannerService) CreatePlanned(userID uint, req *dto.CreatePlannedActivityRequest) (*models.PlannedActivity, error) {
	if _, err := s.activityRepo.GetByID(req.ActivityID); err != nil {
		return nil, fmt.Errorf("%w: 活动不存在", ErrNotFound)
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	pa := &models.PlannedActivity{
		UserID:     userID,
		ActivityID: req.ActivityID,
		Location:   req.Location,
		StartDate:  start,
		EndDate:    end,
	}
	if err := s.plannedRepo.Create(pa); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 相同活动与日期的计划已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("创建计划活动失败: %w", err)
	}
	return s.plannedRepo.GetByID(pa.ID)
}

// GetPlanned 获取计划活动
func (s *PlannerService) GetPlanned(id uint) (*models.PlannedActivity, error) {
	pa, err := s.plannedRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return pa, nil
}

// ListPlanned 获取全部计划活动
func (s *PlannerService) ListPlanned() ([]models.PlannedActivity, error) {
	return s.plannedRepo.List()
}

// ListOwnPlanned 获取用户自己的计划活动
func (s *PlannerService) ListOwnPlanned(userID uint) ([]models.PlannedActivity, error) {
	return s.plannedRepo.ListByUserID(userID)
}

// UpdatePlanned 部分更新计划活动
func (s *PlannerService) UpdatePlanned(id uint, req *dto.UpdatePlannedActivityRequest) (*models.PlannedActivity, error) {
	pa, err := s.plannedRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}

	if req.ActivityID != nil {
		if _, err := s.activityRepo.GetByID(*req.ActivityID); err != nil {
			return nil, fmt.Errorf("%w: 活动不存在", ErrNotFound)
		}
		pa.ActivityID = *req.ActivityID
	}
	if req.Location != nil {
		pa.Location = *req.Location
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		pa.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		pa.EndDate = end
	}

	if pa.EndDate.Before(pa.StartDate) {
		return nil, fmt.Errorf("%w: 结束日期不能早于开始日期", ErrInvalid)
	}

	if err := s.plannedRepo.Update(pa); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 相同活动与日期的计划已存在", ErrDuplicate)
		}
		return nil, fmt.Errorf("更新计划活动失败: %w", err)
	}
	return s.plannedRepo.GetByID(pa.ID)
}

// DeletePlanned 删除计划活动
func (s *PlannerService) DeletePlanned(id uint) error {
	return s.plannedRepo.Delete(id)
}

// parseDate 解析YYYY-MM-DD日期
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: 日期格式应为YYYY-MM-DD", ErrInvalid)
	}
	return t, nil
}

// parseDateRange 解析并校验日期范围
func parseDateRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := parseDate(startValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endValue)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: 结束日期不能早于开始日期", ErrInvalid)
	}
	return start, end, nil
}
