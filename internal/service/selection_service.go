package service

import (
	"fmt"

	"planner-go/internal/models"
	"planner-go/internal/repository"
)

// SelectionService 用户选择服务(活动与过敏原关联)
type SelectionService struct {
	userActivityRepo *repository.UserActivityRepository
	userAllergenRepo *repository.UserAllergenRepository
	activityRepo     *repository.ActivityRepository
	allergenRepo     *repository.AllergenRepository
}

// NewSelectionService 创建选择服务
func NewSelectionService(
	userActivityRepo *repository.UserActivityRepository,
	userAllergenRepo *repository.UserAllergenRepository,
	activityRepo *repository.ActivityRepository,
	allergenRepo *repository.AllergenRepository,
) *SelectionService {
	return &SelectionService{
		userActivityRepo: userActivityRepo,
		userAllergenRepo: userAllergenRepo,
		activityRepo:     activityRepo,
		allergenRepo:     allergenRepo,
	}
}

// CreateUserActivity 创建用户-活动关联
func (s *SelectionService) CreateUserActivity(userID, activityID uint) (*models.UserActivity, error) {
	if _, err := s.activityRepo.GetByID(activityID); err != nil {
		return nil, fmt.Errorf("%w: 活动不存在", ErrNotFound)
	}

	ua := &models.UserActivity{UserID: userID, ActivityID: activityID}
	if err := s.userActivityRepo.Create(ua); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 该活动已在选择中", ErrDuplicate)
		}
		return nil, fmt.Errorf("创建关联失败: %w", err)
	}
	return s.userActivityRepo.GetByID(ua.ID)
}

// GetUserActivity 获取用户-活动关联
func (s *SelectionService) GetUserActivity(id uint) (*models.UserActivity, error) {
	ua, err := s.userActivityRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return ua, nil
}

// ListUserActivities 获取全部用户-活动关联
func (s *SelectionService) ListUserActivities() ([]models.UserActivity, error) {
	return s.userActivityRepo.List()
}

// ListOwnActivities 获取用户自己的活动选择
func (s *SelectionService) ListOwnActivities(userID uint) ([]models.UserActivity, error) {
	return s.userActivityRepo.ListByUserID(userID)
}

// DeleteUserActivity 删除用户-活动关联
func (s *SelectionService) DeleteUserActivity(id uint) error {
	return s.userActivityRepo.Delete(id)
}

// ReplaceActivities 整体替换用户的活动选择(全部成功或保持原状)
func (s *SelectionService) ReplaceActivities(userID uint, activityIDs []uint) ([]models.UserActivity, error) {
	ids := dedupeIDs(activityIDs)

	ok, err := s.activityRepo.ExistByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("检查活动失败: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: 部分活动不存在", ErrNotFound)
	}

	if err := s.userActivityRepo.ReplaceForUser(userID, ids); err != nil {
		return nil, fmt.Errorf("替换活动选择失败: %w", err)
	}
	return s.userActivityRepo.ListByUserID(userID)
}

// CreateUserAllergen 创建用户-过敏原关联
func (s *SelectionService) CreateUserAllergen(userID, allergenID uint) (*models.UserAllergen, error) {
	if _, err := s.allergenRepo.GetByID(allergenID); err != nil {
		return nil, fmt.Errorf("%w: 过敏原不存在", ErrNotFound)
	}

	ua := &models.UserAllergen{UserID: userID, AllergenID: allergenID}
	if err := s.userAllergenRepo.Create(ua); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: 该过敏原已在选择中", ErrDuplicate)
		}
		return nil, fmt.Errorf("创建关联失败: %w", err)
	}
	return s.userAllergenRepo.GetByID(ua.ID)
}

// GetUserAllergen 获取用户-过敏原关联
func (s *SelectionService) GetUserAllergen(id uint) (*models.UserAllergen, error) {
	ua, err := s.userAllergenRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err)
	}
	return ua, nil
}

// ListUserAllergens 获取全部用户-过敏原关联
func (s *SelectionService) ListUserAllergens() ([]models.UserAllergen, error) {
	return s.userAllergenRepo.List()
}

// ListOwnAllergens 获取用户自己的过敏原选择
func (s *SelectionService) ListOwnAllergens(userID uint) ([]models.UserAllergen, error) {
	return s.userAllergenRepo.ListByUserID(userID)
}

// DeleteUserAllergen 删除用户-过敏原关联
func (s *SelectionService) DeleteUserAllergen(id uint) error {
	return s.userAllergenRepo.Delete(id)
}

// ReplaceAllergens 整体替换用户的过敏原选择(全部成功或保持原状)
func (s *SelectionService) ReplaceAllergens(userID uint, allergenIDs []uint) ([]models.UserAllergen, error) {
	ids := dedupeIDs(allergenIDs)

	ok, err := s.allergenRepo.ExistByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("检查过敏原失败: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: 部分过敏原不存在", ErrNotFound)
	}

	if err := s.userAllergenRepo.ReplaceForUser(userID, ids); err != nil {
		return nil, fmt.Errorf("替换过敏原选择失败: %w", err)
	}
	return s.userAllergenRepo.ListByUserID(userID)
}

// dedupeIDs 去重，保持输入顺序
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
