package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
)

// UserActivityRepository 用户-活动关联数据访问层
type UserActivityRepository struct {
	db *gorm.DB
}

// NewUserActivityRepository 创建用户活动Repository
func NewUserActivityRepository(db *gorm.DB) *UserActivityRepository {
	return &UserActivityRepository{db: db}
}

// Create 创建关联
func (r *UserActivityRepository) Create(ua *models.UserActivity) error {
	return r.db.Create(ua).Error
}

// GetByID 根据ID获取关联
func (r *UserActivityRepository) GetByID(id uint) (*models.UserActivity, error) {
	var ua models.UserActivity
	err := r.db.Preload("Activity").First(&ua, id).Error
	if err != nil {
		return nil, err
	}
	return &ua, nil
}

// List 获取全部关联
func (r *UserActivityRepository) List() ([]models.UserActivity, error) {
	var uas []models.UserActivity
	err := r.db.Preload("Activity").Order("id").Find(&uas).Error
	return uas, err
}

// ListByUserID 获取用户的活动选择
func (r *UserActivityRepository) ListByUserID(userID uint) ([]models.UserActivity, error) {
	var uas []models.UserActivity
	err := r.db.Preload("Activity").Where("user_id = ?", userID).Order("id").Find(&uas).Error
	return uas, err
}

// Delete 删除关联
func (r *UserActivityRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserActivity{}, id).Error
}

// ReplaceForUser 整体替换用户的活动选择(单事务，全部成功或全部回滚)
func (r *UserActivityRepository) ReplaceForUser(userID uint, activityIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserActivity{}).Error; err != nil {
			return err
		}
		for _, activityID := range activityIDs {
			ua := models.UserActivity{UserID: userID, ActivityID: activityID}
			if err := tx.Create(&ua).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
