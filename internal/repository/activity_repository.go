package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
)

// ActivityRepository 活动目录数据访问层
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository 创建活动Repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create 创建活动
func (r *ActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetByID 根据ID获取活动
func (r *ActivityRepository) GetByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// List 获取活动列表
func (r *ActivityRepository) List() ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Order("id").Find(&activities).Error
	return activities, err
}

// Update 保存活动
func (r *ActivityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

// Delete 删除活动
func (r *ActivityRepository) Delete(id uint) error {
	return r.db.Delete(&models.Activity{}, id).Error
}

// ExistByIDs 检查给定ID是否全部存在
func (r *ActivityRepository) ExistByIDs(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.Model(&models.Activity{}).Where("id IN ?", ids).Count(&count).Error
	return count == int64(len(ids)), err
}
