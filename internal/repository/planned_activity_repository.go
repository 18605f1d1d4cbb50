package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
)

// PlannedActivityRepository 计划活动数据访问层
type PlannedActivityRepository struct {
	db *gorm.DB
}

// NewPlannedActivityRepository 创建计划活动Repository
func NewPlannedActivityRepository(db *gorm.DB) *PlannedActivityRepository {
	return &PlannedActivityRepository{db: db}
}

// Create 创建计划活动
func (r *PlannedActivityRepository) Create(pa *models.PlannedActivity) error {
	return r.db.Create(pa).Error
}

// GetByID 根据ID获取计划活动
func (r *PlannedActivityRepository) GetByID(id uint) (*models.PlannedActivity, error) {
	var pa models.PlannedActivity
	err := r.db.Preload("Activity").First(&pa, id).Error
	if err != nil {
		return nil, err
	}
	return &pa, nil
}

// List 获取全部计划活动
func (r *PlannedActivityRepository) List() ([]models.PlannedActivity, error) {
	var pas []models.PlannedActivity
	err := r.db.Preload("Activity").Order("id").Find(&pas).Error
	return pas, err
}

// ListByUserID 获取用户的计划活动
func (r *PlannedActivityRepository) ListByUserID(userID uint) ([]models.PlannedActivity, error) {
	var pas []models.PlannedActivity
	err := r.db.Preload("Activity").Where("user_id = ?", userID).Order("start_date").Find(&pas).Error
	return pas, err
}

// Update 保存计划活动
func (r *PlannedActivityRepository) Update(pa *models.PlannedActivity) error {
	return r.db.Save(pa).Error
}

// Delete 删除计划活动
func (r *PlannedActivityRepository) Delete(id uint) error {
	return r.db.Delete(&models.PlannedActivity{}, id).Error
}
