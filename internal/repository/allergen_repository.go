package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
)

// AllergenRepository 过敏原目录数据访问层
type AllergenRepository struct {
	db *gorm.DB
}

// NewAllergenRepository 创建过敏原Repository
func NewAllergenRepository(db *gorm.DB) *AllergenRepository {
	return &AllergenRepository{db: db}
}

// Create 创建过敏原
func (r *AllergenRepository) Create(allergen *models.Allergen) error {
	return r.db.Create(allergen).Error
}

// GetByID 根据ID获取过敏原
func (r *AllergenRepository) GetByID(id uint) (*models.Allergen, error) {
	var allergen models.Allergen
	err := r.db.First(&allergen, id).Error
	if err != nil {
		return nil, err
	}
	return &allergen, nil
}

// List 获取过敏原列表
func (r *AllergenRepository) List() ([]models.Allergen, error) {
	var allergens []models.Allergen
	err := r.db.Order("id").Find(&allergens).Error
	return allergens, err
}

// Update 保存过敏原
func (r *AllergenRepository) Update(allergen *models.Allergen) error {
	return r.db.Save(allergen).Error
}

// Delete 删除过敏原
func (r *AllergenRepository) Delete(id uint) error {
	return r.db.Delete(&models.Allergen{}, id).Error
}

// ExistByIDs 检查给定ID是否全部存在
func (r *AllergenRepository) ExistByIDs(ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := r.db.Model(&models.Allergen{}).Where("id IN ?", ids).Count(&count).Error
	return count == int64(len(ids)), err
}
