package repository

import (
	"planner-go/internal/models"

	"gorm.io/gorm"
)

// UserAllergenRepository 用户-过敏原关联数据访问层
type UserAllergenRepository struct {
	db *gorm.DB
}

// NewUserAllergenRepository 创建用户过敏原Repository
func NewUserAllergenRepository(db *gorm.DB) *UserAllergenRepository {
	return &UserAllergenRepository{db: db}
}

// Create 创建关联
func (r *UserAllergenRepository) Create(ua *models.UserAllergen) error {
	return r.db.Create(ua).Error
}

// GetByID 根据ID获取关联
func (r *UserAllergenRepository) GetByID(id uint) (*models.UserAllergen, error) {
	var ua models.UserAllergen
	err := r.db.Preload("Allergen").First(&ua, id).Error
	if err != nil {
		return nil, err
	}
	return &ua, nil
}

// List 获取全部关联
func (r *UserAllergenRepository) List() ([]models.UserAllergen, error) {
	var uas []models.UserAllergen
	err := r.db.Preload("Allergen").Order("id").Find(&uas).Error
	return uas, err
}

// ListByUserID 获取用户的过敏原选择
func (r *UserAllergenRepository) ListByUserID(userID uint) ([]models.UserAllergen, error) {
	var uas []models.UserAllergen
	err := r.db.Preload("Allergen").Where("user_id = ?", userID).Order("id").Find(&uas).Error
	return uas, err
}

// Delete 删除关联
func (r *UserAllergenRepository) Delete(id uint) error {
	return r.db.Delete(&models.UserAllergen{}, id).Error
}

// ReplaceForUser 整体替换用户的过敏原选择(单事务，全部成功或全部回滚)
func (r *UserAllergenRepository) ReplaceForUser(userID uint, allergenIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserAllergen{}).Error; err != nil {
			return err
		}
		for _, allergenID := range allergenIDs {
			ua := models.UserAllergen{UserID: userID, AllergenID: allergenID}
			if err := tx.Create(&ua).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
