package repositories

import (
	"errors"

	"gorm.io/gorm"

	"riskscreen_backend/internal/models"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category name already in use")
)

type CategoryRepository interface {
	FindAll(db *gorm.DB) ([]models.Category, error)
	FindByID(db *gorm.DB, id uint) (*models.Category, error)
	Create(db *gorm.DB, category *models.Category) error
	Update(db *gorm.DB, category *models.Category) error
	Delete(db *gorm.DB, id uint) error
	Count(db *gorm.DB) (int64, error)
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	err := db.Create(category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

func (r *CategoryRepositoryImpl) Update(db *gorm.DB, category *models.Category) error {
	result := db.Model(category).Updates(map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
		"risk_weight": category.RiskWeight,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCategory
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
