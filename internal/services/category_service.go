package services

import (
	"gorm.io/gorm"

	"riskscreen_backend/internal/models"
	"riskscreen_backend/internal/repositories"
	"riskscreen_backend/internal/services/dto"
	"riskscreen_backend/pkg/apperrors"
)

type CategoryService interface {
	List(db *gorm.DB) ([]models.Category, error)
	Create(db *gorm.DB, req *dto.CategoryRequest) (*models.Category, error)
	Update(db *gorm.DB, id uint, req *dto.CategoryRequest) (*models.Category, error)
	Delete(db *gorm.DB, id uint) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(db *gorm.DB) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Create(db *gorm.DB, req *dto.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		RiskWeight:  req.RiskWeight,
	}
	if category.RiskWeight == 0 {
		category.RiskWeight = 1
	}

	if err := s.categoryRepo.Create(db, category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateCategory) {
			return nil, apperrors.ErrCategoryNameTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(db *gorm.DB, id uint, req *dto.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	category.Name = req.Name
	category.Description = req.Description
	if req.RiskWeight != 0 {
		category.RiskWeight = req.RiskWeight
	}

	if err := s.categoryRepo.Update(db, category); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateCategory) {
			return nil, apperrors.ErrCategoryNameTaken
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Delete(db *gorm.DB, id uint) error {
	err := s.categoryRepo.Delete(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
