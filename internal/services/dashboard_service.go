package services

import (
	"gorm.io/gorm"

	"riskscreen_backend/internal/repositories"
	"riskscreen_backend/internal/services/dto"
	"riskscreen_backend/pkg/apperrors"
)

type DashboardService interface {
	Overview(db *gorm.DB) (*dto.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *DashboardServiceImpl) Overview(db *gorm.DB) (*dto.DashboardResponse, error) {
	userStats, err := s.userRepo.GetRegistrationStats(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	categoryCount, err := s.categoryRepo.Count(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		Users:      userStats,
		Categories: categoryCount,
	}, nil
}
