package services

import (
	"time"

	"gorm.io/gorm"

	"riskscreen_backend/internal/models"
	"riskscreen_backend/internal/repositories"
	"riskscreen_backend/internal/services/dto"
	"riskscreen_backend/pkg/apperrors"
)

type ProfileService interface {
	Get(db *gorm.DB, userID uint) (*models.Profile, error)

	// Update completes or edits the caller's profile, creating it lazily on
	// first call.
	Update(db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) Get(db *gorm.DB, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) Update(db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	creating := false
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.Profile{UserID: userID}
		creating = true
	}

	profile.Name = req.Name
	profile.Job = req.Job
	profile.Certification = req.Certification

	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date_of_birth, expected YYYY-MM-DD")
		}
		profile.DateOfBirth = &dob
	}
	if len(req.WorkHours) > 0 {
		profile.WorkHours = []byte(req.WorkHours)
	}
	if len(req.Bio) > 0 {
		profile.Bio = []byte(req.Bio)
	}

	if creating {
		err = s.profileRepo.Create(db, profile)
	} else {
		err = s.profileRepo.Update(db, profile)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}
