package services

import (
	"context"

	"gorm.io/gorm"

	"riskscreen_backend/internal/auth"
	"riskscreen_backend/internal/email"
	"riskscreen_backend/internal/logger"
	"riskscreen_backend/internal/models"
	"riskscreen_backend/internal/repositories"
	"riskscreen_backend/internal/services/dto"
	"riskscreen_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)

	// GoogleSignIn verifies the credential and either logs the matching user
	// in or provisions a new one. The bool reports whether a user was
	// created (201) as opposed to found (200).
	GoogleSignIn(ctx context.Context, db *gorm.DB, credential string) (*dto.AuthResponse, bool, error)

	Me(db *gorm.DB, userID uint) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	tokens        *auth.TokenService
	verifier      auth.IDTokenVerifier
	emailProvider email.Provider

	// runTx wraps user+profile creation in a transaction. Tests swap it out
	// to drive the repositories without a live database.
	runTx func(db *gorm.DB, fn func(tx *gorm.DB) error) error
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokens *auth.TokenService,
	verifier auth.IDTokenVerifier,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		tokens:        tokens,
		verifier:      verifier,
		emailProvider: emailProvider,
		runTx: func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
	}
}

// Register creates a local account. User and (when a name is given) Profile
// land in one transaction: either both rows exist afterwards or neither.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleMember
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequestError("Unknown role")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       models.UserStatusActive,
	}

	err = s.runTx(db, func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		if req.Name != "" {
			return s.profileRepo.Create(tx, &models.Profile{
				UserID: user.ID,
				Name:   req.Name,
			})
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user.Email, req.Name)

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// Login authenticates a local account. Unknown email, wrong password and
// federated-only accounts (empty hash) all fail the same way.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.ErrUserInactive
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) GoogleSignIn(ctx context.Context, db *gorm.DB, credential string) (*dto.AuthResponse, bool, error) {
	claims, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		logger.CtxWarn(ctx, "Google credential verification failed", "error", err.Error())
		return nil, false, apperrors.ErrFederatedAuthFailed
	}

	user, err := s.userRepo.FindByEmail(db, claims.Email)
	if err == nil {
		// Existing account: plain login. Name and subject from the token are
		// not re-synced onto the stored record.
		if user.Status != models.UserStatusActive {
			return nil, false, apperrors.ErrUserInactive
		}
		resp, err := s.buildAuthResponse(user)
		return resp, false, err
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, false, apperrors.InternalError(err)
	}

	user, err = s.provisionGoogleUser(db, claims)
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateEmail) {
			// Lost a provisioning race. The winner's row is authoritative;
			// return it as a normal login so both callers see one user.
			winner, ferr := s.userRepo.FindByEmail(db, claims.Email)
			if ferr != nil {
				return nil, false, apperrors.InternalError(ferr)
			}
			resp, rerr := s.buildAuthResponse(winner)
			return resp, false, rerr
		}
		return nil, false, apperrors.InternalError(err)
	}

	resp, err := s.buildAuthResponse(user)
	return resp, true, err
}

func (s *AuthServiceImpl) Me(db *gorm.DB, userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// provisionGoogleUser creates user and profile as one atomic unit. No local
// password is set; the empty hash marks the account federated-only.
func (s *AuthServiceImpl) provisionGoogleUser(db *gorm.DB, claims *auth.GoogleClaims) (*models.User, error) {
	user := &models.User{
		Email:         claims.Email,
		PasswordHash:  "",
		GoogleSubject: claims.Subject,
		Role:          models.UserRoleMember,
		Status:        models.UserStatusActive,
	}

	err := s.runTx(db, func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		return s.profileRepo.Create(tx, &models.Profile{
			UserID: user.ID,
			Name:   claims.Name,
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		User:  dto.NewUserDTO(user),
		Token: token,
	}, nil
}

// sendWelcomeEmail is best effort: registration never fails on mail errors.
func (s *AuthServiceImpl) sendWelcomeEmail(to, name string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Warn("Failed to send welcome email", "error", err.Error())
		}
	}()
}
