package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"riskscreen_backend/internal/auth"
	"riskscreen_backend/internal/models"
	"riskscreen_backend/internal/repositories"
	"riskscreen_backend/internal/services/dto"
	"riskscreen_backend/pkg/apperrors"
)

// fakeUserRepo serves users from an in-memory map keyed by email.
type fakeUserRepo struct {
	repositories.UserRepository
	usersByEmail map[string]*models.User
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id uint) (*models.User, error) {
	for _, user := range f.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeVerifier struct {
	claims *auth.GoogleClaims
	err    error
}

func (f *fakeVerifier) Verify(context.Context, string) (*auth.GoogleClaims, error) {
	return f.claims, f.err
}

func dtoLogin(email, password string) *dto.LoginRequest {
	return &dto.LoginRequest{Email: email, Password: password}
}

func mustHash(t *testing.T, password string) string {
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return hash
}

func newTestAuthService(users map[string]*models.User, verifier auth.IDTokenVerifier) AuthService {
	tokens := auth.NewTokenService(auth.StaticSecret("service-test-secret"), time.Hour)
	return NewAuthService(&fakeUserRepo{usersByEmail: users}, nil, tokens, verifier, nil)
}

// Unknown email, wrong password and federated-only accounts all fail with
// the same error so responses cannot be used for account enumeration.
func TestLogin_UniformFailure(t *testing.T) {
	known := &models.User{
		Email:        "known@test.com",
		PasswordHash: mustHash(t, "right-password"),
		Status:       models.UserStatusActive,
	}
	known.ID = 1
	federated := &models.User{
		Email:         "federated@test.com",
		PasswordHash:  "",
		GoogleSubject: "sub-1",
		Status:        models.UserStatusActive,
	}
	federated.ID = 2

	svc := newTestAuthService(map[string]*models.User{
		known.Email:     known,
		federated.Email: federated,
	}, nil)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "ghost@test.com", "right-password"},
		{"wrong password", "known@test.com", "wrong-password"},
		{"federated-only account", "federated@test.com", "any-password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(nil, dtoLogin(tc.email, tc.password))
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	user := &models.User{
		Email:        "ok@test.com",
		PasswordHash: mustHash(t, "right-password"),
		Role:         models.UserRoleMember,
		Status:       models.UserStatusActive,
	}
	user.ID = 7

	svc := newTestAuthService(map[string]*models.User{user.Email: user}, nil)

	resp, err := svc.Login(nil, dtoLogin("ok@test.com", "right-password"))
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_InactiveUser(t *testing.T) {
	user := &models.User{
		Email:        "inactive@test.com",
		PasswordHash: mustHash(t, "right-password"),
		Status:       models.UserStatusInactive,
	}
	user.ID = 3

	svc := newTestAuthService(map[string]*models.User{user.Email: user}, nil)

	_, err := svc.Login(nil, dtoLogin("inactive@test.com", "right-password"))
	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

// Every verifier failure surfaces as the one federated-auth error.
func TestGoogleSignIn_VerifierFailure(t *testing.T) {
	svc := newTestAuthService(map[string]*models.User{}, &fakeVerifier{err: errors.New("bad signature")})

	_, created, err := svc.GoogleSignIn(context.Background(), nil, "whatever")
	assert.False(t, created)
	assert.ErrorIs(t, err, apperrors.ErrFederatedAuthFailed)
}

// An existing account matched by email logs straight in without being
// re-provisioned; token claims are not synced onto the stored row.
func TestGoogleSignIn_ExistingUser(t *testing.T) {
	user := &models.User{
		Email:  "existing@test.com",
		Role:   models.UserRoleMember,
		Status: models.UserStatusActive,
	}
	user.ID = 11

	verifier := &fakeVerifier{claims: &auth.GoogleClaims{
		Email:   "existing@test.com",
		Name:    "Different Name",
		Subject: "sub-9",
	}}
	svc := newTestAuthService(map[string]*models.User{user.Email: user}, verifier)

	resp, created, err := svc.GoogleSignIn(context.Background(), nil, "cred")
	assert.NoError(t, err)
	assert.False(t, created, "an existing account is a login, not a provision")
	assert.Equal(t, uint(11), resp.User.ID)
}

// racingUserRepo simulates losing the provisioning race: the first lookup
// misses, the insert then hits the unique email index, and every later
// lookup sees the winner's row.
type racingUserRepo struct {
	repositories.UserRepository
	winner        *models.User
	createCalls   int
	insertClashed bool
}

func (r *racingUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if !r.insertClashed {
		return nil, repositories.ErrUserNotFound
	}
	return r.winner, nil
}

func (r *racingUserRepo) Create(_ *gorm.DB, _ *models.User) error {
	r.createCalls++
	r.insertClashed = true
	return repositories.ErrDuplicateEmail
}

// Two callers provisioning the same verified email must converge on one row:
// the loser's insert fails on the unique index, after which it re-reads the
// winner and reports a plain login, never a second user.
func TestGoogleSignIn_ProvisionRaceReturnsWinner(t *testing.T) {
	winner := &models.User{
		Email:         "raced@test.com",
		GoogleSubject: "sub-winner",
		Role:          models.UserRoleMember,
		Status:        models.UserStatusActive,
	}
	winner.ID = 21

	repo := &racingUserRepo{winner: winner}
	verifier := &fakeVerifier{claims: &auth.GoogleClaims{
		Email:   "raced@test.com",
		Name:    "Raced User",
		Subject: "sub-loser-view",
	}}

	svc := &AuthServiceImpl{
		userRepo: repo,
		tokens:   auth.NewTokenService(auth.StaticSecret("service-test-secret"), time.Hour),
		verifier: verifier,
		runTx: func(db *gorm.DB, fn func(tx *gorm.DB) error) error {
			return fn(db)
		},
	}

	resp, created, err := svc.GoogleSignIn(context.Background(), nil, "cred")
	assert.NoError(t, err)
	assert.False(t, created, "losing the race must read as a login, not a provision")
	assert.Equal(t, uint(21), resp.User.ID, "the winner's row is authoritative")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 1, repo.createCalls, "the loser must not retry the insert")
}

func TestGoogleSignIn_InactiveExistingUser(t *testing.T) {
	user := &models.User{
		Email:  "inactive_g@test.com",
		Status: models.UserStatusInactive,
	}
	user.ID = 12

	verifier := &fakeVerifier{claims: &auth.GoogleClaims{Email: "inactive_g@test.com"}}
	svc := newTestAuthService(map[string]*models.User{user.Email: user}, verifier)

	_, _, err := svc.GoogleSignIn(context.Background(), nil, "cred")
	assert.ErrorIs(t, err, apperrors.ErrUserInactive)
}

func TestMe_NotFound(t *testing.T) {
	svc := newTestAuthService(map[string]*models.User{}, nil)

	_, err := svc.Me(nil, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
