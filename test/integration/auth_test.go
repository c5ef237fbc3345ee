package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"riskscreen_backend/internal/auth"
	"riskscreen_backend/internal/models"
	"riskscreen_backend/test/helpers"
)

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"name":     "New Member",
		"email":    "register_success@test.com",
		"password": "super_password123",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody, tx)

	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "register_success@test.com")
	assert.Contains(t, bodyStr, `"role":"member"`)

	// The profile row from the same transaction must exist too.
	var profile models.Profile
	err := tx.Where("name = ?", "New Member").First(&profile).Error
	assert.NoError(t, err, "registration with a name must create the profile")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "duplicate@test.com",
		PasswordHash: "pass12345",
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":    "duplicate@test.com",
		"password": "password_is_long_enough_123",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody, tx)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already in use")
}

func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "weak@test.com",
		"password": "short",
	}, tx)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "login_success@test.com",
		PasswordHash: "correct-password",
	})
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "login_success@test.com",
		"password": "correct-password",
	}, tx)

	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"token"`)
	assert.Contains(t, bodyStr, "login_success@test.com")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "badpass@test.com",
		PasswordHash: "correct-password",
	})
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "badpass@test.com",
		"password": "WRONG-password",
	}, tx)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_UnknownEmailSameError(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody_here@test.com",
		"password": "whatever123",
	}, tx)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestLogin_InactiveUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "inactive@test.com",
		PasswordHash: "correct-password",
		Status:       models.UserStatusInactive,
	})
	assert.NoError(t, err)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "inactive@test.com",
		"password": "correct-password",
	}, tx)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Account is inactive")
}

func TestGoogleSignIn_ProvisionsThenLogsIn(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	verifier := GetVerifier(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	credential := fmt.Sprintf("google-cred-%d", time.Now().UnixNano())
	email := fmt.Sprintf("google_%d@test.com", time.Now().UnixNano())
	verifier.Register(credential, auth.GoogleClaims{
		Email:   email,
		Name:    "Google Person",
		Subject: "google-subject-1",
	})

	// First sign-in provisions the account.
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/google", "", map[string]interface{}{
		"credential": credential,
	}, tx)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var first struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &first))
	assert.NotZero(t, first.User.ID)
	assert.NotEmpty(t, first.Token)

	// Same credential again is a plain login against the same user.
	res2, bodyStr2 := ts.SendRequest(t, "POST", "/api/v1/auth/google", "", map[string]interface{}{
		"credential": credential,
	}, tx)
	assert.Equal(t, http.StatusOK, res2.StatusCode, bodyStr2)

	var second struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr2), &second))
	assert.Equal(t, first.User.ID, second.User.ID)

	// The provisioned account has no local password, only the Google link.
	var user models.User
	assert.NoError(t, tx.Where("email = ?", email).First(&user).Error)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "google-subject-1", user.GoogleSubject)
}

func TestGoogleSignIn_BadCredential(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/google", "", map[string]interface{}{
		"credential": "not-a-real-credential",
	}, tx)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Google authentication failed")
}

// A federated-only account must reject password login outright.
func TestLogin_FederatedOnlyAccount(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	federated := &models.User{
		Email:         "federated_only@test.com",
		PasswordHash:  "",
		GoogleSubject: "subject-xyz",
		Role:          models.UserRoleMember,
		Status:        models.UserStatusActive,
	}
	assert.NoError(t, tx.Create(federated).Error)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "federated_only@test.com",
		"password": "anything_at_all",
	}, tx)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestMe(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginMember(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil, tx)

	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, user.Email)
}

func TestMe_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil, tx)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, `"code":"UNAUTHORIZED"`)
}

// A bad token gets the same error envelope as every other failure.
func TestMe_InvalidToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", "not.a.valid.token", nil, tx)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, `"code":"INVALID_TOKEN"`)
	assert.Contains(t, bodyStr, "Invalid or expired token")
}
