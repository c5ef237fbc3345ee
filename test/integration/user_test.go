package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"riskscreen_backend/internal/models"
	"riskscreen_backend/test/helpers"
)

func TestListUsers_AdminOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	memberToken, _ := helpers.CreateAndLoginMember(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users", memberToken, nil, tx)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users", adminToken, nil, tx)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var response struct {
		Users []json.RawMessage `json:"users"`
		Total int64             `json:"total"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &response))
	assert.GreaterOrEqual(t, response.Total, int64(2))
}

func TestListUsers_RoleFilter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateAndLoginMember(t, ts, tx)
	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users?role=admin", adminToken, nil, tx)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, admin.Email)
	assert.Contains(t, bodyStr, `"role":"admin"`)
	assert.NotContains(t, bodyStr, `"role":"member"`)
}

func TestListUsers_InvalidFilter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users?role=superuser", adminToken, nil, tx)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetUser_SelfAndOther(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	memberToken, member := helpers.CreateAndLoginMember(t, ts, tx)
	_, other := helpers.CreateAndLoginMember(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	// A member can fetch their own record.
	res, bodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/users/%d", member.ID), memberToken, nil, tx)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, member.Email)

	// But not somebody else's.
	res, _ = ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/users/%d", other.ID), memberToken, nil, tx)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// An admin can fetch anybody.
	res, bodyStr = ts.SendRequest(t, "GET", fmt.Sprintf("/api/v1/users/%d", other.ID), adminToken, nil, tx)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, other.Email)
}

func TestUpdateUser_RoleAndStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, member := helpers.CreateAndLoginMember(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "PUT", fmt.Sprintf("/api/v1/users/%d", member.ID), adminToken, map[string]interface{}{
		"status": "inactive",
	}, tx)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"status":"inactive"`)

	var updated models.User
	assert.NoError(t, tx.First(&updated, member.ID).Error)
	assert.Equal(t, models.UserStatusInactive, updated.Status)
}

func TestUpdateUser_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/users/999999", adminToken, map[string]interface{}{
		"status": "inactive",
	}, tx)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteUser_RemovesProfileToo(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	memberToken, member := helpers.CreateAndLoginMember(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	// Give the member a profile first.
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/profile", memberToken, map[string]interface{}{
		"name": "Doomed Profile",
	}, tx)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", fmt.Sprintf("/api/v1/users/%d", member.ID), adminToken, nil, tx)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var count int64
	tx.Model(&models.User{}).Where("id = ?", member.ID).Count(&count)
	assert.Zero(t, count)
	tx.Model(&models.Profile{}).Where("user_id = ?", member.ID).Count(&count)
	assert.Zero(t, count, "deleting a user must delete the profile")
}

func TestDeleteUser_MemberForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	memberToken, member := helpers.CreateAndLoginMember(t, ts, tx)

	res, _ := ts.SendRequest(t, "DELETE", fmt.Sprintf("/api/v1/users/%d", member.ID), memberToken, nil, tx)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
