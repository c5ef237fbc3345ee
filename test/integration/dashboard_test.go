package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"riskscreen_backend/test/helpers"
)

func TestDashboard_AdminOverview(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	helpers.CreateAndLoginMember(t, ts, tx)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	helpers.CreateCategory(t, tx, uniqueName("Dashboard Category"), 2)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/dashboard", adminToken, nil, tx)

	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var overview struct {
		Users struct {
			Total  int64            `json:"total"`
			Today  int64            `json:"today"`
			ByRole map[string]int64 `json:"by_role"`
		} `json:"users"`
		Categories int64 `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &overview))
	assert.GreaterOrEqual(t, overview.Users.Total, int64(2))
	assert.GreaterOrEqual(t, overview.Users.Today, int64(2))
	assert.GreaterOrEqual(t, overview.Users.ByRole["admin"], int64(1))
	assert.GreaterOrEqual(t, overview.Categories, int64(1))
}

func TestDashboard_MemberForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	memberToken, _ := helpers.CreateAndLoginMember(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/dashboard", memberToken, nil, tx)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "ok")
}
