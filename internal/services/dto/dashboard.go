package dto

import (
	"riskscreen_backend/internal/repositories"
)

// DashboardResponse is the admin overview.
type DashboardResponse struct {
	Users      *repositories.RegistrationStats `json:"users"`
	Categories int64                           `json:"categories"`
}
