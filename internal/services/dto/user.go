package dto

import (
	"riskscreen_backend/internal/models"
)

type UserListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Role     string `form:"role" validate:"omitempty,oneof=member admin"`
	Status   string `form:"status" validate:"omitempty,oneof=active inactive"`
	Search   string `form:"search"`
}

type UserListResponse struct {
	Users    []UserDTO `json:"users"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

type UpdateUserRequest struct {
	Role   models.UserRole   `json:"role,omitempty" validate:"omitempty,oneof=member admin"`
	Status models.UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
