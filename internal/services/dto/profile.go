package dto

import (
	"encoding/json"
)

// UpdateProfileRequest creates or completes the caller's profile.
// WorkHours and Bio are passed through to jsonb columns unparsed.
type UpdateProfileRequest struct {
	Name          string          `json:"name" validate:"required,max=120"`
	DateOfBirth   string          `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Job           string          `json:"job,omitempty" validate:"omitempty,max=120"`
	Certification string          `json:"certification,omitempty" validate:"omitempty,max=120"`
	WorkHours     json.RawMessage `json:"work_hours,omitempty"`
	Bio           json.RawMessage `json:"bio,omitempty"`
}
