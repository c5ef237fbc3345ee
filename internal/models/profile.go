package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile is the 1:1 extension of User holding the screening-relevant
// personal data. Created lazily: at registration when a name is supplied,
// at first Google sign-in, or via the profile-completion endpoint.
type Profile struct {
	BaseModel
	UserID        uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Name          string     `gorm:"not null" json:"name"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Job           string     `json:"job,omitempty"`
	Certification string     `json:"certification,omitempty"`

	// Free-form blobs kept as jsonb: shift schedules and biography sections
	// are client-defined structures.
	WorkHours datatypes.JSON `gorm:"type:jsonb" json:"work_hours,omitempty"`
	Bio       datatypes.JSON `gorm:"type:jsonb" json:"bio,omitempty"`
}

// SetWorkHours marshals an arbitrary work-hours structure into the jsonb column.
func (p *Profile) SetWorkHours(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.WorkHours = datatypes.JSON(data)
	return nil
}

// SetBio marshals an arbitrary bio structure into the jsonb column.
func (p *Profile) SetBio(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.Bio = datatypes.JSON(data)
	return nil
}
