package models

type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// PasswordHash is empty for federated-only accounts. An empty hash is
	// the "no local password set" sentinel: password login against such an
	// account always fails as invalid credentials.
	PasswordHash string `gorm:"column:password_hash" json:"-"`

	// GoogleSubject is the issuer-scoped stable id of the linked Google
	// account, set at first federated sign-in.
	GoogleSubject string `gorm:"index" json:"-"`

	Role   UserRole   `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Status UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// HasLocalPassword reports whether password login is possible at all for
// this account.
func (u *User) HasLocalPassword() bool {
	return u.PasswordHash != ""
}
