package models

// Category is a screening category (a class of substance or behavior the
// questionnaire covers). Names are unique; RiskWeight scales a category's
// contribution to the aggregate risk score.
type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	RiskWeight  int    `gorm:"not null;default:1" json:"risk_weight"`
}
