package dto

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	RiskWeight  int    `json:"risk_weight" validate:"omitempty,min=1,max=10"`
}
