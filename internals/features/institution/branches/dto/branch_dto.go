package dto

type CreateBranchRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Code    string  `json:"code" validate:"required,min=2,max=20,alphanum"`
	City    string  `json:"city" validate:"required,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	City     *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	IsActive *bool   `json:"is_active,omitempty"`
}
