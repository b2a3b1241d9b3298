package dto

type CreateCourseRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=150"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DurationWeeks int     `json:"duration_weeks" validate:"gte=0,lte=520"`
}

type UpdateCourseRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	DurationWeeks *int    `json:"duration_weeks,omitempty" validate:"omitempty,gte=0,lte=520"`
	IsActive      *bool   `json:"is_active,omitempty"`
}
