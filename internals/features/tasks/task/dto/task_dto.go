package dto

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateTaskRequest: partial update — field nil tidak diubah
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Completed   *bool   `json:"completed"`
}
