package dto

// CreateUserRequest is used by admins to add back-office accounts.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=150"`
	Role     string `json:"role" validate:"required,oneof=admin editor"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=150"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}
