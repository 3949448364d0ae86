package dto

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=Admin Teacher Student"`
	Mssv     *string `json:"mssv,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// UpdateUserRequest is merge-patch: nil means "leave unchanged".
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`
	Role   *string `json:"role,omitempty" validate:"omitempty,oneof=Admin Teacher Student"`
	Mssv   *string `json:"mssv,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}
