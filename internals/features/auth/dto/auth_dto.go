package dto

import userModel "classroom_backend/internals/features/users/model"

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=Admin Teacher Student"`
	Mssv     *string `json:"mssv,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AuthResponse struct {
	Token string               `json:"token"`
	User  *userModel.UserModel `json:"user"`
}
