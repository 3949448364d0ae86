package dto

import helper "classroom_backend/internals/helpers"

type CreateNotificationRequest struct {
	UserID      helper.FlexInt `json:"user_id"`
	Title       string         `json:"title" validate:"required"`
	Description *string        `json:"description,omitempty"`
	Role        *string        `json:"role,omitempty" validate:"omitempty,oneof=Admin Teacher Student"`
}
