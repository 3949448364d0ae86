package dto

import helper "classroom_backend/internals/helpers"

type CreateAssignmentRequest struct {
	ClassID     helper.FlexInt  `json:"class_id"`
	Title       string          `json:"title" validate:"required"`
	Description *string         `json:"description,omitempty"`
	Type        *string         `json:"type,omitempty" validate:"omitempty,oneof=ASSIGNMENT MATERIAL"`
	FilePath    *string         `json:"file_path,omitempty"`
	DueDate     *string         `json:"due_date,omitempty"` // YYYY-MM-DD
	MaxScore    *helper.FlexInt `json:"max_score,omitempty"`
}

// UpdateAssignmentRequest is partial: only non-nil fields overwrite.
type UpdateAssignmentRequest struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	FilePath    *string         `json:"file_path,omitempty"`
	DueDate     *string         `json:"due_date,omitempty"` // YYYY-MM-DD
	MaxScore    *helper.FlexInt `json:"max_score,omitempty"`
}
