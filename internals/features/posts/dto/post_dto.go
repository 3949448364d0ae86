package dto

import helper "classroom_backend/internals/helpers"

type CreatePostRequest struct {
	ClassID  helper.FlexInt `json:"class_id"`
	AuthorID helper.FlexInt `json:"author_id"`
	Content  string         `json:"content" validate:"required"`
	FilePath *string        `json:"file_path,omitempty"`
}
