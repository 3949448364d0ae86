package dto

import helper "classroom_backend/internals/helpers"

type CreateSubmissionRequest struct {
	StudentID helper.FlexInt `json:"student_id"`
	ClassID   helper.FlexInt `json:"class_id"`
	TenBaiTap string         `json:"ten_bai_tap" validate:"required"`
	FilePath  *string        `json:"file_path,omitempty"`
}

// GradeRequest overwrites score and feedback unconditionally: an absent
// field clears the stored value.
type GradeRequest struct {
	Diem    *helper.FlexFloat `json:"diem,omitempty"`
	NhanXet *string           `json:"nhan_xet,omitempty"`
}
