package dto

import helper "classroom_backend/internals/helpers"

type CreateClassRequest struct {
	TenLop     string         `json:"ten_lop" validate:"required"`
	MoTa       *string        `json:"mo_ta,omitempty"`
	MaThamGia  *string        `json:"ma_tham_gia,omitempty"`
	GiaoVienID helper.FlexInt `json:"giao_vien_id"`
}

// UpdateClassRequest is merge-patch: nil means "leave unchanged".
type UpdateClassRequest struct {
	TenLop     *string         `json:"ten_lop,omitempty"`
	MoTa       *string         `json:"mo_ta,omitempty"`
	MaThamGia  *string         `json:"ma_tham_gia,omitempty"`
	GiaoVienID *helper.FlexInt `json:"giao_vien_id,omitempty"`
}

type EnrollRequest struct {
	StudentID helper.FlexInt `json:"student_id"`
	MaThamGia string         `json:"ma_tham_gia" validate:"required"`
}

// Exactly one of email / mssv must resolve a user.
type AddStudentRequest struct {
	Email *string `json:"email,omitempty"`
	Mssv  *string `json:"mssv,omitempty"`
}
