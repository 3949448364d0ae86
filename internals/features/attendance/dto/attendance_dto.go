package dto

import (
	"encoding/json"

	helper "classroom_backend/internals/helpers"
)

type SaveAttendanceRequest struct {
	ClassID helper.FlexInt  `json:"class_id"`
	Date    string          `json:"date" validate:"required"` // YYYY-MM-DD
	Records json.RawMessage `json:"records" validate:"required"`
}
