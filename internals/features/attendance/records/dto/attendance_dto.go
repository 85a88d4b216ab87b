package dto

import (
	recordModel "kintai_backend/internals/features/attendance/records/model"
)

// ActionRequest: body POST /attendance.
// breakDuration camelCase mengikuti kontrak client lama.
type ActionRequest struct {
	Action        string `json:"action" validate:"required,oneof=clock_in clock_out update_break"`
	BreakDuration *int   `json:"breakDuration" validate:"omitempty,min=0"`
}

// StatusResponse: status turunan + record hari ini (nullable)
type StatusResponse struct {
	Status string                             `json:"status"`
	Record *recordModel.AttendanceRecordModel `json:"record"`
}
