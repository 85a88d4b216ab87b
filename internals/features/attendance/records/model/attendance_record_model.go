package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecordModel merepresentasikan tabel attendance_records.
// Satu record per (user, tanggal) — dijaga unique index komposit.
type AttendanceRecordModel struct {
	AttendanceRecordID     uuid.UUID `gorm:"column:attendance_record_id;type:uuid;primaryKey" json:"id"`
	AttendanceRecordUserID uuid.UUID `gorm:"column:attendance_record_user_id;type:uuid;not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`

	// format YYYY-MM-DD
	AttendanceRecordDate string `gorm:"column:attendance_record_date;type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`

	// clock_in diset saat create dan tidak pernah berubah
	AttendanceRecordClockIn  time.Time  `gorm:"column:attendance_record_clock_in;not null" json:"clock_in"`
	AttendanceRecordClockOut *time.Time `gorm:"column:attendance_record_clock_out" json:"clock_out"`

	// menit istirahat; beku setelah clock_out terisi
	AttendanceRecordBreakDuration int `gorm:"column:attendance_record_break_duration;not null;default:0" json:"break_duration"`

	// jam kerja desimal; null selama masih clocked in
	AttendanceRecordTotalWorkHours *float64 `gorm:"column:attendance_record_total_work_hours;type:numeric(7,4)" json:"total_work_hours"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override nama tabel
func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}

func (r *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if r.AttendanceRecordID == uuid.Nil {
		r.AttendanceRecordID = uuid.New()
	}
	return nil
}

// IsCompleted: record sudah punya clock_out + total_work_hours
func (r *AttendanceRecordModel) IsCompleted() bool {
	return r.AttendanceRecordClockOut != nil && r.AttendanceRecordTotalWorkHours != nil
}
