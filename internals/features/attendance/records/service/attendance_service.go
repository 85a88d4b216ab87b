package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "kintai_backend/internals/features/attendance/records/model"
	recordRepo "kintai_backend/internals/features/attendance/records/repository"
)

// format tanggal kolom attendance_record_date
const DateLayout = "2006-01-02"

// Status turunan dari record hari ini (tidak dipersist)
type Status string

const (
	StatusClockedOut Status = "clocked_out"
	StatusClockedIn  Status = "clocked_in"
)

var (
	ErrDuplicateClockIn  = errors.New("既に出勤記録が存在します")
	ErrNoOpenRecord      = errors.New("出勤記録が見つかりません")
	ErrAlreadyClockedOut = errors.New("既に退勤記録が存在します")
	ErrRecordNotFound    = errors.New("出勤記録が見つかりません")
)

// CalculateWorkHours menghitung jam kerja: menit elapsed dikurangi menit
// istirahat, dibagi 60, minimal 0 (tidak pernah negatif).
func CalculateWorkHours(clockIn, clockOut time.Time, breakMinutes int) float64 {
	workMinutes := clockOut.Sub(clockIn).Minutes() - float64(breakMinutes)
	hours := workMinutes / 60
	if hours < 0 {
		return 0
	}
	return hours
}

// ClockIn membuat record hari ini. Gagal kalau sudah ada record utk tanggal yang sama.
func ClockIn(db *gorm.DB, userID uuid.UUID, now time.Time) (*recordModel.AttendanceRecordModel, error) {
	today := now.Format(DateLayout)

	if _, err := recordRepo.FindByUserAndDate(db, userID, today); err == nil {
		return nil, ErrDuplicateClockIn
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := recordModel.AttendanceRecordModel{
		AttendanceRecordUserID:        userID,
		AttendanceRecordDate:          today,
		AttendanceRecordClockIn:       now,
		AttendanceRecordClockOut:      nil,
		AttendanceRecordBreakDuration: 0,
	}
	if err := recordRepo.Create(db, &record); err != nil {
		// dua request bersamaan: insert kedua ditolak unique index (user, date)
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return nil, ErrDuplicateClockIn
		}
		return nil, err
	}
	return &record, nil
}

// ClockOut menutup record hari ini, persis sekali. breakMinutes nil berarti
// pakai nilai istirahat yang sudah tersimpan di record.
func ClockOut(db *gorm.DB, userID uuid.UUID, breakMinutes *int, now time.Time) (*recordModel.AttendanceRecordModel, error) {
	today := now.Format(DateLayout)

	record, err := recordRepo.FindByUserAndDate(db, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenRecord
		}
		return nil, err
	}
	if record.AttendanceRecordClockOut != nil {
		return nil, ErrAlreadyClockedOut
	}

	finalBreak := record.AttendanceRecordBreakDuration
	if breakMinutes != nil {
		finalBreak = *breakMinutes
	}

	totalHours := CalculateWorkHours(record.AttendanceRecordClockIn, now, finalBreak)

	if err := recordRepo.UpdateFields(db, record.AttendanceRecordID, map[string]interface{}{
		"attendance_record_clock_out":        now,
		"attendance_record_break_duration":   finalBreak,
		"attendance_record_total_work_hours": totalHours,
	}); err != nil {
		return nil, err
	}

	record.AttendanceRecordClockOut = &now
	record.AttendanceRecordBreakDuration = finalBreak
	record.AttendanceRecordTotalWorkHours = &totalHours
	return record, nil
}

// UpdateBreak menimpa menit istirahat record hari ini.
// Catatan perilaku: update tetap diterima walau record sudah ditutup, dan
// total_work_hours TIDAK dihitung ulang — sama dengan perilaku sistem lama.
func UpdateBreak(db *gorm.DB, userID uuid.UUID, breakMinutes int, now time.Time) (*recordModel.AttendanceRecordModel, error) {
	today := now.Format(DateLayout)

	record, err := recordRepo.FindByUserAndDate(db, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	if err := recordRepo.UpdateFields(db, record.AttendanceRecordID, map[string]interface{}{
		"attendance_record_break_duration": breakMinutes,
	}); err != nil {
		return nil, err
	}

	record.AttendanceRecordBreakDuration = breakMinutes
	return record, nil
}

// TodayStatus menurunkan status clock dari record hari ini.
func TodayStatus(db *gorm.DB, userID uuid.UUID, now time.Time) (Status, *recordModel.AttendanceRecordModel, error) {
	today := now.Format(DateLayout)

	record, err := recordRepo.FindByUserAndDate(db, userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusClockedOut, nil, nil
		}
		return StatusClockedOut, nil, err
	}
	if record.AttendanceRecordClockOut != nil {
		return StatusClockedOut, record, nil
	}
	return StatusClockedIn, record, nil
}
