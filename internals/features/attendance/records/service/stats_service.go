package service

import (
	"time"

	recordModel "kintai_backend/internals/features/attendance/records/model"
)

// AttendanceStats: agregat dihitung ulang on demand, tidak dipersist.
type AttendanceStats struct {
	TotalDays         int     `json:"totalDays"`
	TotalHours        float64 `json:"totalHours"`
	AverageHours      float64 `json:"averageHours"`
	CurrentWeekHours  float64 `json:"currentWeekHours"`
	CurrentMonthHours float64 `json:"currentMonthHours"`
}

// weekStartDate: tanggal weekStart terakhir pada/atau sebelum now.
func weekStartDate(now time.Time, weekStart time.Weekday) time.Time {
	offset := (int(now.Weekday()) - int(weekStart) + 7) % 7
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -offset)
}

// CalculateStats mereduksi kumpulan record jadi statistik. Pure function:
// urutan input tidak berpengaruh, input kosong menghasilkan nol semua.
// Hanya record lengkap (clock_out + total_work_hours terisi) yang dihitung.
func CalculateStats(records []recordModel.AttendanceRecordModel, now time.Time, weekStart time.Weekday) AttendanceStats {
	var stats AttendanceStats

	ws := weekStartDate(now, weekStart)

	for _, r := range records {
		if !r.IsCompleted() {
			continue
		}
		hours := *r.AttendanceRecordTotalWorkHours

		stats.TotalDays++
		stats.TotalHours += hours

		recordDate, err := time.ParseInLocation(DateLayout, r.AttendanceRecordDate, now.Location())
		if err != nil {
			continue
		}

		// minggu berjalan: date >= weekStart (tanpa batas atas)
		if !recordDate.Before(ws) {
			stats.CurrentWeekHours += hours
		}
		if recordDate.Month() == now.Month() && recordDate.Year() == now.Year() {
			stats.CurrentMonthHours += hours
		}
	}

	if stats.TotalDays > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.TotalDays)
	}
	return stats
}
