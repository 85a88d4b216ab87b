package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	recordModel "kintai_backend/internals/features/attendance/records/model"
)

// BOM supaya Excel membuka CSV UTF-8 dengan benar
const exportBOM = "\uFEFF"

var exportHeaders = []string{"日付", "出勤時刻", "退勤時刻", "休憩時間（分）", "労働時間（時間）"}

// BuildExportCSV merender record jadi teks CSV (header + baris data).
// Record yang belum ditutup (clock_out null) tidak ikut diekspor.
// Output sengaja join manual (koma + LF, tanpa quoting) agar byte-compatible
// dengan file yang dihasilkan sistem lama.
func BuildExportCSV(records []recordModel.AttendanceRecordModel, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(exportBOM)
	b.WriteString(strings.Join(exportHeaders, ","))

	for _, r := range records {
		if r.AttendanceRecordClockOut == nil {
			continue
		}

		hours := 0.0
		if r.AttendanceRecordTotalWorkHours != nil {
			hours = *r.AttendanceRecordTotalWorkHours
		}

		row := []string{
			formatExportDate(r.AttendanceRecordDate),
			r.AttendanceRecordClockIn.In(loc).Format("15:04"),
			r.AttendanceRecordClockOut.In(loc).Format("15:04"),
			strconv.Itoa(r.AttendanceRecordBreakDuration),
			fmt.Sprintf("%.2f", hours),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// ExportFileName: nama file unduhan dengan tanggal hari ini
func ExportFileName(now time.Time) string {
	return "勤怠記録_" + now.Format(DateLayout) + ".csv"
}

// 2006-01-02 → 2006/01/02 (format tampilan Jepang)
func formatExportDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("2006/01/02")
}
