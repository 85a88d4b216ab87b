package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	recordModel "kintai_backend/internals/features/attendance/records/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "attendance_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&recordModel.AttendanceRecordModel{}))
	return db
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestClockIn_CreatesOpenRecord(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	now := mustTime(t, "2024-01-10T09:00:00Z")

	record, err := ClockIn(db, userID, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", record.AttendanceRecordDate)
	assert.Equal(t, userID, record.AttendanceRecordUserID)
	assert.True(t, record.AttendanceRecordClockIn.Equal(now))
	assert.Nil(t, record.AttendanceRecordClockOut)
	assert.Equal(t, 0, record.AttendanceRecordBreakDuration)
	assert.Nil(t, record.AttendanceRecordTotalWorkHours)
}

func TestClockIn_SecondCallSameDayFails(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	now := mustTime(t, "2024-01-10T09:00:00Z")

	_, err := ClockIn(db, userID, now)
	require.NoError(t, err)

	_, err = ClockIn(db, userID, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrDuplicateClockIn)
}

func TestClockIn_DifferentUsersSameDay(t *testing.T) {
	db := newTestDB(t)
	now := mustTime(t, "2024-01-10T09:00:00Z")

	_, err := ClockIn(db, uuid.New(), now)
	require.NoError(t, err)
	_, err = ClockIn(db, uuid.New(), now)
	require.NoError(t, err)
}

func TestClockIn_NextDayAllowed(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	_, err := ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)
	_, err = ClockIn(db, userID, mustTime(t, "2024-01-11T09:00:00Z"))
	require.NoError(t, err)
}

func TestClockOut_ComputesWorkHours(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	_, err := ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)

	breakMinutes := 60
	record, err := ClockOut(db, userID, &breakMinutes, mustTime(t, "2024-01-10T18:00:00Z"))
	require.NoError(t, err)

	require.NotNil(t, record.AttendanceRecordClockOut)
	require.NotNil(t, record.AttendanceRecordTotalWorkHours)
	// (540 - 60) / 60 = 8.0
	assert.InDelta(t, 8.0, *record.AttendanceRecordTotalWorkHours, 1e-9)
	assert.Equal(t, 60, record.AttendanceRecordBreakDuration)
}

func TestClockOut_BreakLongerThanElapsedClampsToZero(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	_, err := ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)

	breakMinutes := 60
	record, err := ClockOut(db, userID, &breakMinutes, mustTime(t, "2024-01-10T09:30:00Z"))
	require.NoError(t, err)

	require.NotNil(t, record.AttendanceRecordTotalWorkHours)
	assert.Equal(t, 0.0, *record.AttendanceRecordTotalWorkHours)
}

func TestClockOut_UsesStoredBreakWhenNotSupplied(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	_, err := ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)

	_, err = UpdateBreak(db, userID, 30, mustTime(t, "2024-01-10T12:00:00Z"))
	require.NoError(t, err)

	record, err := ClockOut(db, userID, nil, mustTime(t, "2024-01-10T17:30:00Z"))
	require.NoError(t, err)

	require.NotNil(t, record.AttendanceRecordTotalWorkHours)
	// (510 - 30) / 60 = 8.0
	assert.InDelta(t, 8.0, *record.AttendanceRecordTotalWorkHours, 1e-9)
	assert.Equal(t, 30, record.AttendanceRecordBreakDuration)
}

func TestClockOut_WithoutRecordFails(t *testing.T) {
	db := newTestDB(t)

	_, err := ClockOut(db, uuid.New(), nil, mustTime(t, "2024-01-10T18:00:00Z"))
	assert.ErrorIs(t, err, ErrNoOpenRecord)
}

func TestClockOut_SecondCallFails(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	_, err := ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)
	_, err = ClockOut(db, userID, nil, mustTime(t, "2024-01-10T18:00:00Z"))
	require.NoError(t, err)

	_, err = ClockOut(db, userID, nil, mustTime(t, "2024-01-10T19:00:00Z"))
	assert.ErrorIs(t, err, ErrAlreadyClockedOut)
}

func TestUpdateBreak_WithoutRecordFails(t *testing.T) {
	db := newTestDB(t)

	_, err := UpdateBreak(db, uuid.New(), 15, mustTime(t, "2024-01-10T12:00:00Z"))
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// Perilaku warisan: update break setelah clock_out tetap diterima dan
// total_work_hours tidak dihitung ulang.
func TestUpdateBreak_AfterClockOutKeepsTotalHours(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	_, err := ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)
	breakMinutes := 60
	closed, err := ClockOut(db, userID, &breakMinutes, mustTime(t, "2024-01-10T18:00:00Z"))
	require.NoError(t, err)
	require.NotNil(t, closed.AttendanceRecordTotalWorkHours)
	originalHours := *closed.AttendanceRecordTotalWorkHours

	updated, err := UpdateBreak(db, userID, 120, mustTime(t, "2024-01-10T18:30:00Z"))
	require.NoError(t, err)
	assert.Equal(t, 120, updated.AttendanceRecordBreakDuration)
	require.NotNil(t, updated.AttendanceRecordTotalWorkHours)
	assert.InDelta(t, originalHours, *updated.AttendanceRecordTotalWorkHours, 1e-9)
}

func TestTodayStatus_Transitions(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	morning := mustTime(t, "2024-01-10T08:00:00Z")

	status, record, err := TodayStatus(db, userID, morning)
	require.NoError(t, err)
	assert.Equal(t, StatusClockedOut, status)
	assert.Nil(t, record)

	_, err = ClockIn(db, userID, mustTime(t, "2024-01-10T09:00:00Z"))
	require.NoError(t, err)

	status, record, err = TodayStatus(db, userID, mustTime(t, "2024-01-10T10:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, StatusClockedIn, status)
	require.NotNil(t, record)

	_, err = ClockOut(db, userID, nil, mustTime(t, "2024-01-10T18:00:00Z"))
	require.NoError(t, err)

	status, record, err = TodayStatus(db, userID, mustTime(t, "2024-01-10T19:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, StatusClockedOut, status)
	require.NotNil(t, record)
	assert.NotNil(t, record.AttendanceRecordClockOut)
}

func TestCalculateWorkHours_NeverNegative(t *testing.T) {
	clockIn := mustTime(t, "2024-01-10T09:00:00Z")
	for _, tc := range []struct {
		name         string
		clockOut     time.Time
		breakMinutes int
		want         float64
	}{
		{"full day minus break", mustTime(t, "2024-01-10T18:00:00Z"), 60, 8.0},
		{"no break", mustTime(t, "2024-01-10T17:00:00Z"), 0, 8.0},
		{"break exceeds elapsed", mustTime(t, "2024-01-10T09:30:00Z"), 60, 0.0},
		{"half hour", mustTime(t, "2024-01-10T09:30:00Z"), 0, 0.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateWorkHours(clockIn, tc.clockOut, tc.breakMinutes)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}
