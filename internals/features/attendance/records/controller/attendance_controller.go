package controller

import (
	"errors"
	"log"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kintai_backend/internals/configs"
	"kintai_backend/internals/features/attendance/records/dto"
	recordRepo "kintai_backend/internals/features/attendance/records/repository"
	"kintai_backend/internals/features/attendance/records/service"
	helpers "kintai_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, validate: validator.New()}
}

func (ctl *AttendanceController) userID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "認証が必要です")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "認証が必要です")
	}
	return userUUID, nil
}

// GetRecords: GET /attendance?limit=&offset= — urut tanggal desc
func (ctl *AttendanceController) GetRecords(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	paging := helpers.ResolvePaging(c, 100, 365)

	records, err := recordRepo.ListByUser(ctl.DB, userUUID, paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[ERROR] list attendance: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "勤怠記録の取得に失敗しました")
	}

	total, err := recordRepo.CountByUser(ctl.DB, userUUID)
	if err != nil {
		log.Printf("[ERROR] count attendance: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "勤怠記録の取得に失敗しました")
	}

	return helpers.JsonList(c, "", records, helpers.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GetStatus: GET /attendance/status — status turunan hari ini
func (ctl *AttendanceController) GetStatus(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	status, record, err := service.TodayStatus(ctl.DB, userUUID, configs.Now())
	if err != nil {
		log.Printf("[ERROR] today status: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "出勤状態の取得に失敗しました")
	}

	return helpers.JsonOK(c, "", dto.StatusResponse{
		Status: string(status),
		Record: record,
	})
}

// PostAction: POST /attendance {action, breakDuration?}
func (ctl *AttendanceController) PostAction(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	var req dto.ActionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid action")
	}

	now := configs.Now()

	switch req.Action {
	case "clock_in":
		record, err := service.ClockIn(ctl.DB, userUUID, now)
		if err != nil {
			return ctl.mapServiceError(c, err)
		}
		return helpers.JsonCreated(c, "出勤しました", record)

	case "clock_out":
		record, err := service.ClockOut(ctl.DB, userUUID, req.BreakDuration, now)
		if err != nil {
			return ctl.mapServiceError(c, err)
		}
		return helpers.JsonOK(c, "退勤しました", record)

	case "update_break":
		if req.BreakDuration == nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "breakDuration is required")
		}
		record, err := service.UpdateBreak(ctl.DB, userUUID, *req.BreakDuration, now)
		if err != nil {
			return ctl.mapServiceError(c, err)
		}
		return helpers.JsonOK(c, "休憩時間を更新しました", record)
	}

	return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid action")
}

// GetStats: GET /attendance/stats
func (ctl *AttendanceController) GetStats(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	records, err := recordRepo.ListAllByUser(ctl.DB, userUUID)
	if err != nil {
		log.Printf("[ERROR] list attendance for stats: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "統計情報の取得に失敗しました")
	}

	stats := service.CalculateStats(records, configs.Now(), configs.WeekStartsOn)
	return helpers.JsonOK(c, "", stats)
}

// ExportCSV: GET /attendance/export — unduhan CSV (BOM + header Jepang)
func (ctl *AttendanceController) ExportCSV(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	records, err := recordRepo.ListAllByUser(ctl.DB, userUUID)
	if err != nil {
		log.Printf("[ERROR] list attendance for export: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "エクスポートに失敗しました")
	}

	now := configs.Now()
	loc := configs.AppLocation
	if loc == nil {
		loc = time.UTC
	}
	csv := service.BuildExportCSV(records, loc)
	filename := service.ExportFileName(now)

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	// nama file mengandung karakter Jepang → RFC 5987 filename* + fallback ASCII
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="attendance_`+now.Format(service.DateLayout)+`.csv"; filename*=UTF-8''`+url.PathEscape(filename))
	return c.SendString(csv)
}

func (ctl *AttendanceController) mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateClockIn):
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyClockedOut):
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoOpenRecord), errors.Is(err, service.ErrRecordNotFound):
		return helpers.JsonError(c, fiber.StatusNotFound, err.Error())
	default:
		log.Printf("[ERROR] attendance action: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
