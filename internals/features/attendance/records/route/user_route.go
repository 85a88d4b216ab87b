package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kintai_backend/internals/features/attendance/records/controller"
)

// AttendanceUserRoutes dimount di group /api/u (sudah lewat AuthMiddleware)
func AttendanceUserRoutes(router fiber.Router, db *gorm.DB) {
	attendanceController := controller.NewAttendanceController(db)

	attendance := router.Group("/attendance")
	attendance.Get("/", attendanceController.GetRecords)
	attendance.Get("/status", attendanceController.GetStatus)
	attendance.Get("/stats", attendanceController.GetStats)
	attendance.Get("/export", attendanceController.ExportCSV)
	attendance.Post("/", attendanceController.PostAction)
}
