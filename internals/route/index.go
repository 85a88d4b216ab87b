// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "kintai_backend/internals/features/attendance/records/route"
	taskRoute "kintai_backend/internals/features/tasks/task/route"
	authRoute "kintai_backend/internals/features/users/auth/route"
	authMiddleware "kintai_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceUserRoutes(private, db)

	log.Println("[INFO] Mounting Task routes...")
	taskRoute.TaskUserRoutes(private, db)
}
