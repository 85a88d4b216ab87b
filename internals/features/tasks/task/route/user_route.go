package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kintai_backend/internals/features/tasks/task/controller"
)

// TaskUserRoutes dimount di group /api/u (sudah lewat AuthMiddleware)
func TaskUserRoutes(router fiber.Router, db *gorm.DB) {
	taskController := controller.NewTaskController(db)

	tasks := router.Group("/tasks")
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Patch("/:id", taskController.UpdateTask)
	tasks.Delete("/:id", taskController.DeleteTask)
}
