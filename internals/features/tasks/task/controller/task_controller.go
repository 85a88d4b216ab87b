package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kintai_backend/internals/features/tasks/task/dto"
	taskModel "kintai_backend/internals/features/tasks/task/model"
	helpers "kintai_backend/internals/helpers"
)

type TaskController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db, validate: validator.New()}
}

func (ctl *TaskController) userID(c *fiber.Ctx) (uuid.UUID, error) {
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

// findOwnTask: task milik user sendiri saja — punya orang lain = not found
func (ctl *TaskController) findOwnTask(userID uuid.UUID, taskIDStr string) (*taskModel.TaskModel, error) {
	taskID, err := uuid.Parse(taskIDStr)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var task taskModel.TaskModel
	if err := ctl.DB.
		Where("task_id = ? AND task_user_id = ?", taskID, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTasks: GET /tasks — created_at desc
func (ctl *TaskController) GetTasks(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	var tasks []taskModel.TaskModel
	if err := ctl.DB.
		Where("task_user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		log.Printf("[ERROR] list tasks: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "タスクの取得に失敗しました")
	}

	return helpers.JsonList(c, "", tasks, nil)
}

// CreateTask: POST /tasks
func (ctl *TaskController) CreateTask(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "タイトルは必須です")
	}

	task := taskModel.TaskModel{
		TaskUserID:      userUUID,
		TaskTitle:       req.Title,
		TaskDescription: req.Description,
		TaskCompleted:   false,
	}
	if err := ctl.DB.Create(&task).Error; err != nil {
		log.Printf("[ERROR] create task: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "タスクの作成に失敗しました")
	}

	return helpers.JsonCreated(c, "タスクを作成しました", task)
}

// UpdateTask: PATCH /tasks/:id — partial update
func (ctl *TaskController) UpdateTask(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	task, err := ctl.findOwnTask(userUUID, c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "タスクが見つかりません")
		}
		log.Printf("[ERROR] find task: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "タスクの取得に失敗しました")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "入力形式が正しくありません")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["task_title"] = *req.Title
	}
	if req.Description != nil {
		updates["task_description"] = *req.Description
	}
	if req.Completed != nil {
		updates["task_completed"] = *req.Completed
	}
	if len(updates) == 0 {
		return helpers.JsonOK(c, "", task)
	}

	if err := ctl.DB.Model(task).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update task: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "タスクの更新に失敗しました")
	}

	return helpers.JsonUpdated(c, "タスクを更新しました", task)
}

// DeleteTask: DELETE /tasks/:id
func (ctl *TaskController) DeleteTask(c *fiber.Ctx) error {
	userUUID, err := ctl.userID(c)
	if err != nil {
		return err
	}

	task, err := ctl.findOwnTask(userUUID, c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "タスクが見つかりません")
		}
		log.Printf("[ERROR] find task: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "タスクの取得に失敗しました")
	}

	if err := ctl.DB.Delete(task).Error; err != nil {
		log.Printf("[ERROR] delete task: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "タスクの削除に失敗しました")
	}

	return helpers.JsonDeleted(c, "タスクを削除しました", nil)
}
