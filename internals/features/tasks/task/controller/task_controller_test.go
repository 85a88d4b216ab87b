package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	taskModel "kintai_backend/internals/features/tasks/task/model"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func setupTaskApp(t *testing.T, userID uuid.UUID) (*fiber.App, *gorm.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tasks_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&taskModel.TaskModel{}))

	app := fiber.New()
	// pengganti AuthMiddleware: langsung inject user_id
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})

	ctl := NewTaskController(db)
	tasks := app.Group("/api/u/tasks")
	tasks.Get("/", ctl.GetTasks)
	tasks.Post("/", ctl.CreateTask)
	tasks.Patch("/:id", ctl.UpdateTask)
	tasks.Delete("/:id", ctl.DeleteTask)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestCreateTask(t *testing.T) {
	userID := uuid.New()
	app, db := setupTaskApp(t, userID)

	resp, body := doJSON(t, app, http.MethodPost, "/api/u/tasks/", map[string]interface{}{
		"title":       "週報を書く",
		"description": "金曜まで",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, body.Success)

	var created taskModel.TaskModel
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, "週報を書く", created.TaskTitle)
	require.NotNil(t, created.TaskDescription)
	assert.Equal(t, "金曜まで", *created.TaskDescription)
	assert.False(t, created.TaskCompleted)

	var count int64
	require.NoError(t, db.Model(&taskModel.TaskModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateTask_TitleRequired(t *testing.T) {
	app, _ := setupTaskApp(t, uuid.New())

	resp, body := doJSON(t, app, http.MethodPost, "/api/u/tasks/", map[string]interface{}{
		"description": "タイトルなし",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}

func TestGetTasks_NewestFirstOwnOnly(t *testing.T) {
	userID := uuid.New()
	app, db := setupTaskApp(t, userID)

	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	older := taskModel.TaskModel{TaskUserID: userID, TaskTitle: "古いタスク", CreatedAt: base}
	newer := taskModel.TaskModel{TaskUserID: userID, TaskTitle: "新しいタスク", CreatedAt: base.Add(time.Hour)}
	other := taskModel.TaskModel{TaskUserID: uuid.New(), TaskTitle: "他人のタスク", CreatedAt: base.Add(2 * time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&other).Error)

	resp, body := doJSON(t, app, http.MethodGet, "/api/u/tasks/", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var tasks []taskModel.TaskModel
	require.NoError(t, json.Unmarshal(body.Data, &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "新しいタスク", tasks[0].TaskTitle)
	assert.Equal(t, "古いタスク", tasks[1].TaskTitle)
}

func TestUpdateTask_PartialPatch(t *testing.T) {
	userID := uuid.New()
	app, db := setupTaskApp(t, userID)

	desc := "説明"
	task := taskModel.TaskModel{TaskUserID: userID, TaskTitle: "買い出し", TaskDescription: &desc}
	require.NoError(t, db.Create(&task).Error)

	resp, _ := doJSON(t, app, http.MethodPatch, "/api/u/tasks/"+task.TaskID.String(), map[string]interface{}{
		"completed": true,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored taskModel.TaskModel
	require.NoError(t, db.First(&stored, "task_id = ?", task.TaskID).Error)
	assert.True(t, stored.TaskCompleted)
	// field lain tidak tersentuh
	assert.Equal(t, "買い出し", stored.TaskTitle)
	require.NotNil(t, stored.TaskDescription)
	assert.Equal(t, "説明", *stored.TaskDescription)
}

func TestUpdateTask_OtherUsersTaskIsNotFound(t *testing.T) {
	app, db := setupTaskApp(t, uuid.New())

	task := taskModel.TaskModel{TaskUserID: uuid.New(), TaskTitle: "他人のタスク"}
	require.NoError(t, db.Create(&task).Error)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/u/tasks/"+task.TaskID.String(), map[string]interface{}{
		"completed": true,
	})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, body.Success)
}

func TestDeleteTask(t *testing.T) {
	userID := uuid.New()
	app, db := setupTaskApp(t, userID)

	task := taskModel.TaskModel{TaskUserID: userID, TaskTitle: "消すタスク"}
	require.NoError(t, db.Create(&task).Error)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/u/tasks/"+task.TaskID.String(), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&taskModel.TaskModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteTask_InvalidIDIsNotFound(t *testing.T) {
	app, _ := setupTaskApp(t, uuid.New())

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/u/tasks/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
