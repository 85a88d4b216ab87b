package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskModel struct {
	TaskID          uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey" json:"id"`
	TaskUserID      uuid.UUID `gorm:"column:task_user_id;type:uuid;not null;index" json:"user_id"`
	TaskTitle       string    `gorm:"column:task_title;size:255;not null" json:"title"`
	TaskDescription *string   `gorm:"column:task_description" json:"description,omitempty"`
	TaskCompleted   bool      `gorm:"column:task_completed;not null;default:false" json:"completed"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override nama tabel
func (TaskModel) TableName() string {
	return "tasks"
}

func (t *TaskModel) BeforeCreate(tx *gorm.DB) error {
	if t.TaskID == uuid.Nil {
		t.TaskID = uuid.New()
	}
	return nil
}
