package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"password" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`

	// metadata bebas (display name dsb.) — jsonb
	UserMetadata datatypes.JSON `gorm:"column:user_metadata;type:jsonb" json:"user_metadata,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	err := validate.Struct(u)
	if err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi pesan user-facing
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + "は必須です。"
			case "email":
				errorMessages[fieldErr.Field()] = "メールアドレスの形式が正しくありません。"
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + "は" + fieldErr.Param() + "文字以上で入力してください。"
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + "は" + fieldErr.Param() + "文字以下で入力してください。"
			default:
				errorMessages[fieldErr.Field()] = "入力形式が正しくありません。"
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
