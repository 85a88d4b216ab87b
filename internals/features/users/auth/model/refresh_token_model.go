package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefreshTokenModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	// simpan HASH token (bukan plaintext)
	Token []byte `gorm:"column:token_hash;type:bytea;not null" json:"-"`

	ExpiresAt time.Time  `gorm:"column:expires_at;not null" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`

	UserAgent *string `gorm:"column:user_agent" json:"user_agent,omitempty"`
	IP        *string `gorm:"column:ip" json:"ip,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName override
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshTokenModel) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	return nil
}
