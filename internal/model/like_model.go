package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel is the tagged-variant like row: target_kind says which table
// target_id points into. Rows are hard-deleted; the toggle operation leans on
// the unique (user, kind, target) index, which a soft-delete column would
// break.
type LikeModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target" json:"user_id"`
	TargetKind string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_likes_user_target" json:"target_kind"`
	TargetID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target;index:idx_likes_target" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
