package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	FullName  string    `gorm:"type:varchar(100)" json:"full_name"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	AvatarURL string    `gorm:"type:varchar(500)" json:"avatar_url"`
	AvatarKey string    `gorm:"type:varchar(500)" json:"-"`
	CoverURL  string    `gorm:"type:varchar(500)" json:"cover_url"`
	CoverKey  string    `gorm:"type:varchar(500)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// WatchHistoryModel records the most recent time a user opened a video. The
// unique pair index makes re-watches an upsert instead of a duplicate row.
type WatchHistoryModel struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;primaryKey" json:"video_id"`
	WatchedAt time.Time `gorm:"not null;index" json:"watched_at"`
}

func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
