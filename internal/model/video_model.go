package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID      string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Duration     float64   `gorm:"default:0" json:"duration"`
	Views        int64     `gorm:"default:0" json:"views"`
	IsPublished  bool      `gorm:"default:false;index" json:"is_published"`
	VideoURL     string    `gorm:"type:varchar(500);not null" json:"video_url"`
	VideoKey     string    `gorm:"type:varchar(500);not null" json:"-"`
	ThumbnailURL string    `gorm:"type:varchar(500)" json:"thumbnail_url"`
	ThumbnailKey string    `gorm:"type:varchar(500)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
