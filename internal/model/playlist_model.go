package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaylistModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     string    `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PlaylistVideoModel gives playlists set semantics: the pair key swallows
// duplicate adds while position keeps insertion order for display.
type PlaylistVideoModel struct {
	PlaylistID string    `gorm:"type:uuid;primaryKey" json:"playlist_id"`
	VideoID    string    `gorm:"type:uuid;primaryKey" json:"video_id"`
	Position   int       `gorm:"not null;default:0" json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
