package entity

import "time"

type Playlist struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaylistView carries the playlist together with aggregate facts over its
// videos. Videos is populated on single fetches only and holds published
// videos in insertion order.
type PlaylistView struct {
	Playlist
	Owner       OwnerSummary `json:"owner"`
	TotalVideos int64        `json:"total_videos"`
	TotalViews  int64        `json:"total_views"`
	Videos      []*VideoView `json:"videos,omitempty"`
}
