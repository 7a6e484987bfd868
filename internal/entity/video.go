package entity

import "time"

type Video struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	IsPublished  bool      `json:"is_published"`
	VideoURL     string    `json:"video_url"`
	VideoKey     string    `json:"-"`
	ThumbnailURL string    `json:"thumbnail_url"`
	ThumbnailKey string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoView is a video augmented with relationship facts for the viewing
// user. OwnerSubscribers and OwnerIsSubscribed are resolved on single
// fetches only.
type VideoView struct {
	Video
	Owner             OwnerSummary `json:"owner"`
	LikesCount        int64        `json:"likes_count"`
	IsLiked           bool         `json:"is_liked"`
	OwnerSubscribers  int64        `json:"owner_subscribers_count,omitempty"`
	OwnerIsSubscribed bool         `json:"owner_is_subscribed,omitempty"`
}

// VideoSort is the whitelist of sortable video columns.
type VideoSort string

const (
	SortByCreatedAt VideoSort = "created_at"
	SortByViews     VideoSort = "views"
	SortByDuration  VideoSort = "duration"
	SortByTitle     VideoSort = "title"
)

func (s VideoSort) Valid() bool {
	switch s {
	case SortByCreatedAt, SortByViews, SortByDuration, SortByTitle:
		return true
	}
	return false
}

type WatchHistoryEntry struct {
	UserID    string    `json:"user_id"`
	VideoID   string    `json:"video_id"`
	WatchedAt time.Time `json:"watched_at"`
}
