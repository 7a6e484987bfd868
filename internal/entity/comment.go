package entity

import "time"

type Comment struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	VideoID   string    `json:"video_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentView struct {
	Comment
	Owner      OwnerSummary `json:"owner"`
	LikesCount int64        `json:"likes_count"`
	IsLiked    bool         `json:"is_liked"`
}
