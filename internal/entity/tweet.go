package entity

import "time"

type Tweet struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TweetView struct {
	Tweet
	Owner      OwnerSummary `json:"owner"`
	LikesCount int64        `json:"likes_count"`
	IsLiked    bool         `json:"is_liked"`
}
