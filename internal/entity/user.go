package entity

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Password  string    `json:"-"`
	AvatarURL string    `json:"avatar_url"`
	AvatarKey string    `json:"-"`
	CoverURL  string    `json:"cover_url"`
	CoverKey  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerSummary is the projection of a User embedded in other views. The
// credential hash and storage keys never leave this shape.
type OwnerSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// ChannelProfile is a user's public channel page with subscription facts
// resolved against the viewing user.
type ChannelProfile struct {
	ID                   string    `json:"id"`
	Username             string    `json:"username"`
	FullName             string    `json:"full_name"`
	AvatarURL            string    `json:"avatar_url"`
	CoverURL             string    `json:"cover_url"`
	SubscribersCount     int64     `json:"subscribers_count"`
	ChannelsSubscribedTo int64     `json:"channels_subscribed_to_count"`
	IsSubscribed         bool      `json:"is_subscribed"`
	CreatedAt            time.Time `json:"created_at"`
}

// ChannelStats is the owner-facing dashboard summary for a channel.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}
