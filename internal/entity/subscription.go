package entity

import "time"

// Subscription is a directed edge: subscriber follows channel. Both ends are
// users; at most one edge exists per ordered pair.
type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubscriberView is one row of a channel's subscriber listing.
// SubscribedBack reports whether the channel follows this subscriber in turn.
type SubscriberView struct {
	OwnerSummary
	SubscribersCount int64 `json:"subscribers_count"`
	SubscribedBack   bool  `json:"subscribed_back"`
}

// ChannelSummary is one row of a user's subscribed-channels listing.
type ChannelSummary struct {
	OwnerSummary
	LatestVideo *Video `json:"latest_video,omitempty"`
}
