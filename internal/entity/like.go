package entity

import "time"

// LikeTarget tags which collection a like points into. A like references
// exactly one target; uniqueness is scoped to (user, kind, target).
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

func (t LikeTarget) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Like struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	TargetKind LikeTarget `json:"target_kind"`
	TargetID   string     `json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
}
