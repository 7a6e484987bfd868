package persistent

import (
	"errors"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository interface {
	Create(tweet *entity.Tweet) error
	GetByID(id string) (*entity.Tweet, error)
	ListByOwner(ownerID, viewerID string, limit, offset int) ([]*entity.TweetView, int64, error)
	Update(tweet *entity.Tweet) error
	// DeleteWithLikes removes the tweet's likes and then the tweet in a
	// single transaction.
	DeleteWithLikes(id string) error
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(tweet *entity.Tweet) error {
	tweetModel := ToTweetModel(tweet)
	if err := r.db.Create(tweetModel).Error; err != nil {
		return err
	}
	*tweet = *ToTweetEntity(tweetModel)
	return nil
}

func (r *tweetRepository) GetByID(id string) (*entity.Tweet, error) {
	var tweetModel model.TweetModel
	if err := r.db.Where("id = ?", id).First(&tweetModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToTweetEntity(&tweetModel), nil
}

type tweetViewRow struct {
	ID             string
	OwnerID        string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	OwnerUsername  string
	OwnerFullName  string
	OwnerAvatarURL string
	LikesCount     int64
	IsLiked        bool
}

func (r *tweetRepository) ListByOwner(ownerID, viewerID string, limit, offset int) ([]*entity.TweetView, int64, error) {
	var total int64
	err := r.db.Model(&model.TweetModel{}).Where("owner_id = ?", ownerID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	const columns = `tweets.id, tweets.owner_id, tweets.content, tweets.created_at, tweets.updated_at,
		u.username AS owner_username, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url,
		(SELECT COUNT(*) FROM likes l WHERE l.target_kind = 'tweet' AND l.target_id = tweets.id) AS likes_count`

	q := r.db.Table("tweets").Joins("JOIN users u ON u.id = tweets.owner_id")
	if viewerID != "" {
		q = q.Select(columns+`,
			EXISTS(SELECT 1 FROM likes l WHERE l.target_kind = 'tweet' AND l.target_id = tweets.id AND l.user_id = ?) AS is_liked`,
			viewerID)
	} else {
		q = q.Select(columns + `, FALSE AS is_liked`)
	}

	var rows []tweetViewRow
	err = q.Where("tweets.owner_id = ?", ownerID).
		Order("tweets.created_at DESC, tweets.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.TweetView, len(rows))
	for i, row := range rows {
		views[i] = &entity.TweetView{
			Tweet: entity.Tweet{
				ID:        row.ID,
				OwnerID:   row.OwnerID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Owner: entity.OwnerSummary{
				ID:        row.OwnerID,
				Username:  row.OwnerUsername,
				FullName:  row.OwnerFullName,
				AvatarURL: row.OwnerAvatarURL,
			},
			LikesCount: row.LikesCount,
			IsLiked:    row.IsLiked,
		}
	}
	return views, total, nil
}

func (r *tweetRepository) Update(tweet *entity.Tweet) error {
	return r.db.Save(ToTweetModel(tweet)).Error
}

func (r *tweetRepository) DeleteWithLikes(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", "tweet", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.TweetModel{}, "id = ?", id).Error
	})
}
