package persistent

import (
	"errors"
	"strings"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	GetChannelStats(ownerID string) (*entity.ChannelStats, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	userModel.Username = strings.ToLower(userModel.Username)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("username = ?", strings.ToLower(username)).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

type channelProfileRow struct {
	ID                   string
	Username             string
	FullName             string
	AvatarURL            string
	CoverURL             string
	SubscribersCount     int64
	ChannelsSubscribedTo int64
	IsSubscribed         bool
	CreatedAt            time.Time
}

// GetChannelProfile resolves a channel page in one statement: the user row
// plus both subscription counts and the viewer's own edge.
func (r *userRepository) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	const columns = `users.id, users.username, users.full_name, users.avatar_url, users.cover_url, users.created_at,
		(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = users.id) AS subscribers_count,
		(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = users.id) AS channels_subscribed_to`

	q := r.db.Table("users").Where("users.username = ?", strings.ToLower(username))
	if viewerID != "" {
		q = q.Select(columns+`,
			EXISTS(SELECT 1 FROM subscriptions s WHERE s.channel_id = users.id AND s.subscriber_id = ?) AS is_subscribed`,
			viewerID)
	} else {
		q = q.Select(columns + `, FALSE AS is_subscribed`)
	}

	var rows []channelProfileRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, entity.ErrNotFound
	}

	row := rows[0]
	return &entity.ChannelProfile{
		ID:                   row.ID,
		Username:             row.Username,
		FullName:             row.FullName,
		AvatarURL:            row.AvatarURL,
		CoverURL:             row.CoverURL,
		SubscribersCount:     row.SubscribersCount,
		ChannelsSubscribedTo: row.ChannelsSubscribedTo,
		IsSubscribed:         row.IsSubscribed,
		CreatedAt:            row.CreatedAt,
	}, nil
}

// GetChannelStats aggregates the owner dashboard numbers in one statement.
func (r *userRepository) GetChannelStats(ownerID string) (*entity.ChannelStats, error) {
	var stats entity.ChannelStats
	err := r.db.Raw(`SELECT
			(SELECT COUNT(*) FROM videos v WHERE v.owner_id = ?) AS total_videos,
			(SELECT COALESCE(SUM(v.views), 0) FROM videos v WHERE v.owner_id = ?) AS total_views,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = ?) AS total_subscribers,
			(SELECT COUNT(*) FROM likes l JOIN videos v ON v.id = l.target_id
				WHERE l.target_kind = 'video' AND v.owner_id = ?) AS total_likes`,
		ownerID, ownerID, ownerID, ownerID,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
