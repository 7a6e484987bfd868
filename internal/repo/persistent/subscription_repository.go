package persistent

import (
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	// Toggle flips the subscriber -> channel edge and reports the resulting
	// presence state.
	Toggle(subscriberID, channelID string) (bool, error)
	IsSubscribed(subscriberID, channelID string) (bool, error)
	ListSubscribers(channelID string, limit, offset int) ([]*entity.SubscriberView, int64, error)
	ListSubscribedChannels(subscriberID string, limit, offset int) ([]*entity.ChannelSummary, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Toggle mirrors the like toggle: delete first, insert under the unique
// pair index, one reconciliation pass on a lost race.
func (r *subscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		res := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&model.SubscriptionModel{})
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected > 0 {
			return false, nil
		}

		sub := &model.SubscriptionModel{
			ID:           uuid.New().String(),
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		ins := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
		if ins.Error != nil {
			return false, ins.Error
		}
		if ins.RowsAffected > 0 {
			return true, nil
		}
	}
	return false, entity.ErrConflict
}

func (r *subscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

type subscriberRow struct {
	ID               string
	Username         string
	FullName         string
	AvatarURL        string
	SubscribersCount int64
	SubscribedBack   bool
}

// ListSubscribers resolves, per subscriber, their own subscriber count and
// whether the queried channel follows them back — the second-order join —
// in a single statement for the whole page.
func (r *subscriptionRepository) ListSubscribers(channelID string, limit, offset int) ([]*entity.SubscriberView, int64, error) {
	var total int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []subscriberRow
	err = r.db.Table("subscriptions s").
		Select(`u.id, u.username, u.full_name, u.avatar_url,
			(SELECT COUNT(*) FROM subscriptions x WHERE x.channel_id = u.id) AS subscribers_count,
			EXISTS(SELECT 1 FROM subscriptions b WHERE b.subscriber_id = ? AND b.channel_id = u.id) AS subscribed_back`,
			channelID).
		Joins("JOIN users u ON u.id = s.subscriber_id").
		Where("s.channel_id = ?", channelID).
		Order("s.created_at DESC, u.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.SubscriberView, len(rows))
	for i, row := range rows {
		views[i] = &entity.SubscriberView{
			OwnerSummary: entity.OwnerSummary{
				ID:        row.ID,
				Username:  row.Username,
				FullName:  row.FullName,
				AvatarURL: row.AvatarURL,
			},
			SubscribersCount: row.SubscribersCount,
			SubscribedBack:   row.SubscribedBack,
		}
	}
	return views, total, nil
}

type channelSummaryRow struct {
	ID             string
	Username       string
	FullName       string
	AvatarURL      string
	VideoID        *string
	VideoTitle     *string
	VideoURL       *string
	ThumbnailURL   *string
	VideoDuration  *float64
	VideoViews     *int64
	VideoCreatedAt *time.Time
}

// ListSubscribedChannels returns the channels a user follows, each with its
// latest published video resolved through a lateral join.
func (r *subscriptionRepository) ListSubscribedChannels(subscriberID string, limit, offset int) ([]*entity.ChannelSummary, int64, error) {
	var total int64
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []channelSummaryRow
	err = r.db.Table("subscriptions s").
		Select(`u.id, u.username, u.full_name, u.avatar_url,
			lv.id AS video_id, lv.title AS video_title, lv.video_url, lv.thumbnail_url,
			lv.duration AS video_duration, lv.views AS video_views, lv.created_at AS video_created_at`).
		Joins("JOIN users u ON u.id = s.channel_id").
		Joins(`LEFT JOIN LATERAL (
			SELECT v.id, v.title, v.video_url, v.thumbnail_url, v.duration, v.views, v.created_at
			FROM videos v
			WHERE v.owner_id = u.id AND v.is_published = TRUE
			ORDER BY v.created_at DESC, v.id DESC
			LIMIT 1
		) lv ON TRUE`).
		Where("s.subscriber_id = ?", subscriberID).
		Order("s.created_at DESC, u.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.ChannelSummary, len(rows))
	for i, row := range rows {
		summary := &entity.ChannelSummary{
			OwnerSummary: entity.OwnerSummary{
				ID:        row.ID,
				Username:  row.Username,
				FullName:  row.FullName,
				AvatarURL: row.AvatarURL,
			},
		}
		if row.VideoID != nil {
			summary.LatestVideo = &entity.Video{
				ID:           *row.VideoID,
				OwnerID:      row.ID,
				Title:        deref(row.VideoTitle),
				VideoURL:     deref(row.VideoURL),
				ThumbnailURL: deref(row.ThumbnailURL),
				Duration:     derefFloat(row.VideoDuration),
				Views:        derefInt(row.VideoViews),
				IsPublished:  true,
			}
			if row.VideoCreatedAt != nil {
				summary.LatestVideo.CreatedAt = *row.VideoCreatedAt
			}
		}
		views[i] = summary
	}
	return views, total, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
