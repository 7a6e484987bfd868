package persistent

import (
	"errors"
	"fmt"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListVideosQuery carries the filters for a video listing. ViewerID may be
// empty for anonymous reads; relationship flags then resolve to false.
type ListVideosQuery struct {
	ViewerID string
	OwnerID  string
	Search   string
	SortBy   entity.VideoSort
	SortAsc  bool
	Limit    int
	Offset   int
}

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	GetView(id, viewerID string) (*entity.VideoView, error)
	List(q ListVideosQuery) ([]*entity.VideoView, int64, error)
	ListLikedBy(userID string, limit, offset int) ([]*entity.VideoView, int64, error)
	ListWatchHistory(userID string, limit, offset int) ([]*entity.VideoView, int64, error)
	Update(video *entity.Video) error
	Delete(id string) error
	DeleteDependents(id string) error
	IncrementViews(id string) error
	RecordWatch(userID, videoID string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

// videoViewRow is the scan target for the denormalizing video queries: the
// video columns plus owner projection and relationship facts, resolved in a
// single statement per batch.
type videoViewRow struct {
	ID                string
	OwnerID           string
	Title             string
	Description       string
	Duration          float64
	Views             int64
	IsPublished       bool
	VideoURL          string
	VideoKey          string
	ThumbnailURL      string
	ThumbnailKey      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	OwnerUsername     string
	OwnerFullName     string
	OwnerAvatarURL    string
	LikesCount        int64
	IsLiked           bool
	OwnerSubscribers  int64
	OwnerIsSubscribed bool
}

func (row *videoViewRow) toView() *entity.VideoView {
	return &entity.VideoView{
		Video: entity.Video{
			ID:           row.ID,
			OwnerID:      row.OwnerID,
			Title:        row.Title,
			Description:  row.Description,
			Duration:     row.Duration,
			Views:        row.Views,
			IsPublished:  row.IsPublished,
			VideoURL:     row.VideoURL,
			VideoKey:     row.VideoKey,
			ThumbnailURL: row.ThumbnailURL,
			ThumbnailKey: row.ThumbnailKey,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
		Owner: entity.OwnerSummary{
			ID:        row.OwnerID,
			Username:  row.OwnerUsername,
			FullName:  row.OwnerFullName,
			AvatarURL: row.OwnerAvatarURL,
		},
		LikesCount:        row.LikesCount,
		IsLiked:           row.IsLiked,
		OwnerSubscribers:  row.OwnerSubscribers,
		OwnerIsSubscribed: row.OwnerIsSubscribed,
	}
}

const videoViewColumns = `videos.id, videos.owner_id, videos.title, videos.description,
	videos.duration, videos.views, videos.is_published, videos.video_url, videos.video_key,
	videos.thumbnail_url, videos.thumbnail_key, videos.created_at, videos.updated_at,
	u.username AS owner_username, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url,
	(SELECT COUNT(*) FROM likes l WHERE l.target_kind = 'video' AND l.target_id = videos.id) AS likes_count`

// viewQuery builds the base denormalizing query. Anonymous viewers get a
// constant false flag instead of a bound parameter.
func (r *videoRepository) viewQuery(viewerID string) *gorm.DB {
	q := r.db.Table("videos").Joins("JOIN users u ON u.id = videos.owner_id")
	if viewerID != "" {
		return q.Select(videoViewColumns+`,
			EXISTS(SELECT 1 FROM likes l WHERE l.target_kind = 'video' AND l.target_id = videos.id AND l.user_id = ?) AS is_liked`,
			viewerID)
	}
	return q.Select(videoViewColumns + `, FALSE AS is_liked`)
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Where("id = ?", id).First(&videoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) GetView(id, viewerID string) (*entity.VideoView, error) {
	q := r.db.Table("videos").Joins("JOIN users u ON u.id = videos.owner_id").Where("videos.id = ?", id)

	if viewerID != "" {
		q = q.Select(videoViewColumns+`,
			EXISTS(SELECT 1 FROM likes l WHERE l.target_kind = 'video' AND l.target_id = videos.id AND l.user_id = ?) AS is_liked,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS owner_subscribers,
			EXISTS(SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = ?) AS owner_is_subscribed`,
			viewerID, viewerID)
	} else {
		q = q.Select(videoViewColumns + `, FALSE AS is_liked,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS owner_subscribers,
			FALSE AS owner_is_subscribed`)
	}

	var rows []videoViewRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, entity.ErrNotFound
	}
	return rows[0].toView(), nil
}

func (r *videoRepository) List(q ListVideosQuery) ([]*entity.VideoView, int64, error) {
	filters := func(db *gorm.DB) *gorm.DB {
		if q.OwnerID != "" {
			db = db.Where("videos.owner_id = ?", q.OwnerID)
		}
		// Unpublished videos are visible to their owner only.
		if q.OwnerID == "" || q.OwnerID != q.ViewerID {
			db = db.Where("videos.is_published = ?", true)
		}
		if q.Search != "" {
			pattern := "%" + q.Search + "%"
			db = db.Where("(videos.title ILIKE ? OR videos.description ILIKE ?)", pattern, pattern)
		}
		return db
	}

	var total int64
	if err := filters(r.db.Table("videos")).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := q.SortBy
	if !sortBy.Valid() {
		sortBy = entity.SortByCreatedAt
	}
	dir := "DESC"
	if q.SortAsc {
		dir = "ASC"
	}

	var rows []videoViewRow
	err := filters(r.viewQuery(q.ViewerID)).
		Order(fmt.Sprintf("videos.%s %s, videos.id DESC", sortBy, dir)).
		Limit(q.Limit).Offset(q.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.VideoView, len(rows))
	for i := range rows {
		views[i] = rows[i].toView()
	}
	return views, total, nil
}

func (r *videoRepository) ListLikedBy(userID string, limit, offset int) ([]*entity.VideoView, int64, error) {
	var total int64
	err := r.db.Table("likes").
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_kind = ?", userID, "video").
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []videoViewRow
	err = r.viewQuery(userID).
		Joins("JOIN likes lk ON lk.target_kind = 'video' AND lk.target_id = videos.id AND lk.user_id = ?", userID).
		Order("lk.created_at DESC, videos.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.VideoView, len(rows))
	for i := range rows {
		views[i] = rows[i].toView()
	}
	return views, total, nil
}

func (r *videoRepository) ListWatchHistory(userID string, limit, offset int) ([]*entity.VideoView, int64, error) {
	var total int64
	err := r.db.Table("watch_history").
		Joins("JOIN videos ON videos.id = watch_history.video_id").
		Where("watch_history.user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []videoViewRow
	err = r.viewQuery(userID).
		Joins("JOIN watch_history wh ON wh.video_id = videos.id AND wh.user_id = ?", userID).
		Order("wh.watched_at DESC, videos.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.VideoView, len(rows))
	for i := range rows {
		views[i] = rows[i].toView()
	}
	return views, total, nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	return r.db.Save(ToVideoModel(video)).Error
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Delete(&model.VideoModel{}, "id = ?", id).Error
}

// DeleteDependents removes everything referencing the video inside one
// transaction, deepest first: likes on the video's comments, likes on the
// video, the comments themselves, then playlist entries and watch history.
// The video row itself is left for the caller to delete afterwards.
func (r *videoRepository) DeleteDependents(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			`DELETE FROM likes WHERE target_kind = 'comment' AND target_id IN (SELECT id FROM comments WHERE video_id = ?)`,
			id,
		).Error
		if err != nil {
			return err
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", "video", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", id).Delete(&model.WatchHistoryModel{}).Error
	})
}

func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}

func (r *videoRepository) RecordWatch(userID, videoID string) error {
	now := time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": now}),
	}).Create(&model.WatchHistoryModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: now,
	}).Error
}
