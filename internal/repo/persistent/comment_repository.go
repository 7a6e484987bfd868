package persistent

import (
	"errors"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByVideo(videoID, viewerID string, limit, offset int) ([]*entity.CommentView, int64, error)
	Update(comment *entity.Comment) error
	// DeleteWithLikes removes the comment's likes and then the comment in a
	// single transaction, so no like ever references a vanished comment.
	DeleteWithLikes(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

type commentViewRow struct {
	ID             string
	OwnerID        string
	VideoID        string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	OwnerUsername  string
	OwnerFullName  string
	OwnerAvatarURL string
	LikesCount     int64
	IsLiked        bool
}

func (r *commentRepository) ListByVideo(videoID, viewerID string, limit, offset int) ([]*entity.CommentView, int64, error) {
	var total int64
	err := r.db.Model(&model.CommentModel{}).Where("video_id = ?", videoID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	const columns = `comments.id, comments.owner_id, comments.video_id, comments.content,
		comments.created_at, comments.updated_at,
		u.username AS owner_username, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url,
		(SELECT COUNT(*) FROM likes l WHERE l.target_kind = 'comment' AND l.target_id = comments.id) AS likes_count`

	q := r.db.Table("comments").Joins("JOIN users u ON u.id = comments.owner_id")
	if viewerID != "" {
		q = q.Select(columns+`,
			EXISTS(SELECT 1 FROM likes l WHERE l.target_kind = 'comment' AND l.target_id = comments.id AND l.user_id = ?) AS is_liked`,
			viewerID)
	} else {
		q = q.Select(columns + `, FALSE AS is_liked`)
	}

	var rows []commentViewRow
	err = q.Where("comments.video_id = ?", videoID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.CommentView, len(rows))
	for i, row := range rows {
		views[i] = &entity.CommentView{
			Comment: entity.Comment{
				ID:        row.ID,
				OwnerID:   row.OwnerID,
				VideoID:   row.VideoID,
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

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Save(ToCommentModel(comment)).Error
}

func (r *commentRepository) DeleteWithLikes(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", "comment", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CommentModel{}, "id = ?", id).Error
	})
}
