package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	// Toggle flips the like edge for (user, kind, target) and reports the
	// resulting presence state.
	Toggle(userID string, kind entity.LikeTarget, targetID string) (bool, error)
	Count(kind entity.LikeTarget, targetID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Toggle never trusts a prior read: it deletes first, and when nothing was
// there it inserts under the unique (user, kind, target) index with
// ON CONFLICT DO NOTHING. Losing both races to a concurrent toggle gets one
// reconciliation pass before surfacing ErrConflict.
func (r *likeRepository) Toggle(userID string, kind entity.LikeTarget, targetID string) (bool, error) {
	for attempt := 0; attempt < 2; attempt++ {
		res := r.db.Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, string(kind), targetID).
			Delete(&model.LikeModel{})
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected > 0 {
			return false, nil
		}

		like := &model.LikeModel{
			ID:         uuid.New().String(),
			UserID:     userID,
			TargetKind: string(kind),
			TargetID:   targetID,
		}
		ins := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if ins.Error != nil {
			return false, ins.Error
		}
		if ins.RowsAffected > 0 {
			return true, nil
		}
		// A concurrent toggle created the edge between our delete and
		// insert; re-read and reconcile once.
	}
	return false, entity.ErrConflict
}

func (r *likeRepository) Count(kind entity.LikeTarget, targetID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("target_kind = ? AND target_id = ?", string(kind), targetID).
		Count(&count).Error
	return count, err
}
