package persistent

import (
	"errors"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	GetView(id, viewerID string) (*entity.PlaylistView, error)
	ListByOwner(ownerID string, limit, offset int) ([]*entity.PlaylistView, int64, error)
	Update(playlist *entity.Playlist) error
	// DeleteWithItems removes the playlist's entries and then the playlist
	// in a single transaction.
	DeleteWithItems(id string) error
	// AddVideo appends the video to the playlist; duplicate adds are
	// silently ignored by the pair key.
	AddVideo(playlistID, videoID string) error
	RemoveVideo(playlistID, videoID string) error
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", id).First(&playlistModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

type playlistViewRow struct {
	ID             string
	OwnerID        string
	Name           string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	OwnerUsername  string
	OwnerFullName  string
	OwnerAvatarURL string
	TotalVideos    int64
	TotalViews     int64
}

const playlistViewColumns = `playlists.id, playlists.owner_id, playlists.name, playlists.description,
	playlists.created_at, playlists.updated_at,
	u.username AS owner_username, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url,
	(SELECT COUNT(*) FROM playlist_videos pv JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = playlists.id AND v.is_published = TRUE) AS total_videos,
	(SELECT COALESCE(SUM(v.views), 0) FROM playlist_videos pv JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = playlists.id AND v.is_published = TRUE) AS total_views`

func (row *playlistViewRow) toView() *entity.PlaylistView {
	return &entity.PlaylistView{
		Playlist: entity.Playlist{
			ID:          row.ID,
			OwnerID:     row.OwnerID,
			Name:        row.Name,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		Owner: entity.OwnerSummary{
			ID:        row.OwnerID,
			Username:  row.OwnerUsername,
			FullName:  row.OwnerFullName,
			AvatarURL: row.OwnerAvatarURL,
		},
		TotalVideos: row.TotalVideos,
		TotalViews:  row.TotalViews,
	}
}

// GetView loads the playlist with aggregate totals, then its published
// videos in insertion order through the shared video view query.
func (r *playlistRepository) GetView(id, viewerID string) (*entity.PlaylistView, error) {
	var rows []playlistViewRow
	err := r.db.Table("playlists").
		Select(playlistViewColumns).
		Joins("JOIN users u ON u.id = playlists.owner_id").
		Where("playlists.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, entity.ErrNotFound
	}
	view := rows[0].toView()

	videoRepo := &videoRepository{db: r.db}
	var videoRows []videoViewRow
	err = videoRepo.viewQuery(viewerID).
		Joins("JOIN playlist_videos pv ON pv.video_id = videos.id AND pv.playlist_id = ?", id).
		Where("videos.is_published = ?", true).
		Order("pv.position ASC, videos.id ASC").
		Scan(&videoRows).Error
	if err != nil {
		return nil, err
	}

	view.Videos = make([]*entity.VideoView, len(videoRows))
	for i := range videoRows {
		view.Videos[i] = videoRows[i].toView()
	}
	return view, nil
}

func (r *playlistRepository) ListByOwner(ownerID string, limit, offset int) ([]*entity.PlaylistView, int64, error) {
	var total int64
	err := r.db.Model(&model.PlaylistModel{}).Where("owner_id = ?", ownerID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []playlistViewRow
	err = r.db.Table("playlists").
		Select(playlistViewColumns).
		Joins("JOIN users u ON u.id = playlists.owner_id").
		Where("playlists.owner_id = ?", ownerID).
		Order("playlists.updated_at DESC, playlists.id DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]*entity.PlaylistView, len(rows))
	for i := range rows {
		views[i] = rows[i].toView()
	}
	return views, total, nil
}

func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	return r.db.Save(ToPlaylistModel(playlist)).Error
}

func (r *playlistRepository) DeleteWithItems(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PlaylistModel{}, "id = ?", id).Error
	})
}

func (r *playlistRepository) AddVideo(playlistID, videoID string) error {
	return r.db.Exec(
		`INSERT INTO playlist_videos (playlist_id, video_id, position, created_at)
		 SELECT ?, ?, COALESCE(MAX(position) + 1, 0), NOW()
		 FROM playlist_videos WHERE playlist_id = ?
		 ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		playlistID, videoID, playlistID,
	).Error
}

func (r *playlistRepository) RemoveVideo(playlistID, videoID string) error {
	return r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error
}
