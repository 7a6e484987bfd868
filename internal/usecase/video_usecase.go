package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// viewDedupTTL is how long a signed-in viewer's repeat fetches of the same
// video count as one view.
const viewDedupTTL = 6 * time.Hour

type PublishVideoInput struct {
	OwnerID              string
	Title                string
	Description          string
	Duration             float64
	VideoFile            io.Reader
	VideoContentType     string
	Thumbnail            io.Reader
	ThumbnailContentType string
}

type UpdateVideoInput struct {
	ActorID              string
	VideoID              string
	Title                string
	Description          string
	Thumbnail            io.Reader
	ThumbnailContentType string
}

type VideoUseCase interface {
	PublishVideo(input PublishVideoInput) (*entity.Video, error)
	GetVideo(videoID, viewerID string) (*entity.VideoView, error)
	ListVideos(viewerID, ownerID, search string, sortBy entity.VideoSort, sortAsc bool, page pagination.Request) (pagination.Page[*entity.VideoView], error)
	UpdateVideo(input UpdateVideoInput) (*entity.Video, error)
	DeleteVideo(actorID, videoID string) error
	TogglePublishStatus(actorID, videoID string) (*entity.Video, error)
	GetWatchHistory(userID string, page pagination.Request) (pagination.Page[*entity.VideoView], error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	s3Client    *s3.Client
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	s3Client *s3.Client,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		s3Client:    s3Client,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *videoUseCase) PublishVideo(input PublishVideoInput) (*entity.Video, error) {
	if input.Title == "" || input.VideoFile == nil || input.Thumbnail == nil {
		return nil, entity.ErrInvalidReference
	}

	videoKey := fmt.Sprintf("videos/%s/%s", input.OwnerID, uuid.New().String())
	videoURL, err := uc.s3Client.UploadFile(videoKey, input.VideoFile, input.VideoContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	thumbKey := fmt.Sprintf("thumbnails/%s/%s", input.OwnerID, uuid.New().String())
	thumbURL, err := uc.s3Client.UploadFile(thumbKey, input.Thumbnail, input.ThumbnailContentType)
	if err != nil {
		uc.releaseAsset(videoKey)
		return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
	}

	video := &entity.Video{
		OwnerID:      input.OwnerID,
		Title:        input.Title,
		Description:  input.Description,
		Duration:     input.Duration,
		IsPublished:  false,
		VideoURL:     videoURL,
		VideoKey:     videoKey,
		ThumbnailURL: thumbURL,
		ThumbnailKey: thumbKey,
	}
	if err := uc.videoRepo.Create(video); err != nil {
		uc.releaseAsset(videoKey)
		uc.releaseAsset(thumbKey)
		return nil, err
	}
	return video, nil
}

func (uc *videoUseCase) GetVideo(videoID, viewerID string) (*entity.VideoView, error) {
	if err := validateID(videoID); err != nil {
		return nil, err
	}

	view, err := uc.videoRepo.GetView(videoID, viewerID)
	if err != nil {
		return nil, err
	}
	// Unpublished videos exist only for their owner.
	if !view.IsPublished && view.OwnerID != viewerID {
		return nil, entity.ErrNotFound
	}

	uc.countView(videoID, viewerID)

	if viewerID != "" {
		if err := uc.videoRepo.RecordWatch(viewerID, videoID); err != nil {
			uc.logger.Warn("Failed to record watch history for user %s: %v", viewerID, err)
		}
	}
	return view, nil
}

// countView increments the view counter. Signed-in viewers are deduplicated
// through a short-lived redis key so refreshing the page does not inflate the
// count; anonymous fetches count every time.
func (uc *videoUseCase) countView(videoID, viewerID string) {
	if viewerID != "" && uc.redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		key := fmt.Sprintf("video_view:%s:%s", videoID, viewerID)
		set, err := uc.redisClient.SetNX(ctx, key, 1, viewDedupTTL).Result()
		if err != nil {
			uc.logger.Warn("View dedup unavailable, counting view for %s: %v", videoID, err)
		} else if !set {
			return
		}
	}
	if err := uc.videoRepo.IncrementViews(videoID); err != nil {
		uc.logger.Warn("Failed to increment views for %s: %v", videoID, err)
	}
}

func (uc *videoUseCase) ListVideos(viewerID, ownerID, search string, sortBy entity.VideoSort, sortAsc bool, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	if ownerID != "" {
		if err := validateID(ownerID); err != nil {
			return pagination.Page[*entity.VideoView]{}, err
		}
	}
	if sortBy == "" {
		sortBy = entity.SortByCreatedAt
	}
	if !sortBy.Valid() {
		return pagination.Page[*entity.VideoView]{}, entity.ErrInvalidReference
	}

	videos, total, err := uc.videoRepo.List(persistent.ListVideosQuery{
		ViewerID: viewerID,
		OwnerID:  ownerID,
		Search:   search,
		SortBy:   sortBy,
		SortAsc:  sortAsc,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	})
	if err != nil {
		return pagination.Page[*entity.VideoView]{}, err
	}
	return pagination.NewPage(videos, total, page), nil
}

func (uc *videoUseCase) UpdateVideo(input UpdateVideoInput) (*entity.Video, error) {
	if err := validateID(input.VideoID); err != nil {
		return nil, err
	}

	video, err := uc.videoRepo.GetByID(input.VideoID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(input.ActorID, video.OwnerID); err != nil {
		return nil, err
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}

	oldThumbKey := ""
	if input.Thumbnail != nil {
		thumbKey := fmt.Sprintf("thumbnails/%s/%s", video.OwnerID, uuid.New().String())
		thumbURL, err := uc.s3Client.UploadFile(thumbKey, input.Thumbnail, input.ThumbnailContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to upload thumbnail: %w", err)
		}
		oldThumbKey = video.ThumbnailKey
		video.ThumbnailURL = thumbURL
		video.ThumbnailKey = thumbKey
	}

	if err := uc.videoRepo.Update(video); err != nil {
		return nil, err
	}
	if oldThumbKey != "" {
		uc.releaseAsset(oldThumbKey)
	}
	return video, nil
}

// DeleteVideo removes the video together with everything hanging off it:
// likes on the video, its comments and their likes, playlist entries and
// watch history rows. Dependents go first so a failure never leaves an edge
// pointing at a vanished video.
func (uc *videoUseCase) DeleteVideo(actorID, videoID string) error {
	if err := validateID(videoID); err != nil {
		return err
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, video.OwnerID); err != nil {
		return err
	}

	if err := uc.videoRepo.DeleteDependents(videoID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrCascadeFailed, err)
	}
	if err := uc.videoRepo.Delete(videoID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrCascadeFailed, err)
	}

	// Stored media is released best effort; an orphaned object is
	// recoverable, a dangling database edge is not.
	uc.releaseAsset(video.VideoKey)
	uc.releaseAsset(video.ThumbnailKey)
	return nil
}

func (uc *videoUseCase) TogglePublishStatus(actorID, videoID string) (*entity.Video, error) {
	if err := validateID(videoID); err != nil {
		return nil, err
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, video.OwnerID); err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	if err := uc.videoRepo.Update(video); err != nil {
		return nil, err
	}

	if video.IsPublished && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":     "video_published",
				"user_id":  video.OwnerID,
				"video_id": video.ID,
				"priority": 5,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish video notification: %v", err)
			}
		}()
	}
	return video, nil
}

func (uc *videoUseCase) GetWatchHistory(userID string, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	videos, total, err := uc.videoRepo.ListWatchHistory(userID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.VideoView]{}, err
	}
	return pagination.NewPage(videos, total, page), nil
}

func (uc *videoUseCase) releaseAsset(key string) {
	if key == "" || uc.s3Client == nil {
		return
	}
	if err := uc.s3Client.DeleteFile(key); err != nil {
		uc.logger.Warn("Failed to delete stored object %s: %v", key, err)
	}
}
