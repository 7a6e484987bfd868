package usecase

import (
	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"
	"vidtube/pkg/queue"
)

type LikeUseCase interface {
	ToggleVideoLike(userID, videoID string) (bool, error)
	ToggleCommentLike(userID, commentID string) (bool, error)
	ToggleTweetLike(userID, tweetID string) (bool, error)
	GetLikedVideos(userID string, page pagination.Request) (pagination.Page[*entity.VideoView], error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	videoRepo   persistent.VideoRepository
	commentRepo persistent.CommentRepository
	tweetRepo   persistent.TweetRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	videoRepo persistent.VideoRepository,
	commentRepo persistent.CommentRepository,
	tweetRepo persistent.TweetRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *likeUseCase) ToggleVideoLike(userID, videoID string) (bool, error) {
	if err := validateID(videoID); err != nil {
		return false, err
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return false, err
	}

	liked, err := uc.likeRepo.Toggle(userID, entity.LikeTargetVideo, videoID)
	if err != nil {
		return false, err
	}

	if liked && video.OwnerID != userID {
		uc.notify(video.OwnerID, userID, "video", videoID)
	}
	return liked, nil
}

func (uc *likeUseCase) ToggleCommentLike(userID, commentID string) (bool, error) {
	if err := validateID(commentID); err != nil {
		return false, err
	}

	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return false, err
	}

	liked, err := uc.likeRepo.Toggle(userID, entity.LikeTargetComment, commentID)
	if err != nil {
		return false, err
	}

	if liked && comment.OwnerID != userID {
		uc.notify(comment.OwnerID, userID, "comment", commentID)
	}
	return liked, nil
}

func (uc *likeUseCase) ToggleTweetLike(userID, tweetID string) (bool, error) {
	if err := validateID(tweetID); err != nil {
		return false, err
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return false, err
	}

	liked, err := uc.likeRepo.Toggle(userID, entity.LikeTargetTweet, tweetID)
	if err != nil {
		return false, err
	}

	if liked && tweet.OwnerID != userID {
		uc.notify(tweet.OwnerID, userID, "tweet", tweetID)
	}
	return liked, nil
}

func (uc *likeUseCase) GetLikedVideos(userID string, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	videos, total, err := uc.videoRepo.ListLikedBy(userID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.VideoView]{}, err
	}
	return pagination.NewPage(videos, total, page), nil
}

func (uc *likeUseCase) notify(ownerID, likerID, targetKind, targetID string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		task := map[string]interface{}{
			"type":        "like",
			"user_id":     ownerID,
			"liker_id":    likerID,
			"target_kind": targetKind,
			"target_id":   targetID,
			"priority":    3,
		}
		if err := uc.queueClient.PublishNotificationTask(task); err != nil {
			uc.logger.Error("Failed to publish like notification: %v", err)
		}
	}()
}
