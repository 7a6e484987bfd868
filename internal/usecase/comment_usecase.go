package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"
	"vidtube/pkg/queue"
)

type CommentUseCase interface {
	AddComment(userID, videoID, content string) (*entity.Comment, error)
	GetVideoComments(videoID, viewerID string, page pagination.Request) (pagination.Page[*entity.CommentView], error)
	UpdateComment(actorID, commentID, content string) (*entity.Comment, error)
	DeleteComment(actorID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	videoRepo   persistent.VideoRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	videoRepo persistent.VideoRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(userID, videoID, content string) (*entity.Comment, error) {
	if err := validateID(videoID); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrInvalidReference
	}

	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: content,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if video.OwnerID != userID && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":         "comment",
				"user_id":      video.OwnerID,
				"commenter_id": userID,
				"video_id":     videoID,
				"priority":     3,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish comment notification: %v", err)
			}
		}()
	}
	return comment, nil
}

func (uc *commentUseCase) GetVideoComments(videoID, viewerID string, page pagination.Request) (pagination.Page[*entity.CommentView], error) {
	if err := validateID(videoID); err != nil {
		return pagination.Page[*entity.CommentView]{}, err
	}
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return pagination.Page[*entity.CommentView]{}, err
	}

	comments, total, err := uc.commentRepo.ListByVideo(videoID, viewerID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.CommentView]{}, err
	}
	return pagination.NewPage(comments, total, page), nil
}

func (uc *commentUseCase) UpdateComment(actorID, commentID, content string) (*entity.Comment, error) {
	if err := validateID(commentID); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrInvalidReference
	}

	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, comment.OwnerID); err != nil {
		return nil, err
	}

	comment.Content = content
	if err := uc.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment and its likes together so the like table
// never holds an edge to a vanished comment.
func (uc *commentUseCase) DeleteComment(actorID, commentID string) error {
	if err := validateID(commentID); err != nil {
		return err
	}

	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, comment.OwnerID); err != nil {
		return err
	}

	if err := uc.commentRepo.DeleteWithLikes(commentID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrCascadeFailed, err)
	}
	return nil
}
