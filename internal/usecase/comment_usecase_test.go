package usecase

import (
	"testing"

	"vidtube/internal/entity"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newCommentUseCaseForTest(commentRepo *MockCommentRepository, videoRepo *MockVideoRepository) CommentUseCase {
	return NewCommentUseCase(commentRepo, videoRepo, nil, logger.New())
}

func TestAddComment_MissingVideo(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCaseForTest(commentRepo, videoRepo)

	videoID := uuid.New().String()
	videoRepo.On("GetByID", videoID).Return(nil, entity.ErrNotFound)

	_, err := uc.AddComment(uuid.New().String(), videoID, "first!")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestAddComment_EmptyContent(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCaseForTest(commentRepo, videoRepo)

	_, err := uc.AddComment(uuid.New().String(), uuid.New().String(), "   ")

	assert.ErrorIs(t, err, entity.ErrInvalidReference)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestAddComment_Creates(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	videoRepo := new(MockVideoRepository)
	uc := newCommentUseCaseForTest(commentRepo, videoRepo)

	videoID := uuid.New().String()
	userID := uuid.New().String()

	videoRepo.On("GetByID", videoID).Return(&entity.Video{ID: videoID, OwnerID: userID}, nil)
	commentRepo.On("Create", &entity.Comment{VideoID: videoID, OwnerID: userID, Content: "nice walkthrough"}).Return(nil)

	comment, err := uc.AddComment(userID, videoID, "  nice walkthrough  ")

	assert.NoError(t, err)
	assert.Equal(t, "nice walkthrough", comment.Content)
	commentRepo.AssertExpectations(t)
}

func TestUpdateComment_NotOwner(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	uc := newCommentUseCaseForTest(commentRepo, new(MockVideoRepository))

	commentID := uuid.New().String()
	commentRepo.On("GetByID", commentID).Return(&entity.Comment{ID: commentID, OwnerID: uuid.New().String()}, nil)

	_, err := uc.UpdateComment(uuid.New().String(), commentID, "edited")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	commentRepo.AssertNotCalled(t, "Update")
}

func TestDeleteComment_RemovesLikesWithComment(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	uc := newCommentUseCaseForTest(commentRepo, new(MockVideoRepository))

	commentID := uuid.New().String()
	ownerID := uuid.New().String()

	commentRepo.On("GetByID", commentID).Return(&entity.Comment{ID: commentID, OwnerID: ownerID}, nil)
	commentRepo.On("DeleteWithLikes", commentID).Return(nil)

	err := uc.DeleteComment(ownerID, commentID)

	assert.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestDeleteComment_CascadeFailure(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	uc := newCommentUseCaseForTest(commentRepo, new(MockVideoRepository))

	commentID := uuid.New().String()
	ownerID := uuid.New().String()

	commentRepo.On("GetByID", commentID).Return(&entity.Comment{ID: commentID, OwnerID: ownerID}, nil)
	commentRepo.On("DeleteWithLikes", commentID).Return(assert.AnError)

	err := uc.DeleteComment(ownerID, commentID)

	assert.ErrorIs(t, err, entity.ErrCascadeFailed)
	commentRepo.AssertExpectations(t)
}
