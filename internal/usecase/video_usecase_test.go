package usecase

import (
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newVideoUseCaseForTest(videoRepo *MockVideoRepository) VideoUseCase {
	return NewVideoUseCase(videoRepo, nil, nil, nil, logger.New())
}

func TestGetVideo_InvalidID(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	_, err := uc.GetVideo("not-a-uuid", "")

	assert.ErrorIs(t, err, entity.ErrInvalidReference)
	videoRepo.AssertNotCalled(t, "GetView")
}

func TestGetVideo_UnpublishedHiddenFromOthers(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()
	ownerID := uuid.New().String()
	viewerID := uuid.New().String()

	view := &entity.VideoView{}
	view.ID = videoID
	view.OwnerID = ownerID
	view.IsPublished = false

	videoRepo.On("GetView", videoID, viewerID).Return(view, nil)

	_, err := uc.GetVideo(videoID, viewerID)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	videoRepo.AssertNotCalled(t, "IncrementViews", videoID)
	videoRepo.AssertExpectations(t)
}

func TestGetVideo_OwnerSeesUnpublished(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()
	ownerID := uuid.New().String()

	view := &entity.VideoView{}
	view.ID = videoID
	view.OwnerID = ownerID
	view.IsPublished = false

	videoRepo.On("GetView", videoID, ownerID).Return(view, nil)
	videoRepo.On("IncrementViews", videoID).Return(nil)
	videoRepo.On("RecordWatch", ownerID, videoID).Return(nil)

	got, err := uc.GetVideo(videoID, ownerID)

	assert.NoError(t, err)
	assert.Equal(t, videoID, got.ID)
	videoRepo.AssertExpectations(t)
}

func TestGetVideo_AnonymousCountsViewWithoutHistory(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()

	view := &entity.VideoView{}
	view.ID = videoID
	view.OwnerID = uuid.New().String()
	view.IsPublished = true

	videoRepo.On("GetView", videoID, "").Return(view, nil)
	videoRepo.On("IncrementViews", videoID).Return(nil)

	_, err := uc.GetVideo(videoID, "")

	assert.NoError(t, err)
	videoRepo.AssertNotCalled(t, "RecordWatch")
	videoRepo.AssertExpectations(t)
}

func TestDeleteVideo_RemovesDependentsFirst(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()
	ownerID := uuid.New().String()

	video := &entity.Video{ID: videoID, OwnerID: ownerID}
	videoRepo.On("GetByID", videoID).Return(video, nil)
	videoRepo.On("DeleteDependents", videoID).Return(nil)
	videoRepo.On("Delete", videoID).Return(nil)

	err := uc.DeleteVideo(ownerID, videoID)

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
}

func TestDeleteVideo_DependentFailureAborts(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()
	ownerID := uuid.New().String()

	video := &entity.Video{ID: videoID, OwnerID: ownerID}
	videoRepo.On("GetByID", videoID).Return(video, nil)
	videoRepo.On("DeleteDependents", videoID).Return(assert.AnError)

	err := uc.DeleteVideo(ownerID, videoID)

	assert.ErrorIs(t, err, entity.ErrCascadeFailed)
	videoRepo.AssertNotCalled(t, "Delete", videoID)
	videoRepo.AssertExpectations(t)
}

func TestDeleteVideo_NotOwner(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()

	video := &entity.Video{ID: videoID, OwnerID: uuid.New().String()}
	videoRepo.On("GetByID", videoID).Return(video, nil)

	err := uc.DeleteVideo(uuid.New().String(), videoID)

	assert.ErrorIs(t, err, entity.ErrForbidden)
	videoRepo.AssertNotCalled(t, "DeleteDependents", videoID)
	videoRepo.AssertExpectations(t)
}

func TestUpdateVideo_NotOwner(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()

	video := &entity.Video{ID: videoID, OwnerID: uuid.New().String()}
	videoRepo.On("GetByID", videoID).Return(video, nil)

	_, err := uc.UpdateVideo(UpdateVideoInput{
		ActorID: uuid.New().String(),
		VideoID: videoID,
		Title:   "New title",
	})

	assert.ErrorIs(t, err, entity.ErrForbidden)
	videoRepo.AssertNotCalled(t, "Update")
	videoRepo.AssertExpectations(t)
}

func TestTogglePublishStatus_Flips(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoID := uuid.New().String()
	ownerID := uuid.New().String()

	video := &entity.Video{ID: videoID, OwnerID: ownerID, IsPublished: false}
	videoRepo.On("GetByID", videoID).Return(video, nil)
	videoRepo.On("Update", video).Return(nil)

	got, err := uc.TogglePublishStatus(ownerID, videoID)

	assert.NoError(t, err)
	assert.True(t, got.IsPublished)
	videoRepo.AssertExpectations(t)
}

func TestListVideos_RejectsUnknownSortColumn(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	_, err := uc.ListVideos("", "", "", entity.VideoSort("password"), false, pagination.NewRequest(1, 10))

	assert.ErrorIs(t, err, entity.ErrInvalidReference)
	videoRepo.AssertNotCalled(t, "List")
}

func TestListVideos_DefaultsToCreatedAt(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	viewerID := uuid.New().String()
	videoRepo.On("List", persistent.ListVideosQuery{
		ViewerID: viewerID,
		SortBy:   entity.SortByCreatedAt,
		Limit:    10,
		Offset:   0,
	}).Return([]*entity.VideoView{}, int64(0), nil)

	page, err := uc.ListVideos(viewerID, "", "", "", false, pagination.NewRequest(1, 10))

	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
	videoRepo.AssertExpectations(t)
}
