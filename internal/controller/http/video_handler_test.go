package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVideoUseCase is a mock implementation of VideoUseCase
type MockVideoUseCase struct {
	mock.Mock
}

func (m *MockVideoUseCase) PublishVideo(input usecase.PublishVideoInput) (*entity.Video, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetVideo(videoID, viewerID string) (*entity.VideoView, error) {
	args := m.Called(videoID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoView), args.Error(1)
}

func (m *MockVideoUseCase) ListVideos(viewerID, ownerID, search string, sortBy entity.VideoSort, sortAsc bool, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	args := m.Called(viewerID, ownerID, search, sortBy, sortAsc, page)
	return args.Get(0).(pagination.Page[*entity.VideoView]), args.Error(1)
}

func (m *MockVideoUseCase) UpdateVideo(input usecase.UpdateVideoInput) (*entity.Video, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) DeleteVideo(actorID, videoID string) error {
	args := m.Called(actorID, videoID)
	return args.Error(0)
}

func (m *MockVideoUseCase) TogglePublishStatus(actorID, videoID string) (*entity.Video, error) {
	args := m.Called(actorID, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoUseCase) GetWatchHistory(userID string, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	args := m.Called(userID, page)
	return args.Get(0).(pagination.Page[*entity.VideoView]), args.Error(1)
}

var _ usecase.VideoUseCase = (*MockVideoUseCase)(nil)

func TestGetVideo_NotFoundMapsTo404(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id", handler.GetVideo)

	mockUseCase.On("GetVideo", "gone", "").Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/gone", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetVideo_InvalidIDMapsTo400(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id", handler.GetVideo)

	mockUseCase.On("GetVideo", "42", "").Return(nil, entity.ErrInvalidReference)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteVideo_ForbiddenMapsTo403(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/videos/:id", func(c *gin.Context) {
		c.Set("user_id", "intruder")
		handler.DeleteVideo(c)
	})

	mockUseCase.On("DeleteVideo", "intruder", "video-123").Return(entity.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/videos/video-123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteVideo_CascadeFailureMapsTo500(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/videos/:id", func(c *gin.Context) {
		c.Set("user_id", "owner")
		handler.DeleteVideo(c)
	})

	mockUseCase.On("DeleteVideo", "owner", "video-123").Return(entity.ErrCascadeFailed)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/videos/video-123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListVideos_PassesSortAndPagination(t *testing.T) {
	mockUseCase := new(MockVideoUseCase)
	handler := NewVideoHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/videos", handler.ListVideos)

	page := pagination.NewPage([]*entity.VideoView{}, 0, pagination.NewRequest(2, 5))
	mockUseCase.On("ListVideos", "", "", "golang", entity.SortByViews, true, pagination.NewRequest(2, 5)).
		Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos?query=golang&sort_by=views&sort_order=asc&page=2&limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
