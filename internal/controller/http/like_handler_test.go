package http

import (
	"encoding/json"
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

// MockLikeUseCase is a mock implementation of LikeUseCase
type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleVideoLike(userID, videoID string) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleCommentLike(userID, commentID string) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) ToggleTweetLike(userID, tweetID string) (bool, error) {
	args := m.Called(userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeUseCase) GetLikedVideos(userID string, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	args := m.Called(userID, page)
	return args.Get(0).(pagination.Page[*entity.VideoView]), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestToggleVideoLike_Like(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/video/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleVideoLike(c)
	})

	mockUseCase.On("ToggleVideoLike", "user-123", "video-123").Return(true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/video-123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Liked", response["message"])
	assert.Equal(t, true, response["liked"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleVideoLike_Unlike(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/video/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.ToggleVideoLike(c)
	})

	mockUseCase.On("ToggleVideoLike", "user-123", "video-123").Return(false, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/video-123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Like removed", response["message"])
	assert.Equal(t, false, response["liked"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleVideoLike_NotFound(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/video/:id", handler.ToggleVideoLike)

	mockUseCase.On("ToggleVideoLike", "", "gone").Return(false, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/gone", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleCommentLike_Conflict(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/likes/comment/:id", handler.ToggleCommentLike)

	mockUseCase.On("ToggleCommentLike", "", "comment-123").Return(false, entity.ErrConflict)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/comment/comment-123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetLikedVideos_Success(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/likes/videos", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetLikedVideos(c)
	})

	page := pagination.NewPage([]*entity.VideoView{}, 0, pagination.NewRequest(1, 10))
	mockUseCase.On("GetLikedVideos", "user-123", pagination.NewRequest(1, 10)).Return(page, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/videos", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}
