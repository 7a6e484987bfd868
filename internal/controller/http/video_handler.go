package http

import (
	"net/http"

	"vidtube/internal/entity"
	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration" binding:"required,gt=0"`
}

// PublishVideo godoc
// @Summary      Upload a video
// @Description  Upload a video file with its thumbnail. The video starts out unpublished.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Video title"
// @Param        description formData string false "Video description"
// @Param        duration formData number true "Duration in seconds"
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	var req PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoFile, videoHeader, err := openFormFile(c, "video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file is required"})
		return
	}
	defer videoFile.Close()

	thumbFile, thumbHeader, err := openFormFile(c, "thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thumbnail file is required"})
		return
	}
	defer thumbFile.Close()

	video, err := h.videoUseCase.PublishVideo(usecase.PublishVideoInput{
		OwnerID:              c.GetString("user_id"),
		Title:                req.Title,
		Description:          req.Description,
		Duration:             req.Duration,
		VideoFile:            videoFile,
		VideoContentType:     videoHeader.Header.Get("Content-Type"),
		Thumbnail:            thumbFile,
		ThumbnailContentType: thumbHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

// GetVideo godoc
// @Summary      Get video by ID
// @Description  Fetch a video with relationship facts for the viewer; counts the view
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.VideoView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	view, err := h.videoUseCase.GetVideo(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListVideos godoc
// @Summary      List videos
// @Description  List published videos with search, sorting and pagination
// @Tags         videos
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Param        query query string false "Search in title and description"
// @Param        owner_id query string false "Filter by channel owner"
// @Param        sort_by query string false "Sort column" Enums(created_at, views, duration, title)
// @Param        sort_order query string false "Sort direction" Enums(asc, desc)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	sortAsc := c.DefaultQuery("sort_order", "desc") == "asc"
	result, err := h.videoUseCase.ListVideos(
		c.GetString("user_id"),
		c.Query("owner_id"),
		c.Query("query"),
		entity.VideoSort(c.DefaultQuery("sort_by", string(entity.SortByCreatedAt))),
		sortAsc,
		pageRequest(c),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// UpdateVideo godoc
// @Summary      Update video
// @Description  Update title, description or thumbnail. Owner only.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "New title"
// @Param        description formData string false "New description"
// @Param        thumbnail formData file false "New thumbnail"
// @Success      200  {object}  entity.Video
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [patch]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateVideoInput{
		ActorID:     c.GetString("user_id"),
		VideoID:     c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
	}
	if file, header, err := openFormFile(c, "thumbnail"); err == nil {
		defer file.Close()
		input.Thumbnail = file
		input.ThumbnailContentType = header.Header.Get("Content-Type")
	}

	video, err := h.videoUseCase.UpdateVideo(input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete video
// @Description  Delete a video with its likes, comments, comment likes, playlist entries and watch history. Owner only.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	if err := h.videoUseCase.DeleteVideo(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

// TogglePublishStatus godoc
// @Summary      Toggle publish status
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/toggle-publish [patch]
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	video, err := h.videoUseCase.TogglePublishStatus(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// GetWatchHistory godoc
// @Summary      Get watch history
// @Description  Videos the authenticated user has watched, most recent first
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /videos/history [get]
func (h *VideoHandler) GetWatchHistory(c *gin.Context) {
	result, err := h.videoUseCase.GetWatchHistory(c.GetString("user_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
