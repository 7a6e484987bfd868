package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

func (h *LikeHandler) respondToggle(c *gin.Context, liked bool, err error) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	message := "Liked"
	if !liked {
		message = "Like removed"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "liked": liked})
}

// ToggleVideoLike godoc
// @Summary      Toggle like on a video
// @Description  Likes the video, or removes the like if one exists
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /likes/video/{id} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	liked, err := h.likeUseCase.ToggleVideoLike(c.GetString("user_id"), c.Param("id"))
	h.respondToggle(c, liked, err)
}

// ToggleCommentLike godoc
// @Summary      Toggle like on a comment
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /likes/comment/{id} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	liked, err := h.likeUseCase.ToggleCommentLike(c.GetString("user_id"), c.Param("id"))
	h.respondToggle(c, liked, err)
}

// ToggleTweetLike godoc
// @Summary      Toggle like on a tweet
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /likes/tweet/{id} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	liked, err := h.likeUseCase.ToggleTweetLike(c.GetString("user_id"), c.Param("id"))
	h.respondToggle(c, liked, err)
}

// GetLikedVideos godoc
// @Summary      List liked videos
// @Description  Published videos the authenticated user has liked
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	result, err := h.likeUseCase.GetLikedVideos(c.GetString("user_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
