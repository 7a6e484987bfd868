package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
	logger          *logger.Logger
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase, logger *logger.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		logger:          logger,
	}
}

type PlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreatePlaylist godoc
// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlaylistRequest true "Playlist name and description"
// @Success      201  {object}  entity.Playlist
// @Failure      400  {object}  map[string]string
// @Router       /playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.CreatePlaylist(c.GetString("user_id"), req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, playlist)
}

// GetPlaylist godoc
// @Summary      Get playlist by ID
// @Description  Playlist with its published videos in order, plus video and view totals
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  entity.PlaylistView
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	view, err := h.playlistUseCase.GetPlaylist(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetUserPlaylists godoc
// @Summary      List a user's playlists
// @Tags         playlists
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /playlists/user/{user_id} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	result, err := h.playlistUseCase.GetUserPlaylists(c.Param("user_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdatePlaylist godoc
// @Summary      Update playlist
// @Description  Owner only
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  entity.Playlist
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [patch]
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.UpdatePlaylist(c.GetString("user_id"), c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// DeletePlaylist godoc
// @Summary      Delete playlist
// @Description  Removes the playlist and its entries; the videos are untouched. Owner only.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	if err := h.playlistUseCase.DeletePlaylist(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted"})
}

// AddVideoToPlaylist godoc
// @Summary      Add video to playlist
// @Description  Appends the video; adding a video twice is a no-op. Owner only.
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/videos/{video_id} [post]
func (h *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	if err := h.playlistUseCase.AddVideoToPlaylist(c.GetString("user_id"), c.Param("id"), c.Param("video_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video added to playlist"})
}

// RemoveVideoFromPlaylist godoc
// @Summary      Remove video from playlist
// @Description  Owner only
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/videos/{video_id} [delete]
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	if err := h.playlistUseCase.RemoveVideoFromPlaylist(c.GetString("user_id"), c.Param("id"), c.Param("video_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video removed from playlist"})
}
