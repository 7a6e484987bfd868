package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetUseCase usecase.TweetUseCase
	logger       *logger.Logger
}

func NewTweetHandler(tweetUseCase usecase.TweetUseCase, logger *logger.Logger) *TweetHandler {
	return &TweetHandler{
		tweetUseCase: tweetUseCase,
		logger:       logger,
	}
}

type TweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TweetRequest true "Tweet content"
// @Success      201  {object}  entity.Tweet
// @Failure      400  {object}  map[string]string
// @Router       /tweets [post]
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweetUseCase.CreateTweet(c.GetString("user_id"), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, tweet)
}

// GetUserTweets godoc
// @Summary      List a user's tweets
// @Description  Tweets with like counts and the viewer's like state, newest first
// @Tags         tweets
// @Produce      json
// @Param        user_id path string true "User ID"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /tweets/user/{user_id} [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	result, err := h.tweetUseCase.GetUserTweets(c.Param("user_id"), c.GetString("user_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateTweet godoc
// @Summary      Update tweet
// @Description  Owner only
// @Tags         tweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Param        request body TweetRequest true "New content"
// @Success      200  {object}  entity.Tweet
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [patch]
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	var req TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweetUseCase.UpdateTweet(c.GetString("user_id"), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tweet)
}

// DeleteTweet godoc
// @Summary      Delete tweet
// @Description  Removes the tweet together with its likes. Owner only.
// @Tags         tweets
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Tweet ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tweets/{id} [delete]
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	if err := h.tweetUseCase.DeleteTweet(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tweet deleted"})
}
