package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

// ToggleSubscription godoc
// @Summary      Toggle subscription to a channel
// @Description  Subscribes to the channel, or unsubscribes if already subscribed. Subscribing to yourself is rejected.
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel (user) ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /subscriptions/{channel_id} [post]
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	subscribed, err := h.subscriptionUseCase.ToggleSubscription(c.GetString("user_id"), c.Param("channel_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "Subscribed"
	if !subscribed {
		message = "Unsubscribed"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "subscribed": subscribed})
}

// GetChannelSubscribers godoc
// @Summary      List channel subscribers
// @Description  Subscribers of a channel, each with their own subscriber count and whether the channel subscribes back
// @Tags         subscriptions
// @Produce      json
// @Param        channel_id path string true "Channel (user) ID"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /subscriptions/{channel_id}/subscribers [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	result, err := h.subscriptionUseCase.GetChannelSubscribers(c.Param("channel_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSubscribedChannels godoc
// @Summary      List subscribed channels
// @Description  Channels the user subscribes to, each with its latest published video
// @Tags         subscriptions
// @Produce      json
// @Param        subscriber_id path string true "Subscriber (user) ID"
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /subscriptions/user/{subscriber_id} [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	result, err := h.subscriptionUseCase.GetSubscribedChannels(c.Param("subscriber_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
