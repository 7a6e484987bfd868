package usecase

import (
	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/logger"
	"vidtube/pkg/pagination"
	"vidtube/pkg/queue"
)

type SubscriptionUseCase interface {
	ToggleSubscription(subscriberID, channelID string) (bool, error)
	GetChannelSubscribers(channelID string, page pagination.Request) (pagination.Page[*entity.SubscriberView], error)
	GetSubscribedChannels(subscriberID string, page pagination.Request) (pagination.Page[*entity.ChannelSummary], error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	queueClient      *queue.Client
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		queueClient:      queueClient,
		logger:           logger,
	}
}

func (uc *subscriptionUseCase) ToggleSubscription(subscriberID, channelID string) (bool, error) {
	if err := validateID(channelID); err != nil {
		return false, err
	}
	// A channel cannot subscribe to itself.
	if subscriberID == channelID {
		return false, entity.ErrForbidden
	}

	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return false, err
	}

	subscribed, err := uc.subscriptionRepo.Toggle(subscriberID, channelID)
	if err != nil {
		return false, err
	}

	if subscribed && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":          "subscription",
				"user_id":       channelID,
				"subscriber_id": subscriberID,
				"priority":      3,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish subscription notification: %v", err)
			}
		}()
	}
	return subscribed, nil
}

func (uc *subscriptionUseCase) GetChannelSubscribers(channelID string, page pagination.Request) (pagination.Page[*entity.SubscriberView], error) {
	if err := validateID(channelID); err != nil {
		return pagination.Page[*entity.SubscriberView]{}, err
	}
	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return pagination.Page[*entity.SubscriberView]{}, err
	}

	subscribers, total, err := uc.subscriptionRepo.ListSubscribers(channelID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.SubscriberView]{}, err
	}
	return pagination.NewPage(subscribers, total, page), nil
}

func (uc *subscriptionUseCase) GetSubscribedChannels(subscriberID string, page pagination.Request) (pagination.Page[*entity.ChannelSummary], error) {
	if err := validateID(subscriberID); err != nil {
		return pagination.Page[*entity.ChannelSummary]{}, err
	}

	channels, total, err := uc.subscriptionRepo.ListSubscribedChannels(subscriberID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.ChannelSummary]{}, err
	}
	return pagination.NewPage(channels, total, page), nil
}
