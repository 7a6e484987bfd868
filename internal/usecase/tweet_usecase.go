package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/pagination"
)

type TweetUseCase interface {
	CreateTweet(userID, content string) (*entity.Tweet, error)
	GetUserTweets(ownerID, viewerID string, page pagination.Request) (pagination.Page[*entity.TweetView], error)
	UpdateTweet(actorID, tweetID, content string) (*entity.Tweet, error)
	DeleteTweet(actorID, tweetID string) error
}

type tweetUseCase struct {
	tweetRepo persistent.TweetRepository
	userRepo  persistent.UserRepository
}

func NewTweetUseCase(tweetRepo persistent.TweetRepository, userRepo persistent.UserRepository) TweetUseCase {
	return &tweetUseCase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
	}
}

func (uc *tweetUseCase) CreateTweet(userID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrInvalidReference
	}

	tweet := &entity.Tweet{
		OwnerID: userID,
		Content: content,
	}
	if err := uc.tweetRepo.Create(tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) GetUserTweets(ownerID, viewerID string, page pagination.Request) (pagination.Page[*entity.TweetView], error) {
	if err := validateID(ownerID); err != nil {
		return pagination.Page[*entity.TweetView]{}, err
	}
	if _, err := uc.userRepo.GetByID(ownerID); err != nil {
		return pagination.Page[*entity.TweetView]{}, err
	}

	tweets, total, err := uc.tweetRepo.ListByOwner(ownerID, viewerID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.TweetView]{}, err
	}
	return pagination.NewPage(tweets, total, page), nil
}

func (uc *tweetUseCase) UpdateTweet(actorID, tweetID, content string) (*entity.Tweet, error) {
	if err := validateID(tweetID); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, entity.ErrInvalidReference
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, tweet.OwnerID); err != nil {
		return nil, err
	}

	tweet.Content = content
	if err := uc.tweetRepo.Update(tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (uc *tweetUseCase) DeleteTweet(actorID, tweetID string) error {
	if err := validateID(tweetID); err != nil {
		return err
	}

	tweet, err := uc.tweetRepo.GetByID(tweetID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, tweet.OwnerID); err != nil {
		return err
	}

	if err := uc.tweetRepo.DeleteWithLikes(tweetID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrCascadeFailed, err)
	}
	return nil
}
