package usecase

import (
	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetView(id, viewerID string) (*entity.VideoView, error) {
	args := m.Called(id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoView), args.Error(1)
}

func (m *MockVideoRepository) List(q persistent.ListVideosQuery) ([]*entity.VideoView, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.VideoView), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) ListLikedBy(userID string, limit, offset int) ([]*entity.VideoView, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.VideoView), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) ListWatchHistory(userID string, limit, offset int) ([]*entity.VideoView, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.VideoView), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteDependents(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) RecordWatch(userID, videoID string) error {
	args := m.Called(userID, videoID)
	return args.Error(0)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockLikeRepository is a mock implementation of persistent.LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(userID string, kind entity.LikeTarget, targetID string) (bool, error) {
	args := m.Called(userID, kind, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Count(kind entity.LikeTarget, targetID string) (int64, error) {
	args := m.Called(kind, targetID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.LikeRepository = (*MockLikeRepository)(nil)

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id string) (*entity.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(videoID, viewerID string, limit, offset int) ([]*entity.CommentView, int64, error) {
	args := m.Called(videoID, viewerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.CommentView), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteWithLikes(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.CommentRepository = (*MockCommentRepository)(nil)

// MockTweetRepository is a mock implementation of persistent.TweetRepository
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(tweet *entity.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) GetByID(id string) (*entity.Tweet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ownerID, viewerID string, limit, offset int) ([]*entity.TweetView, int64, error) {
	args := m.Called(ownerID, viewerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.TweetView), args.Get(1).(int64), args.Error(2)
}

func (m *MockTweetRepository) Update(tweet *entity.Tweet) error {
	args := m.Called(tweet)
	return args.Error(0)
}

func (m *MockTweetRepository) DeleteWithLikes(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.TweetRepository = (*MockTweetRepository)(nil)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	args := m.Called(username, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) GetChannelStats(ownerID string) (*entity.ChannelStats, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelStats), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) IsSubscribed(subscriberID, channelID string) (bool, error) {
	args := m.Called(subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(channelID string, limit, offset int) ([]*entity.SubscriberView, int64, error) {
	args := m.Called(channelID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.SubscriberView), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(subscriberID string, limit, offset int) ([]*entity.ChannelSummary, int64, error) {
	args := m.Called(subscriberID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.ChannelSummary), args.Get(1).(int64), args.Error(2)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockPlaylistRepository is a mock implementation of persistent.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(id string) (*entity.Playlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetView(id, viewerID string) (*entity.PlaylistView, error) {
	args := m.Called(id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistView), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ownerID string, limit, offset int) ([]*entity.PlaylistView, int64, error) {
	args := m.Called(ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.PlaylistView), args.Get(1).(int64), args.Error(2)
}

func (m *MockPlaylistRepository) Update(playlist *entity.Playlist) error {
	args := m.Called(playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) DeleteWithItems(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) AddVideo(playlistID, videoID string) error {
	args := m.Called(playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(playlistID, videoID string) error {
	args := m.Called(playlistID, videoID)
	return args.Error(0)
}

var _ persistent.PlaylistRepository = (*MockPlaylistRepository)(nil)
