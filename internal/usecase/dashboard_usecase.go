package usecase

import (
	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/pagination"
)

type DashboardUseCase interface {
	GetChannelStats(ownerID string) (*entity.ChannelStats, error)
	GetChannelVideos(ownerID string, page pagination.Request) (pagination.Page[*entity.VideoView], error)
}

type dashboardUseCase struct {
	userRepo  persistent.UserRepository
	videoRepo persistent.VideoRepository
}

func NewDashboardUseCase(userRepo persistent.UserRepository, videoRepo persistent.VideoRepository) DashboardUseCase {
	return &dashboardUseCase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
	}
}

func (uc *dashboardUseCase) GetChannelStats(ownerID string) (*entity.ChannelStats, error) {
	if err := validateID(ownerID); err != nil {
		return nil, err
	}
	return uc.userRepo.GetChannelStats(ownerID)
}

// GetChannelVideos lists the owner's videos including unpublished ones, which
// the repository allows because the owner is also the viewer.
func (uc *dashboardUseCase) GetChannelVideos(ownerID string, page pagination.Request) (pagination.Page[*entity.VideoView], error) {
	if err := validateID(ownerID); err != nil {
		return pagination.Page[*entity.VideoView]{}, err
	}

	videos, total, err := uc.videoRepo.List(persistent.ListVideosQuery{
		ViewerID: ownerID,
		OwnerID:  ownerID,
		SortBy:   entity.SortByCreatedAt,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	})
	if err != nil {
		return pagination.Page[*entity.VideoView]{}, err
	}
	return pagination.NewPage(videos, total, page), nil
}
