package usecase

import (
	"fmt"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/pagination"
)

type PlaylistUseCase interface {
	CreatePlaylist(ownerID, name, description string) (*entity.Playlist, error)
	GetPlaylist(playlistID, viewerID string) (*entity.PlaylistView, error)
	GetUserPlaylists(ownerID string, page pagination.Request) (pagination.Page[*entity.PlaylistView], error)
	UpdatePlaylist(actorID, playlistID, name, description string) (*entity.Playlist, error)
	DeletePlaylist(actorID, playlistID string) error
	AddVideoToPlaylist(actorID, playlistID, videoID string) error
	RemoveVideoFromPlaylist(actorID, playlistID, videoID string) error
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

func (uc *playlistUseCase) CreatePlaylist(ownerID, name, description string) (*entity.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrInvalidReference
	}

	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) GetPlaylist(playlistID, viewerID string) (*entity.PlaylistView, error) {
	if err := validateID(playlistID); err != nil {
		return nil, err
	}
	return uc.playlistRepo.GetView(playlistID, viewerID)
}

func (uc *playlistUseCase) GetUserPlaylists(ownerID string, page pagination.Request) (pagination.Page[*entity.PlaylistView], error) {
	if err := validateID(ownerID); err != nil {
		return pagination.Page[*entity.PlaylistView]{}, err
	}
	if _, err := uc.userRepo.GetByID(ownerID); err != nil {
		return pagination.Page[*entity.PlaylistView]{}, err
	}

	playlists, total, err := uc.playlistRepo.ListByOwner(ownerID, page.Limit, page.Offset())
	if err != nil {
		return pagination.Page[*entity.PlaylistView]{}, err
	}
	return pagination.NewPage(playlists, total, page), nil
}

func (uc *playlistUseCase) UpdatePlaylist(actorID, playlistID, name, description string) (*entity.Playlist, error) {
	if err := validateID(playlistID); err != nil {
		return nil, err
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(actorID, playlist.OwnerID); err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	if err := uc.playlistRepo.Update(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist removes the playlist and its membership rows. The videos
// themselves are untouched.
func (uc *playlistUseCase) DeletePlaylist(actorID, playlistID string) error {
	if err := validateID(playlistID); err != nil {
		return err
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, playlist.OwnerID); err != nil {
		return err
	}

	if err := uc.playlistRepo.DeleteWithItems(playlistID); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrCascadeFailed, err)
	}
	return nil
}

func (uc *playlistUseCase) AddVideoToPlaylist(actorID, playlistID, videoID string) error {
	if err := validateID(playlistID); err != nil {
		return err
	}
	if err := validateID(videoID); err != nil {
		return err
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, playlist.OwnerID); err != nil {
		return err
	}
	if _, err := uc.videoRepo.GetByID(videoID); err != nil {
		return err
	}

	return uc.playlistRepo.AddVideo(playlistID, videoID)
}

func (uc *playlistUseCase) RemoveVideoFromPlaylist(actorID, playlistID, videoID string) error {
	if err := validateID(playlistID); err != nil {
		return err
	}
	if err := validateID(videoID); err != nil {
		return err
	}

	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(actorID, playlist.OwnerID); err != nil {
		return err
	}

	return uc.playlistRepo.RemoveVideo(playlistID, videoID)
}
