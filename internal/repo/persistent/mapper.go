package persistent

import (
	"vidtube/internal/entity"
	"vidtube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FullName:  m.FullName,
		Password:  m.Password,
		AvatarURL: m.AvatarURL,
		AvatarKey: m.AvatarKey,
		CoverURL:  m.CoverURL,
		CoverKey:  m.CoverKey,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FullName:  e.FullName,
		Password:  e.Password,
		AvatarURL: e.AvatarURL,
		AvatarKey: e.AvatarKey,
		CoverURL:  e.CoverURL,
		CoverKey:  e.CoverKey,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		Description:  m.Description,
		Duration:     m.Duration,
		Views:        m.Views,
		IsPublished:  m.IsPublished,
		VideoURL:     m.VideoURL,
		VideoKey:     m.VideoKey,
		ThumbnailURL: m.ThumbnailURL,
		ThumbnailKey: m.ThumbnailKey,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Title:        e.Title,
		Description:  e.Description,
		Duration:     e.Duration,
		Views:        e.Views,
		IsPublished:  e.IsPublished,
		VideoURL:     e.VideoURL,
		VideoKey:     e.VideoKey,
		ThumbnailURL: e.ThumbnailURL,
		ThumbnailKey: e.ThumbnailKey,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		VideoID:   m.VideoID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		VideoID:   e.VideoID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTweetEntity(m *model.TweetModel) *entity.Tweet {
	if m == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTweetModel(e *entity.Tweet) *model.TweetModel {
	if e == nil {
		return nil
	}

	return &model.TweetModel{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	return &entity.Playlist{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPlaylistModel(e *entity.Playlist) *model.PlaylistModel {
	if e == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
