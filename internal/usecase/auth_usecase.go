package usecase

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"vidtube/internal/entity"
	"vidtube/internal/repo/persistent"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/s3"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username          string
	Email             string
	FullName          string
	Password          string
	Avatar            io.Reader
	AvatarContentType string
	Cover             io.Reader
	CoverContentType  string
}

type AuthUseCase interface {
	Register(input RegisterInput) (*entity.User, string, error)
	Login(identifier, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	ChangePassword(userID, oldPassword, newPassword string) error
	GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error)
	UpdateAvatar(userID string, avatar io.Reader, contentType string) (*entity.User, error)
	UpdateCover(userID string, cover io.Reader, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(input RegisterInput) (*entity.User, string, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return nil, "", entity.ErrInvalidReference
	}

	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, "", entity.ErrConflict
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, "", err
	}
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", entity.ErrConflict
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		FullName: input.FullName,
		Password: string(hash),
	}

	if input.Avatar != nil {
		key := fmt.Sprintf("avatars/%s", uuid.New().String())
		url, err := uc.s3Client.UploadFile(key, input.Avatar, input.AvatarContentType)
		if err != nil {
			return nil, "", fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarURL = url
		user.AvatarKey = key
	}
	if input.Cover != nil {
		key := fmt.Sprintf("covers/%s", uuid.New().String())
		url, err := uc.s3Client.UploadFile(key, input.Cover, input.CoverContentType)
		if err != nil {
			uc.releaseAsset(user.AvatarKey)
			return nil, "", fmt.Errorf("failed to upload cover image: %w", err)
		}
		user.CoverURL = url
		user.CoverKey = key
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.releaseAsset(user.AvatarKey)
		uc.releaseAsset(user.CoverKey)
		return nil, "", err
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login accepts either a username or an email as the identifier.
func (uc *authUseCase) Login(identifier, password string) (*entity.User, string, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return nil, "", entity.ErrInvalidReference
	}

	user, err := uc.userRepo.GetByUsername(identifier)
	if errors.Is(err, entity.ErrNotFound) {
		user, err = uc.userRepo.GetByEmail(identifier)
	}
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrForbidden
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrForbidden
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(userID)
}

func (uc *authUseCase) ChangePassword(userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return entity.ErrInvalidReference
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return entity.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)
	return uc.userRepo.Update(user)
}

func (uc *authUseCase) GetChannelProfile(username, viewerID string) (*entity.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, entity.ErrInvalidReference
	}
	return uc.userRepo.GetChannelProfile(username, viewerID)
}

func (uc *authUseCase) UpdateAvatar(userID string, avatar io.Reader, contentType string) (*entity.User, error) {
	if avatar == nil {
		return nil, entity.ErrInvalidReference
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/%s", uuid.New().String())
	url, err := uc.s3Client.UploadFile(key, avatar, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	oldKey := user.AvatarKey
	user.AvatarURL = url
	user.AvatarKey = key
	if err := uc.userRepo.Update(user); err != nil {
		uc.releaseAsset(key)
		return nil, err
	}
	uc.releaseAsset(oldKey)
	return user, nil
}

func (uc *authUseCase) UpdateCover(userID string, cover io.Reader, contentType string) (*entity.User, error) {
	if cover == nil {
		return nil, entity.ErrInvalidReference
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("covers/%s", uuid.New().String())
	url, err := uc.s3Client.UploadFile(key, cover, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cover image: %w", err)
	}

	oldKey := user.CoverKey
	user.CoverURL = url
	user.CoverKey = key
	if err := uc.userRepo.Update(user); err != nil {
		uc.releaseAsset(key)
		return nil, err
	}
	uc.releaseAsset(oldKey)
	return user, nil
}

func (uc *authUseCase) releaseAsset(key string) {
	if key == "" || uc.s3Client == nil {
		return
	}
	if err := uc.s3Client.DeleteFile(key); err != nil {
		uc.logger.Warn("Failed to delete stored object %s: %v", key, err)
	}
}
