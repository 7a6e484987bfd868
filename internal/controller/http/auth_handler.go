package http

import (
	"mime/multipart"
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type RegisterRequest struct {
	Username string `form:"username" binding:"required,min=3,max=30"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"full_name" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account with optional avatar and cover images
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        username formData string true "Username"
// @Param        email formData string true "Email"
// @Param        full_name formData string true "Full name"
// @Param        password formData string true "Password (min 8 chars)"
// @Param        avatar formData file false "Avatar image"
// @Param        cover formData file false "Cover image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}

	if file, header, err := openFormFile(c, "avatar"); err == nil {
		defer file.Close()
		input.Avatar = file
		input.AvatarContentType = header.Header.Get("Content-Type")
	}
	if file, header, err := openFormFile(c, "cover"); err == nil {
		defer file.Close()
		input.Cover = file
		input.CoverContentType = header.Header.Get("Content-Type")
	}

	user, token, err := h.authUseCase.Register(input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with a username or email plus password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authUseCase.Login(req.Identifier, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// GetCurrentUser godoc
// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authUseCase.GetUser(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "Old and new passwords"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUseCase.ChangePassword(c.GetString("user_id"), req.OldPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// GetChannelProfile godoc
// @Summary      Get channel profile
// @Description  Public channel page for a username, with subscription facts for the viewer
// @Tags         users
// @Produce      json
// @Param        username path string true "Channel username"
// @Success      200  {object}  entity.ChannelProfile
// @Failure      404  {object}  map[string]string
// @Router       /users/channel/{username} [get]
func (h *AuthHandler) GetChannelProfile(c *gin.Context) {
	profile, err := h.authUseCase.GetChannelProfile(c.Param("username"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateAvatar godoc
// @Summary      Update avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/avatar [patch]
func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	file, header, err := openFormFile(c, "avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is required"})
		return
	}
	defer file.Close()

	user, err := h.authUseCase.UpdateAvatar(c.GetString("user_id"), file, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateCover godoc
// @Summary      Update cover image
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        cover formData file true "Cover image"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /users/cover [patch]
func (h *AuthHandler) UpdateCover(c *gin.Context) {
	file, header, err := openFormFile(c, "cover")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cover file is required"})
		return
	}
	defer file.Close()

	user, err := h.authUseCase.UpdateCover(c.GetString("user_id"), file, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func openFormFile(c *gin.Context, field string) (multipart.File, *multipart.FileHeader, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}
