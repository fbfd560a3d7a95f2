package handlers

import (
	"errors"
	"net/http"

	"vrmhub/internal/models"
	"vrmhub/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginForm follows the OAuth2 password-grant form shape the frontend
// already speaks: the username field carries the email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var existing models.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error("Failed to check existing user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		h.logger.Error("Failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	h.auditService.LogAction(&user.ID, "REGISTER", user.Email, nil, c.ClientIP())

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *Handler) Token(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var user models.User
	err := h.db.Where("email = ?", form.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortUnauthorized(c, "Incorrect username or password")
			return
		}
		h.logger.Error("Failed to fetch user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	if !utils.CheckPasswordHash(form.Password, user.PasswordHash) {
		abortUnauthorized(c, "Incorrect username or password")
		return
	}

	token, err := h.tokenService.Issue(user.Email)
	if err != nil {
		h.logger.Error("Failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	h.auditService.LogAction(&user.ID, "LOGIN", user.Email, nil, c.ClientIP())

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c, "Not authenticated")
		return
	}

	if err := h.db.Preload("Models.Animations").First(&user, user.ID).Error; err != nil {
		h.logger.Error("Failed to load user models", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
