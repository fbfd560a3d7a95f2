package handlers

import (
	"errors"
	"net/http"
	"strings"

	"vrmhub/internal/models"
	"vrmhub/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const contextUserKey = "user"

// abortUnauthorized writes the 401 contract: a detail body plus the
// WWW-Authenticate challenge header.
func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}

// AuthRequired validates the bearer token and resolves it to a persisted
// user. A valid token whose user no longer exists is rejected.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		email, err := h.tokenService.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		var user models.User
		if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(c, "Could not validate credentials")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// currentUser returns the user resolved by AuthRequired.
func currentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(contextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
