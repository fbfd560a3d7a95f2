package handlers

import (
	"vrmhub/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string, uploadPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}
	if uploadPath != "" {
		r.Static("/uploads", uploadPath)
	}

	// Middleware
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		AllowCredentials: false,
	}))

	// Routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowIndex)
	r.POST("/token", h.Token)
	r.POST("/users/", h.RegisterUser)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/users/me/", h.Me)
		authorized.GET("/models/", h.ListModels)
		authorized.POST("/upload/", h.UploadModel)
		authorized.POST("/upload-background/", h.UploadBackground)
		authorized.GET("/backgrounds/", h.ListBackgrounds)
		authorized.DELETE("/backgrounds/:id", h.DeleteBackground)
	}

	return r
}
