package http

import (
	"github.com/gdugdh24/pairly-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/pairly-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	userHandler    *handler.UserHandler
	promptHandler  *handler.PromptHandler
	feedHandler    *handler.FeedHandler
	matchHandler   *handler.MatchHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	userHandler *handler.UserHandler,
	promptHandler *handler.PromptHandler,
	feedHandler *handler.FeedHandler,
	matchHandler *handler.MatchHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		userHandler:    userHandler,
		promptHandler:  promptHandler,
		feedHandler:    feedHandler,
		matchHandler:   matchHandler,
		healthHandler:  healthHandler,
		authMiddleware: authMiddleware,
		allowedOrigins: allowedOrigins,
	}
}

func (r *Router) Setup() *gin.Engine {
	handler.UseJSONFieldNames()

	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.CORS(r.allowedOrigins))

	// Health check (supports both GET and HEAD)
	router.GET("/health", r.healthHandler.Live)
	router.HEAD("/health", r.healthHandler.Live)
	router.GET("/health/ready", r.healthHandler.Ready)

	// Auth routes (public)
	auth := router.Group("/auth")
	{
		auth.POST("/phone/login", r.authHandler.PhoneLogin)
		auth.POST("/phone/verify", r.authHandler.PhoneVerify)
		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}

	// Protected routes
	protected := router.Group("")
	protected.Use(r.authMiddleware.RequireAuth())
	{
		// Profile routes
		profile := protected.Group("/profile")
		{
			profile.GET("/me", r.profileHandler.GetMyProfile)
			profile.POST("", r.profileHandler.UpsertProfile)
			profile.DELETE("", r.profileHandler.DeleteAccount)
			profile.POST("/images", r.profileHandler.UploadImage)
			profile.DELETE("/images/:order", r.profileHandler.DeleteImage)
			profile.POST("/finalize", r.profileHandler.Finalize)
		}

		// User settings
		user := protected.Group("/user")
		{
			user.GET("/preferences", r.userHandler.GetPreferences)
			user.POST("/preferences", r.userHandler.SetPreferences)
			user.PUT("/email", r.userHandler.UpdateEmail)
		}

		// Prompt routes
		prompts := protected.Group("/prompts")
		{
			prompts.GET("", r.promptHandler.List)
			prompts.POST("", r.promptHandler.Create)
			prompts.PUT("/:order", r.promptHandler.Update)
			prompts.DELETE("/:order", r.promptHandler.Delete)
		}

		// Feed and interactions
		protected.GET("/feed", r.feedHandler.GetFeed)
		protected.POST("/interact", r.feedHandler.Interact)

		// Match routes
		matches := protected.Group("/matches")
		{
			matches.GET("", r.matchHandler.ListMatches)
			matches.GET("/:id/messages", r.matchHandler.GetMessages)
			matches.POST("/:id/messages", r.matchHandler.SendMessage)
			matches.POST("/:id/read", r.matchHandler.MarkRead)
		}
	}

	return router
}
