package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	vidtubeHTTP "vidtube/internal/controller/http"
	"vidtube/internal/repo/persistent"
	"vidtube/internal/usecase"
	"vidtube/pkg/config"
	"vidtube/pkg/jwt"
	"vidtube/pkg/logger"
	"vidtube/pkg/middleware"
	"vidtube/pkg/queue"
	"vidtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, s3Client, redisClient, queueClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, queueClient, log)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo, userRepo)
	likeUseCase := usecase.NewLikeUseCase(likeRepo, videoRepo, commentRepo, tweetRepo, queueClient, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, queueClient, log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo, userRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, videoRepo)

	// Initialize HTTP handlers
	authHandler := vidtubeHTTP.NewAuthHandler(authUseCase, log)
	videoHandler := vidtubeHTTP.NewVideoHandler(videoUseCase, log)
	commentHandler := vidtubeHTTP.NewCommentHandler(commentUseCase, log)
	tweetHandler := vidtubeHTTP.NewTweetHandler(tweetUseCase, log)
	likeHandler := vidtubeHTTP.NewLikeHandler(likeUseCase, log)
	subscriptionHandler := vidtubeHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	playlistHandler := vidtubeHTTP.NewPlaylistHandler(playlistUseCase, log)
	dashboardHandler := vidtubeHTTP.NewDashboardHandler(dashboardUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Open endpoints
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Public reads resolve the viewer when a token is present so per-viewer
	// fields (is_liked, is_subscribed) can be filled in.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.GET("/videos", videoHandler.ListVideos)
		public.GET("/videos/:id", videoHandler.GetVideo)
		public.GET("/videos/:id/comments", commentHandler.GetVideoComments)
		public.GET("/users/channel/:username", authHandler.GetChannelProfile)
		public.GET("/tweets/user/:user_id", tweetHandler.GetUserTweets)
		public.GET("/subscriptions/:channel_id/subscribers", subscriptionHandler.GetChannelSubscribers)
		public.GET("/subscriptions/user/:subscriber_id", subscriptionHandler.GetSubscribedChannels)
		public.GET("/playlists/:id", playlistHandler.GetPlaylist)
		public.GET("/playlists/user/:user_id", playlistHandler.GetUserPlaylists)
	}

	// Authenticated endpoints
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		protected.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.PUT("/auth/password", authHandler.ChangePassword)
		protected.PATCH("/users/avatar", authHandler.UpdateAvatar)
		protected.PATCH("/users/cover", authHandler.UpdateCover)

		protected.POST("/videos", videoHandler.PublishVideo)
		protected.PATCH("/videos/:id", videoHandler.UpdateVideo)
		protected.DELETE("/videos/:id", videoHandler.DeleteVideo)
		protected.PATCH("/videos/:id/toggle-publish", videoHandler.TogglePublishStatus)
		protected.GET("/videos/history", videoHandler.GetWatchHistory)

		protected.POST("/videos/:id/comments", commentHandler.AddComment)
		protected.PATCH("/comments/:id", commentHandler.UpdateComment)
		protected.DELETE("/comments/:id", commentHandler.DeleteComment)

		protected.POST("/tweets", tweetHandler.CreateTweet)
		protected.PATCH("/tweets/:id", tweetHandler.UpdateTweet)
		protected.DELETE("/tweets/:id", tweetHandler.DeleteTweet)

		protected.POST("/likes/video/:id", likeHandler.ToggleVideoLike)
		protected.POST("/likes/comment/:id", likeHandler.ToggleCommentLike)
		protected.POST("/likes/tweet/:id", likeHandler.ToggleTweetLike)
		protected.GET("/likes/videos", likeHandler.GetLikedVideos)

		protected.POST("/subscriptions/:channel_id", subscriptionHandler.ToggleSubscription)

		protected.POST("/playlists", playlistHandler.CreatePlaylist)
		protected.PATCH("/playlists/:id", playlistHandler.UpdatePlaylist)
		protected.DELETE("/playlists/:id", playlistHandler.DeletePlaylist)
		protected.POST("/playlists/:id/videos/:video_id", playlistHandler.AddVideoToPlaylist)
		protected.DELETE("/playlists/:id/videos/:video_id", playlistHandler.RemoveVideoFromPlaylist)

		protected.GET("/dashboard/stats", dashboardHandler.GetChannelStats)
		protected.GET("/dashboard/videos", dashboardHandler.GetChannelVideos)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("vidtube starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down vidtube...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("vidtube exited")
}
