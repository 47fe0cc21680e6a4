package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"ripple/internal/config"
	"ripple/internal/database"
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	followRepo   repository.FollowRepository
	likeRepo     repository.LikeRepository
	hashtagRepo  repository.HashtagRepository
	activityRepo repository.ActivityRepository

	userService     *service.UserService
	postService     *service.PostService
	followService   *service.FollowService
	likeService     *service.LikeService
	hashtagService  *service.HashtagService
	feedService     *service.FeedService
	activityService *service.ActivityService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db)
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this when a bootstrap layer establishes the DB and optionally performs
// explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	return newServer(cfg, db, middleware.InitMetrics("ripple-api"))
}

// newServer wires repositories and services. Prometheus middleware is passed
// in so tests can omit it; the collectors register globally and cannot be
// registered twice.
func newServer(cfg *config.Config, db *gorm.DB, prom *fiberprometheus.FiberPrometheus) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: prom,
		userRepo:       repository.NewUserRepository(db),
		postRepo:       repository.NewPostRepository(db),
		followRepo:     repository.NewFollowRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		hashtagRepo:    repository.NewHashtagRepository(db),
		activityRepo:   repository.NewActivityRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo, server.followRepo)
	server.postService = service.NewPostService(server.postRepo, server.userRepo)
	server.followService = service.NewFollowService(server.followRepo, server.userRepo)
	server.likeService = service.NewLikeService(server.likeRepo, server.userRepo, server.postRepo)
	server.hashtagService = service.NewHashtagService(server.hashtagRepo, server.postRepo)
	server.feedService = service.NewFeedService(server.userRepo, server.followRepo, server.postRepo)
	server.activityService = service.NewActivityService(server.userRepo, server.activityRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// User routes. Specific /:id/:resource routes go BEFORE the generic /:id.
	users := app.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", s.CreateUser)
	users.Get("/:id/followers", s.GetUserFollowers)
	users.Get("/:id/activity", s.GetUserActivity)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	// Post routes
	posts := app.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Get("/hashtag/:tag", s.GetPostsByHashtag)
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)

	// Follow routes. /unfollow retires the active edge; DELETE /:id is a
	// hard delete of one row by surrogate id.
	follows := app.Group("/follows")
	follows.Get("/", s.GetFollows)
	follows.Post("/", s.CreateFollow)
	follows.Post("/unfollow", s.UnfollowUser)
	follows.Get("/:id", s.GetFollow)
	follows.Delete("/:id", s.DeleteFollow)

	// Like routes
	likes := app.Group("/likes")
	likes.Get("/", s.GetLikes)
	likes.Post("/", s.CreateLike)
	likes.Delete("/unlike", s.UnlikePost)
	likes.Get("/:id", s.GetLike)
	likes.Delete("/:id", s.DeleteLike)

	// Hashtag routes
	hashtags := app.Group("/hashtags")
	hashtags.Get("/", s.GetHashtags)
	hashtags.Post("/", s.CreateHashtag)
	hashtags.Get("/:id", s.GetHashtag)
	hashtags.Put("/:id", s.UpdateHashtag)
	hashtags.Delete("/:id", s.DeleteHashtag)

	// Post-hashtag association routes
	postHashtags := app.Group("/post-hashtags")
	postHashtags.Get("/", s.GetPostHashtags)
	postHashtags.Post("/", s.CreatePostHashtag)
	postHashtags.Delete("/remove", s.RemoveHashtagFromPost)
	postHashtags.Get("/:id", s.GetPostHashtag)
	postHashtags.Delete("/:id", s.DeletePostHashtag)

	// Feed
	app.Get("/feed", s.GetFeed)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Ripple API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
