package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atomdellow/gamingblocksite/internal/config"
	"github.com/atomdellow/gamingblocksite/internal/database"
	"github.com/atomdellow/gamingblocksite/internal/handlers"
	"github.com/atomdellow/gamingblocksite/internal/middleware"
)

type Server struct {
	cfg     *config.Config
	db      database.Service
	handler *handlers.Handler
}

// New creates a server over an already-connected database.
func New(cfg *config.Config, db database.Service) *Server {
	return &Server{
		cfg:     cfg,
		db:      db,
		handler: handlers.NewHandler(db.DB(), cfg),
	}
}

// HTTPServer builds the http.Server with the full route table attached.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.ServerPort,
		Handler:      s.RegisterRoutes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check and metrics endpoints
	r.GET("/health", func(c *gin.Context) {
		stats := s.db.Health(c.Request.Context())
		status := http.StatusOK
		if stats["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, stats)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secret := []byte(s.cfg.JWTSecret)

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.handler.Auth.Register)
			auth.POST("/login", s.handler.Auth.Login)
			auth.GET("/me", middleware.RequireAuth(secret), s.handler.Auth.GetMe)
			auth.GET("/logout", s.handler.Auth.Logout)
		}

		// Public reads; identity is honored when a token is presented so
		// authors and admins see their unpublished posts
		public := api.Group("", middleware.OptionalAuth(secret))
		{
			public.GET("/posts", s.handler.Post.GetPosts)
			public.GET("/posts/:id", s.handler.Post.GetPost)
			public.GET("/posts/:id/comments", s.handler.Comment.GetComments)
			public.GET("/categories", s.handler.Category.GetCategories)
			public.GET("/categories/:id", s.handler.Category.GetCategory)
		}

		// Protected routes (authentication required)
		protected := api.Group("", middleware.RequireAuth(secret))
		{
			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)
			protected.PUT("/posts/:id/like", s.handler.Post.ToggleLike)

			protected.POST("/posts/:id/comments", s.handler.Comment.CreateComment)
			protected.PUT("/comments/:id", s.handler.Comment.UpdateComment)
			protected.DELETE("/comments/:id", s.handler.Comment.DeleteComment)

			protected.POST("/categories", s.handler.Category.CreateCategory)
			protected.PUT("/categories/:id", s.handler.Category.UpdateCategory)
			protected.DELETE("/categories/:id", s.handler.Category.DeleteCategory)
		}
	}

	return r
}
