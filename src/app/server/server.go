// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/handler"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/ports"
	"ogiribattle/src/core/usecase"
	"ogiribattle/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler     *handler.HealthHandler
	userHandler       *handler.UserHandler
	promptHandler     *handler.PromptHandler
	jokeHandler       *handler.JokeHandler
	voteHandler       *handler.VoteHandler
	commentHandler    *handler.CommentHandler
	scoreboardHandler *handler.ScoreboardHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.GameRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, log)
	userService := usecase.NewUserService(repo, log)
	jokeService := usecase.NewJokeService(repo, log)
	promptService := usecase.NewPromptService(repo, jokeService, log)
	voteService := usecase.NewVoteService(repo, cfg.Scoring.VoteWeights(), log)
	commentService := usecase.NewCommentService(repo, log)
	scoreService := usecase.NewScoreService(repo, log)

	s := &Server{
		cfg:               cfg,
		log:               log,
		router:            router,
		healthHandler:     handler.NewHealthHandler(healthService),
		userHandler:       handler.NewUserHandler(userService),
		promptHandler:     handler.NewPromptHandler(promptService, cfg.Scoring.RecentPromptLimit),
		jokeHandler:       handler.NewJokeHandler(jokeService),
		voteHandler:       handler.NewVoteHandler(voteService),
		commentHandler:    handler.NewCommentHandler(commentService),
		scoreboardHandler: handler.NewScoreboardHandler(scoreService, cfg.Scoring.RecentPromptLimit),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Users
		v1.GET("/users", s.userHandler.List)
		v1.POST("/users", s.userHandler.Create)
		v1.GET("/users/:user_id", s.userHandler.Get)

		// Prompts
		v1.GET("/prompts", s.promptHandler.ListRecent)
		v1.GET("/prompts/all", s.promptHandler.ListAll)
		v1.GET("/prompts/:prompt_id", s.promptHandler.Get)
		v1.POST("/prompts/:prompt_id/tags", s.promptHandler.AddTag)
		v1.GET("/prompts/:prompt_id/jokes", s.jokeHandler.ListByPrompt)

		// Jokes
		v1.POST("/jokes", s.jokeHandler.Create)
		v1.GET("/jokes/popular", s.scoreboardHandler.Popular)
		v1.GET("/jokes/:joke_id/comments", s.commentHandler.ListByJoke)
		v1.POST("/jokes/:joke_id/comments", s.commentHandler.Create)

		// Votes
		v1.POST("/votes", s.voteHandler.Cast)

		// Scoreboard
		v1.GET("/scoreboard", s.scoreboardHandler.Scoreboard)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
