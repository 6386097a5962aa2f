// Package server provides the easel HTTP service: a thin adapter that
// forwards chat transcripts to a chat-completion API and normalizes the
// structured chart data the model returns.
package server

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Server is the easel HTTP server. It is stateless across requests; the only
// shared values are the immutable prompt and tool schema constants and the
// injected completion client.
type Server struct {
	config    Config
	completer Completer
	logger    *zap.Logger
	app       *fiber.App
}

// New creates a new Server with its routes registered.
func New(config Config, completer Completer, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		// Disable startup message for cleaner logs
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		completer: completer,
		logger:    logger,
		app:       app,
	}

	app.Post("/api/chat", s.handleChatGraph)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})

	return s
}

// Run starts the server on the configured listening address and blocks.
func (s *Server) Run() error {
	s.logger.Info("starting easel server",
		zap.String("listen", s.config.ListenAddr),
		zap.String("base_url", s.config.BaseURL),
	)

	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
