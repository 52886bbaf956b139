package server

import (
	"ctchen222/tictactoe-minimax/internal/api/controller"
	appvalidator "ctchen222/tictactoe-minimax/internal/validator"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

var tracer = otel.Tracer("server")

type Server struct {
	engine *gin.Engine
	logger *slog.Logger
}

// NewServer builds the gin engine and registers every route.
func NewServer(logger *slog.Logger, boardController *controller.BoardController) (*Server, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := appvalidator.RegisterValidations(v); err != nil {
			return nil, fmt.Errorf("failed to register validations: %w", err)
		}
	}

	s := &Server{
		engine: gin.New(),
		logger: logger.With("component", "server"),
	}
	s.engine.Use(gin.Recovery(), s.requestMiddleware())
	s.registerHandlers(boardController)

	return s, nil
}

// Engine exposes the router as an http.Handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHandlers(boardController *controller.BoardController) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	board := s.engine.Group("/api/v1/board")
	board.GET("/initial", boardController.Initial)
	board.POST("/analyze", boardController.Analyze)
	board.POST("/apply", boardController.Apply)
	board.POST("/minimax", boardController.Minimax)
}

// requestMiddleware tags every request with an ID, wraps it in a span and logs it.
func (s *Server) requestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(requestIDHeader, requestID)

		ctx, span := tracer.Start(c.Request.Context(), "server."+c.Request.Method+" "+c.FullPath(), trace.WithAttributes(
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.method", c.Request.Method),
			attribute.String("request.id", requestID),
		))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		s.logger.InfoContext(ctx, "request handled",
			"request.id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		)
	}
}
