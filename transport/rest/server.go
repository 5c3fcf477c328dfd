package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type matchManager interface {
	Reset(ctx context.Context, matchID string, player int, seed uint64, board string) (string, error)
	Turn(ctx context.Context, matchID string, player int, board string) (entity.Move, error)
	Snapshot(ctx context.Context, matchID string) (*entity.GameState, error)
	History(ctx context.Context, matchID string) ([]entity.MoveRecord, error)
	Finish(ctx context.Context, matchID string) error
}

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo

	matches matchManager
}

func New(logger *slog.Logger, matches matchManager) *Server {
	server := &Server{
		logger:  logger.With("component", "rest"),
		echo:    echo.New(),
		matches: matches,
	}

	server.echo.HideBanner = true
	server.echo.HidePort = true
	server.echo.Server.ReadTimeout = 10 * time.Second
	server.echo.Server.WriteTimeout = 10 * time.Second
	server.echo.Server.IdleTimeout = 30 * time.Second

	server.routes()

	return server
}

func (that *Server) routes() {
	that.echo.GET("/ping", that.ping)

	matches := that.echo.Group("/matches")
	matches.POST("", that.createMatch)
	matches.POST("/:id/reset", that.resetMatch)
	matches.POST("/:id/turn", that.turn)
	matches.GET("/:id", that.snapshot)
	matches.GET("/:id/moves", that.history)
	matches.DELETE("/:id", that.finish)
}

// ServeHTTP lets the server be mounted or tested without a listener.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.echo.ServeHTTP(w, r)
}

// Start - starts HTTP server, it stops when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
