package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type matchManager interface {
	Reset(ctx context.Context, matchID string, player int, seed uint64, board string) (string, error)
	Turn(ctx context.Context, matchID string, player int, board string) (entity.Move, error)
	Finish(ctx context.Context, matchID string) error
}

type handler func(ctx context.Context, payload *Payload) (*ResponsePayload, error)

type Server struct {
	logger   *slog.Logger
	matches  matchManager
	upgrader websocket.Upgrader

	handlers map[string]handler
}

func New(logger *slog.Logger, matches matchManager) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		matches: matches,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handler),
	}

	server.handlers[actionReset] = server.handleReset
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionFinish] = server.handleFinish

	return server
}

// Start - starts WebSocket server, it stops when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.ServeWS)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS - upgrades the connection to WebSocket and serves it until the client leaves.
func (that *Server) ServeWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client, one answer per request.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Info("client disconnected")
				return nil
			}

			var (
				syntaxErr *json.SyntaxError
				typeErr   *json.UnmarshalTypeError
			)
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				if err = that.sendMessage(conn, actionError, &ResponsePayload{Error: err.Error()}); err != nil {
					return err
				}
				continue
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		response, err := that.dispatch(ctx, &message)
		if err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
			response = &ResponsePayload{Error: err.Error()}
		}

		if err = that.sendMessage(conn, message.Action, response); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) (*ResponsePayload, error) {
	handle, ok := that.handlers[message.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action)
	}

	var payload Payload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrPayloadMalformed, err)
	}

	return handle(ctx, &payload)
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload *ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
