package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

type resetRequest struct {
	Player int    `json:"player"`
	Seed   uint64 `json:"seed"`
	Board  string `json:"board"`
}

type resetResponse struct {
	MatchID string `json:"match_id"`
}

type turnRequest struct {
	Player int    `json:"player"`
	Board  string `json:"board"`
}

type turnResponse struct {
	Move entity.Move `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

func (that *Server) createMatch(ctx echo.Context) error {
	return that.reset(ctx, "")
}

func (that *Server) resetMatch(ctx echo.Context) error {
	return that.reset(ctx, ctx.Param("id"))
}

func (that *Server) reset(ctx echo.Context, matchID string) error {
	log := that.logger.With("method", "reset")

	var req resetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: apperror.ErrPayloadMalformed.Error()})
	}

	matchID, err := that.matches.Reset(ctx.Request().Context(), matchID, req.Player, req.Seed, req.Board)
	if err != nil {
		log.Error("failed to reset bot", "error", err)
		return that.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resetResponse{MatchID: matchID})
}

func (that *Server) turn(ctx echo.Context) error {
	log := that.logger.With("method", "turn")

	var req turnRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: apperror.ErrPayloadMalformed.Error()})
	}

	move, err := that.matches.Turn(ctx.Request().Context(), ctx.Param("id"), req.Player, req.Board)
	if err != nil {
		log.Error("failed to make turn", "error", err)
		return that.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, turnResponse{Move: move})
}

// snapshot answers with the board in its text form.
func (that *Server) snapshot(ctx echo.Context) error {
	state, err := that.matches.Snapshot(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, err)
	}

	return ctx.String(http.StatusOK, state.String())
}

func (that *Server) history(ctx echo.Context) error {
	records, err := that.matches.History(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, records)
}

func (that *Server) finish(ctx echo.Context) error {
	if err := that.matches.Finish(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *Server) fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrParse),
		errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrMatchIDRequired):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrMatchNotFound),
		errors.Is(err, apperror.ErrPlannerNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
