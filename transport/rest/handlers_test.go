package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/xcg-backend/internal/apperror"
	"github.com/rocketscienceinc/xcg-backend/internal/entity"
	mockedTransport "github.com/rocketscienceinc/xcg-backend/mocks/transport"
)

func newServer(t *testing.T) (*Server, *mockedTransport.MockmatchManager) {
	t.Helper()

	matches := mockedTransport.NewMockmatchManager(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return New(logger, matches), matches
}

func do(server *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	return rec
}

func TestServer_Ping(t *testing.T) {
	server, _ := newServer(t)

	rec := do(server, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_Reset(t *testing.T) {
	t.Run("New match", func(t *testing.T) {
		// Given: a manager that creates match m-1
		server, matches := newServer(t)

		matches.EXPECT().Reset(mock.Anything, "", 1, uint64(5), "*.*.").Return("m-1", nil).Once()

		// When: a match is created
		rec := do(server, http.MethodPost, "/matches", `{"player":1,"seed":5,"board":"*.*."}`)

		// Then: its id is returned
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"match_id":"m-1"}`, rec.Body.String())
	})

	t.Run("Existing match", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Reset(mock.Anything, "m-7", 0, uint64(0), "*. A").Return("m-7", nil).Once()

		rec := do(server, http.MethodPost, "/matches/m-7/reset", `{"board":"*. A"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"match_id":"m-7"}`, rec.Body.String())
	})

	t.Run("Malformed body", func(t *testing.T) {
		server, _ := newServer(t)

		rec := do(server, http.MethodPost, "/matches", `{"player":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Parse errors are bad requests", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Reset(mock.Anything, "", 0, uint64(0), "").Return("", apperror.ErrParse).Once()

		rec := do(server, http.MethodPost, "/matches", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Turn(t *testing.T) {
	t.Run("Returns the move", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Turn(mock.Anything, "m-1", 2, "*. C").Return(entity.MoveDown, nil).Once()

		rec := do(server, http.MethodPost, "/matches/m-1/turn", `{"player":2,"board":"*. C"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"move":"down"}`, rec.Body.String())
	})

	t.Run("Unknown planner is not found", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Turn(mock.Anything, "m-1", 0, "").Return(entity.MoveStop, apperror.ErrPlannerNotFound).Once()

		rec := do(server, http.MethodPost, "/matches/m-1/turn", `{}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Storage failure is internal", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Turn(mock.Anything, "m-1", 0, "").Return(entity.MoveStop, context.DeadlineExceeded).Once()

		rec := do(server, http.MethodPost, "/matches/m-1/turn", `{}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_Snapshot(t *testing.T) {
	server, matches := newServer(t)

	state := entity.NewGameState(3, 4, 1)
	matches.EXPECT().Snapshot(mock.Anything, "m-1").Return(state, nil).Once()

	rec := do(server, http.MethodGet, "/matches/m-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, state.String(), rec.Body.String())
}

func TestServer_History(t *testing.T) {
	server, matches := newServer(t)

	records := []entity.MoveRecord{
		{MatchID: "m-1", Iteration: 0, Player: 0, Move: entity.MoveUp},
		{MatchID: "m-1", Iteration: 1, Player: 0, Move: entity.MoveLeft},
	}
	matches.EXPECT().History(mock.Anything, "m-1").Return(records, nil).Once()

	rec := do(server, http.MethodGet, "/matches/m-1/moves", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.MoveRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, records, got)
}

func TestServer_Finish(t *testing.T) {
	t.Run("Finished", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Finish(mock.Anything, "m-1").Return(nil).Once()

		rec := do(server, http.MethodDelete, "/matches/m-1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Unknown match", func(t *testing.T) {
		server, matches := newServer(t)

		matches.EXPECT().Finish(mock.Anything, "m-2").Return(apperror.ErrMatchNotFound).Once()

		rec := do(server, http.MethodDelete, "/matches/m-2", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
