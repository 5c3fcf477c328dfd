package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

const (
	actionReset  = "match:reset"
	actionTurn   = "match:turn"
	actionFinish = "match:finish"
	actionError  = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	MatchID string `json:"match_id,omitempty"`
	Player  int    `json:"player"`
	Seed    uint64 `json:"seed,omitempty"`
	Board   string `json:"board,omitempty"`
}

type ResponsePayload struct {
	MatchID string      `json:"match_id,omitempty"`
	Move    entity.Move `json:"move,omitempty"`
	Error   string      `json:"error,omitempty"`
}
