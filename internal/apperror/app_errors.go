package apperror

import "errors"

var (
	ErrParse            = errors.New("cannot parse the string to game state")
	ErrMatchNotFound    = errors.New("match not found")
	ErrPlannerNotFound  = errors.New("planner is not registered for the player")
	ErrInvalidPlayer    = errors.New("invalid player index")
	ErrInvalidMove      = errors.New("bot produced an invalid move")
	ErrEmptyBoard       = errors.New("board is empty")
	ErrMatchIDRequired  = errors.New("match id is required")
	ErrUnknownAction    = errors.New("unknown action")
	ErrPayloadMalformed = errors.New("payload is malformed")
)
