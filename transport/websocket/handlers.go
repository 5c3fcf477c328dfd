package websocket

import "context"

func (that *Server) handleReset(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	matchID, err := that.matches.Reset(ctx, payload.MatchID, payload.Player, payload.Seed, payload.Board)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{MatchID: matchID}, nil
}

func (that *Server) handleTurn(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	move, err := that.matches.Turn(ctx, payload.MatchID, payload.Player, payload.Board)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{MatchID: payload.MatchID, Move: move}, nil
}

func (that *Server) handleFinish(ctx context.Context, payload *Payload) (*ResponsePayload, error) {
	if err := that.matches.Finish(ctx, payload.MatchID); err != nil {
		return nil, err
	}

	return &ResponsePayload{MatchID: payload.MatchID}, nil
}
