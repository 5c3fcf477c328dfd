package entity

// MoveRecord is one line of a match's move log.
type MoveRecord struct {
	MatchID   string `json:"match_id"`
	Iteration int    `json:"iteration"`
	Player    int    `json:"player"`
	Move      Move   `json:"move"`
}
