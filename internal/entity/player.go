package entity

import "fmt"

// Player is the body of a player ordered from tail to head.
// An empty body means the player has been eliminated.
type Player struct {
	Body []GridPoint
}

func (that *Player) IsActive() bool {
	return len(that.Body) > 0
}

// Head returns the last point of the body.
func (that *Player) Head() (GridPoint, bool) {
	if len(that.Body) == 0 {
		return GridPoint{}, false
	}
	return that.Body[len(that.Body)-1], true
}

func playerName(idx int) string {
	return fmt.Sprintf("player-%d", idx)
}

func playerHeadChar(idx int) byte {
	return 'A' + byte(idx)
}

func playerTailChar(idx int) byte {
	return 'a' + byte(idx)
}
