package entity

import "fmt"

type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellBorder
	CellOwned
)

// Cell is the static classification of a board square.
// Owner is meaningful only for CellOwned.
type Cell struct {
	Kind  CellKind
	Owner uint8
}

func Empty() Cell {
	return Cell{Kind: CellEmpty}
}

func Border() Cell {
	return Cell{Kind: CellBorder}
}

func Owned(player uint8) Cell {
	return Cell{Kind: CellOwned, Owner: player}
}

func (that Cell) IsEmpty() bool {
	return that.Kind == CellEmpty
}

// IsClaimed reports whether the cell is a border or somebody's territory.
func (that Cell) IsClaimed() bool {
	return that.Kind != CellEmpty
}

func (that Cell) String() string {
	switch that.Kind {
	case CellBorder:
		return "Border"
	case CellOwned:
		return fmt.Sprintf("Owned(%d)", that.Owner)
	default:
		return "Empty"
	}
}

// Move is a single unit step of a player's head.
type Move string

const (
	MoveRight Move = "right"
	MoveUp    Move = "up"
	MoveLeft  Move = "left"
	MoveDown  Move = "down"
	MoveStop  Move = "stop"
)

func (that Move) IsValid() bool {
	switch that {
	case MoveRight, MoveUp, MoveLeft, MoveDown, MoveStop:
		return true
	default:
		return false
	}
}
