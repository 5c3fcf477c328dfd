package planner

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/xcg-backend/internal/entity"
)

const (
	DefaultSampleAttempts = 20
	DefaultTargetRank     = 4
)

// Snapshot is the read-only view of a match the planner needs for one turn.
type Snapshot interface {
	Dimensions() (rows, cols int)
	CellAt(p entity.GridPoint) entity.Cell
	Body(player int) []entity.GridPoint
}

type Options struct {
	// SampleAttempts is how many random cells are drawn when looking for a target.
	SampleAttempts int
	// TargetRank picks the target among the sampled cells ordered by distance,
	// so the bot does not keep planning tiny loops next to its head.
	TargetRank int
}

func DefaultOptions() Options {
	return Options{
		SampleAttempts: DefaultSampleAttempts,
		TargetRank:     DefaultTargetRank,
	}
}

// Planner drives one player. It is not safe for concurrent use: the match
// loop calls Move once per turn and carries the planner to the next turn.
type Planner struct {
	opts Options

	player int
	bounds Bounds

	pcg *rand.PCG
	rng *rand.Rand

	previous []entity.CartesianPoint
	route    []entity.CartesianPoint
	next     int

	sample func(s Snapshot, attempts int) []entity.CartesianPoint
}

func New(opts Options) *Planner {
	if opts.SampleAttempts <= 0 {
		opts.SampleAttempts = DefaultSampleAttempts
	}
	if opts.TargetRank < 0 {
		opts.TargetRank = DefaultTargetRank
	}

	that := &Planner{opts: opts}
	that.sample = that.findRandomEmpty
	that.seed(0)

	return that
}

// Reset prepares the planner for a new match. Identical seeds and identical
// snapshot sequences produce identical moves.
func (that *Planner) Reset(s Snapshot, player int, seed uint64) {
	rows, cols := s.Dimensions()

	that.player = player
	that.bounds = Bounds{Rows: rows, Cols: cols}
	that.previous = nil
	that.route = nil
	that.next = 0
	that.seed(seed)
}

func (that *Planner) seed(seed uint64) {
	that.pcg = rand.NewPCG(seed, seed)
	that.rng = rand.New(that.pcg)
}

func (that *Planner) Player() int {
	return that.player
}

// Following reports whether a committed route still has unconsumed waypoints.
func (that *Planner) Following() bool {
	return that.next < len(that.route)
}

// Route returns the unconsumed part of the committed route.
func (that *Planner) Route() []entity.CartesianPoint {
	if !that.Following() {
		return nil
	}
	return slices.Clone(that.route[that.next:])
}

// Move decides the next unit move of the player for the given snapshot.
func (that *Planner) Move(s Snapshot) entity.Move {
	rows, cols := s.Dimensions()
	that.bounds = Bounds{Rows: rows, Cols: cols}

	body := that.body(s)
	shrunk := len(body) < len(that.previous)
	that.previous = body

	if len(body) == 0 {
		return entity.MoveStop
	}

	head := body[len(body)-1]

	// bitten or flooded: whatever was planned no longer matches the body
	if shrunk {
		that.discard()
	}

	if that.Following() {
		waypoint := that.route[that.next]
		if head.Adjacent(waypoint) {
			that.next++
			return Direction(head, waypoint)
		}

		// the head is off the route, the match engine did not apply our last move
		that.discard()
	}

	return that.plan(s, head)
}

func (that *Planner) plan(s Snapshot, head entity.CartesianPoint) entity.Move {
	candidates := that.sample(s, that.opts.SampleAttempts)
	if len(candidates) == 0 {
		return entity.MoveStop
	}

	slices.SortStableFunc(candidates, func(a, b entity.CartesianPoint) int {
		return cmp.Compare(Distance(head, a), Distance(head, b))
	})

	target := candidates[min(that.opts.TargetRank, len(candidates)-1)]

	route := BuildPath(head, target, target.X != head.X)

	closing, ok := FindClosest(target, that.bounds, func(p entity.CartesianPoint) bool {
		return that.cellAt(s, p).IsClaimed() && MayBeSelected(head, target, p)
	})
	if ok {
		horizontalFirst := that.rng.IntN(2) == 1
		route = append(route, BuildPath(target, closing, horizontalFirst)...)
	}

	that.route = route
	that.next = 0

	if len(route) == 0 {
		return entity.MoveStop
	}

	that.next = 1

	return Direction(head, route[0])
}

func (that *Planner) discard() {
	that.route = nil
	that.next = 0
}

// body returns the player's body in planning coordinates, tail first.
func (that *Planner) body(s Snapshot) []entity.CartesianPoint {
	grid := s.Body(that.player)
	body := make([]entity.CartesianPoint, len(grid))
	for i, p := range grid {
		body[i] = entity.ToCartesian(p, that.bounds.Rows)
	}
	return body
}

func (that *Planner) cellAt(s Snapshot, p entity.CartesianPoint) entity.Cell {
	return s.CellAt(entity.ToGrid(p, that.bounds.Rows))
}

func (that *Planner) findRandomEmpty(s Snapshot, attempts int) []entity.CartesianPoint {
	return FindRandom(that.rng, that.bounds, attempts, func(p entity.CartesianPoint) bool {
		return that.cellAt(s, p).IsEmpty()
	})
}

// State is the persistable form of a planner between two turns.
type State struct {
	Player    int                     `json:"player"`
	Rows      int                     `json:"rows"`
	Cols      int                     `json:"cols"`
	Previous  []entity.CartesianPoint `json:"previous"`
	Route     []entity.CartesianPoint `json:"route"`
	Next      int                     `json:"next"`
	Generator []byte                  `json:"generator"`
}

// State captures everything needed to continue the planner elsewhere,
// including the exact position of its random generator.
func (that *Planner) State() (*State, error) {
	generator, err := that.pcg.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generator: %w", err)
	}

	return &State{
		Player:    that.player,
		Rows:      that.bounds.Rows,
		Cols:      that.bounds.Cols,
		Previous:  slices.Clone(that.previous),
		Route:     slices.Clone(that.route),
		Next:      that.next,
		Generator: generator,
	}, nil
}

// Restore rebuilds a planner from a saved State.
func Restore(state *State, opts Options) (*Planner, error) {
	that := New(opts)

	pcg := &rand.PCG{}
	if err := pcg.UnmarshalBinary(state.Generator); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generator: %w", err)
	}

	that.pcg = pcg
	that.rng = rand.New(pcg)
	that.player = state.Player
	that.bounds = Bounds{Rows: state.Rows, Cols: state.Cols}
	that.previous = slices.Clone(state.Previous)
	that.route = slices.Clone(state.Route)
	that.next = state.Next

	return that, nil
}
