// Package snake implements the snake simulation: movement, growth, food
// placement, collision detection and the score-driven speed ramp. It is pure
// game logic with no terminal or timing dependencies.
package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoFreeCell is returned when every food candidate is covered by the snake.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Collision is the result of a collision check.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Outcome reports what happened during one Advance.
type Outcome struct {
	Ate     bool
	FoodErr error // Set when no new food could be placed after eating
}

// State is one play session: body, heading, food, score and speed.
type State struct {
	rules Rules
	rng   *rand.Rand
	tick  uint64

	body      []core.Point // Head at index 0
	direction Direction
	pending   Direction // Applied on the next Advance

	food    Food
	hasFood bool
	score   int
	speed   int
}

// New starts a session: a single segment at the start position, zero score,
// base speed and food placed away from the body.
func New(rules Rules, rng *rand.Rand) (*State, error) {
	s := &State{
		rules:     rules,
		rng:       rng,
		body:      []core.Point{rules.Start},
		direction: rules.StartDir,
		pending:   rules.StartDir,
		speed:     rules.Speed(0),
	}
	s.food.Look = newAppearance(rules.CellSize)

	pos, err := s.SpawnFood(s.body)
	if err != nil {
		return nil, err
	}
	s.food.Pos = pos
	s.hasFood = true
	return s, nil
}

// SetDirection buffers a heading change for the next Advance. A request for
// the exact opposite of the current heading is ignored; otherwise the latest
// request wins.
func (s *State) SetDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// Advance moves the snake one cell: the new head is prepended, and the tail
// is dropped unless the head reached the food.
func (s *State) Advance() Outcome {
	s.tick++
	s.direction = s.pending

	dx, dy := s.direction.Delta(s.rules.CellSize)
	head := s.body[0].Add(dx, dy)
	s.body = append([]core.Point{head}, s.body...)

	if !s.hasFood || !s.rules.Overlaps(head, s.food.Pos) {
		s.body = s.body[:len(s.body)-1]
		return Outcome{}
	}

	s.score++
	s.speed = s.rules.Speed(s.score)

	pos, err := s.SpawnFood(s.body)
	if err != nil {
		s.hasFood = false
		return Outcome{Ate: true, FoodErr: err}
	}
	s.food.Pos = pos
	return Outcome{Ate: true}
}

// CheckCollision tests the current head against the field bounds and the
// rest of the body (index 0 is skipped).
func (s *State) CheckCollision() Collision {
	head := s.body[0]
	if !s.rules.Field.Contains(head) {
		return CollisionWall
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// SpawnFood draws a uniformly random grid position from the food area that
// does not touch any occupied cell, re-drawing on conflicts. Free candidates
// are counted first so the draw loop always terminates.
func (s *State) SpawnFood(occupied []core.Point) (core.Point, error) {
	cols, rows := s.rules.foodGrid()
	if cols == 0 || rows == 0 {
		return core.Point{}, ErrNoFreeCell
	}

	free := 0
	for row := range rows {
		for col := range cols {
			if !s.blocked(s.rules.foodCandidate(col, row), occupied) {
				free++
			}
		}
	}
	if free == 0 {
		return core.Point{}, ErrNoFreeCell
	}

	for {
		p := s.rules.foodCandidate(s.rng.Intn(cols), s.rng.Intn(rows))
		if !s.blocked(p, occupied) {
			return p, nil
		}
	}
}

// blocked reports whether food at p would touch an occupied cell, using the
// variant's overlap test.
func (s *State) blocked(p core.Point, occupied []core.Point) bool {
	for _, o := range occupied {
		if s.rules.Overlaps(o, p) {
			return true
		}
	}
	return false
}

// UpdateFoodAppearance advances the food colour and size animation.
// Variants without animated food are left untouched.
func (s *State) UpdateFoodAppearance() {
	if !s.rules.AnimatedFood {
		return
	}
	s.food.Look.step(s.rules.CellSize, s.rules.ColorStep, s.rules.SizeSwing)
}

// PlaceFood moves the food to p, keeping its current appearance.
func (s *State) PlaceFood(p core.Point) {
	s.food.Pos = p
	s.hasFood = true
}

// Rules returns the variant rules of this session.
func (s *State) Rules() Rules { return s.rules }

// Body returns a copy of the body, head first.
func (s *State) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Head returns the head position.
func (s *State) Head() core.Point { return s.body[0] }

// Len returns the number of body segments.
func (s *State) Len() int { return len(s.body) }

// Direction returns the heading used by the last Advance.
func (s *State) Direction() Direction { return s.direction }

// Pending returns the heading the next Advance will use.
func (s *State) Pending() Direction { return s.pending }

// Food returns the food and whether one is on the board.
func (s *State) Food() (Food, bool) { return s.food, s.hasFood }

// Score returns the number of food items eaten.
func (s *State) Score() int { return s.score }

// Speed returns the current tick rate in ticks per second.
func (s *State) Speed() int { return s.speed }
