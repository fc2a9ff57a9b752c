package snake

// Snapshot captures the session state for determinism testing and debugging.
type Snapshot struct {
	Tick      uint64
	Score     int
	Speed     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	HasFood   bool
	FoodGreen int
	FoodSize  int
}

// Snapshot returns the current session snapshot.
func (s *State) Snapshot() Snapshot {
	head := s.body[0]
	return Snapshot{
		Tick:      s.tick,
		Score:     s.score,
		Speed:     s.speed,
		SnakeLen:  len(s.body),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       s.direction,
		FoodX:     s.food.Pos.X,
		FoodY:     s.food.Pos.Y,
		HasFood:   s.hasFood,
		FoodGreen: s.food.Look.Green,
		FoodSize:  s.food.Look.Size,
	}
}
