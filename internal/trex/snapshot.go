package trex

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Character Character
	Obstacles []Obstacle
	Score     int
	GameOver  bool
	Phase     Phase
	Elapsed   float64
	Speed     float64
	NextSpawn float64
}

// Snapshot returns the current state. The obstacle slice is a copy and may be
// kept across ticks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Character: g.char,
		Obstacles: g.Obstacles(),
		Score:     g.run.Score,
		GameOver:  g.run.GameOver,
		Phase:     g.Phase(),
		Elapsed:   g.run.Elapsed,
		Speed:     g.Speed(),
		NextSpawn: g.run.NextSpawn,
	}
}

// FinalScore mirrors Game.FinalScore for a captured frame.
func (s Snapshot) FinalScore() (int, bool) {
	if !s.GameOver {
		return 0, false
	}
	return s.Score, true
}
