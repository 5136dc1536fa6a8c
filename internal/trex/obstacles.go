package trex

import (
	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/core"
)

// Kind identifies an obstacle type. Dimensions and altitude follow from it.
type Kind int

const (
	KindCactus Kind = iota
	KindFlyingLow
	KindFlyingHigh
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCactus:
		return "cactus"
	case KindFlyingLow:
		return "pterodactyl-low"
	case KindFlyingHigh:
		return "pterodactyl-high"
	default:
		return "unknown"
	}
}

// Flying reports whether the kind is a pterodactyl.
func (k Kind) Flying() bool {
	return k == KindFlyingLow || k == KindFlyingHigh
}

// Obstacle is something the T-Rex must avoid. X is its horizontal center,
// Y the height of its bottom edge above the ground.
type Obstacle struct {
	ID     uint64 // Stable within a run; renderers key sprites by it
	X      float64
	Y      float64
	Kind   Kind
	Width  float64
	Height float64
}

// NewObstacle builds an obstacle of the given kind centered at x.
func NewObstacle(id uint64, kind Kind, x float64, cfg config.Config) Obstacle {
	o := Obstacle{ID: id, X: x, Kind: kind}
	switch kind {
	case KindFlyingLow:
		o.Y = cfg.Spawn.PterodactylLowY
		o.Width, o.Height = cfg.Dimensions.PterodactylWidth, cfg.Dimensions.PterodactylHeight
	case KindFlyingHigh:
		o.Y = cfg.Spawn.PterodactylHighY
		o.Width, o.Height = cfg.Dimensions.PterodactylWidth, cfg.Dimensions.PterodactylHeight
	default:
		o.Width, o.Height = cfg.Dimensions.CactusWidth, cfg.Dimensions.CactusHeight
	}
	return o
}

// Box returns the obstacle's hitbox in world space.
func (o Obstacle) Box() core.Box {
	return core.CenteredBox(o.X, o.Y, o.Width, o.Height)
}

// Gone reports whether the obstacle has scrolled fully past the left edge.
func (o Obstacle) Gone() bool {
	return o.X <= -o.Width
}

// Generator moves, prunes and spawns obstacles.
type Generator struct {
	cfg config.Config
	rng Random
}

// NewGenerator creates a generator drawing its decisions from rng.
func NewGenerator(cfg config.Config, rng Random) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Speed returns the scroll speed for the given elapsed run time.
func (g *Generator) Speed(elapsed float64) float64 {
	return g.cfg.Difficulty.SpeedAt(elapsed)
}

// NextGap draws the time until the following spawn.
func (g *Generator) NextGap() float64 {
	return g.rng.Uniform(g.cfg.Spawn.MinGap, g.cfg.Spawn.MaxGap)
}

// Advance moves the run's obstacles forward by dt seconds.
// Speed is taken from the elapsed time before this step, then the clock
// advances and at most one obstacle spawns.
func (g *Generator) Advance(rs *RunState, dt float64) {
	speed := g.Speed(rs.Elapsed)

	for i := range rs.Obstacles {
		rs.Obstacles[i].X -= speed * dt
	}

	// Remove obstacles that have moved off the left side
	kept := rs.Obstacles[:0]
	for _, o := range rs.Obstacles {
		if !o.Gone() {
			kept = append(kept, o)
		}
	}
	rs.Obstacles = kept

	rs.Elapsed += dt

	if rs.Elapsed >= rs.NextSpawn {
		rs.Obstacles = append(rs.Obstacles, g.spawn(rs))
		rs.NextSpawn = rs.Elapsed + g.NextGap()
	}
}

// spawn creates a new obstacle at the right screen edge.
func (g *Generator) spawn(rs *RunState) Obstacle {
	kind := KindCactus
	if g.rng.Choice(2) == 1 {
		kind = KindFlyingLow
		if g.rng.Choice(2) == 1 {
			kind = KindFlyingHigh
		}
	}
	rs.nextID++
	return NewObstacle(rs.nextID, kind, g.cfg.World.ScreenWidth, g.cfg)
}
