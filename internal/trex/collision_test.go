package trex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/core"
)

func TestCharacterBox(t *testing.T) {
	d := config.Default().Dimensions

	standing := CharacterBox(Character{}, d, 50)
	assert.Equal(t, core.Box{Left: 40, Right: 60, Bottom: 0, Top: 40}, standing)

	ducking := CharacterBox(Character{Ducking: true, Y: 5}, d, 50)
	assert.Equal(t, core.Box{Left: 40, Right: 60, Bottom: 5, Top: 25}, ducking)
}

func TestDetect(t *testing.T) {
	cfg := config.Default()
	d := cfg.Dimensions
	track := cfg.World.TrackX
	cactusAt := func(x float64) Obstacle {
		return Obstacle{X: x, Kind: KindCactus, Width: 10, Height: 30}
	}

	tests := []struct {
		name      string
		char      Character
		obstacles []Obstacle
		expected  bool
	}{
		{"no obstacles", Character{}, nil, false},
		{"cactus on the track", Character{}, []Obstacle{cactusAt(50)}, true},
		{"cactus far ahead", Character{}, []Obstacle{cactusAt(200)}, false},
		{"jumped over cactus", Character{Y: 31, Jumping: true}, []Obstacle{cactusAt(50)}, false},
		{"feet level with cactus top", Character{Y: 30, Jumping: true}, []Obstacle{cactusAt(50)}, false},
		{"feet just below cactus top", Character{Y: 29.9, Jumping: true}, []Obstacle{cactusAt(50)}, true},
		{"cactus touching front edge", Character{}, []Obstacle{cactusAt(65)}, false},
		{"cactus overlapping front edge", Character{}, []Obstacle{cactusAt(64.9)}, true},
		{"cactus touching back edge", Character{}, []Obstacle{cactusAt(35)}, false},
		{
			"standing into low pterodactyl",
			Character{},
			[]Obstacle{NewObstacle(1, KindFlyingLow, 50, cfg)},
			true,
		},
		{
			"ducking under low pterodactyl",
			Character{Ducking: true},
			[]Obstacle{NewObstacle(1, KindFlyingLow, 50, cfg)},
			false,
		},
		{
			"standing under high pterodactyl",
			Character{},
			[]Obstacle{NewObstacle(1, KindFlyingHigh, 50, cfg)},
			false,
		},
		{
			"jumping into high pterodactyl",
			Character{Y: 10, Jumping: true},
			[]Obstacle{NewObstacle(1, KindFlyingHigh, 50, cfg)},
			true,
		},
		{
			"any obstacle counts",
			Character{},
			[]Obstacle{cactusAt(300), cactusAt(600), cactusAt(55)},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Detect(tc.char, tc.obstacles, d, track))
		})
	}
}

func TestDetectIsPure(t *testing.T) {
	cfg := config.Default()
	char := Character{Y: 3, Jumping: true, Velocity: 50}
	obstacles := []Obstacle{NewObstacle(1, KindCactus, 52, cfg)}

	first := Detect(char, obstacles, cfg.Dimensions, cfg.World.TrackX)
	second := Detect(char, obstacles, cfg.Dimensions, cfg.World.TrackX)

	assert.Equal(t, first, second)
	assert.Equal(t, Character{Y: 3, Jumping: true, Velocity: 50}, char)
	assert.Equal(t, 52.0, obstacles[0].X)
}
