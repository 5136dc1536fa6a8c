package trex

import (
	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/core"
)

// CharacterBox returns the T-Rex hitbox. The box is centered on the fixed
// track and shrinks while ducking.
func CharacterBox(c Character, d config.Dimensions, trackX float64) core.Box {
	return core.CenteredBox(trackX, c.Y, d.TrexWidth, d.TrexHeightFor(c.Ducking))
}

// Detect reports whether the T-Rex overlaps any obstacle.
// Touching edges do not count.
func Detect(c Character, obstacles []Obstacle, d config.Dimensions, trackX float64) bool {
	box := CharacterBox(c, d, trackX)
	for _, o := range obstacles {
		if box.Overlaps(o.Box()) {
			return true
		}
	}
	return false
}
