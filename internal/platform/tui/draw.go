package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-trex/internal/config"
	"github.com/vovakirdan/tui-trex/internal/core"
	"github.com/vovakirdan/tui-trex/internal/trex"
)

// Glyphs used by the scene.
const (
	TrexChar     = '█'
	TrexEye      = '◆'
	GroundChar   = '▔'
	WingUpChar   = '^'
	WingDownChar = 'v'
)

const flapFrames = 8 // ticks per wing position

var cactusGlyphs = []rune{'║', '┃', '▌'}

// viewport maps world units onto screen cells.
// World x grows to the right from 0; world y is height above the ground.
type viewport struct {
	sx, sy float64 // cells per world unit
	ground int     // row of the ground line
}

func newViewport(w config.World, cols, rows int) viewport {
	sy := float64(rows) / w.ScreenHeight
	return viewport{
		sx:     float64(cols) / w.ScreenWidth,
		sy:     sy,
		ground: rows - 1 - int(math.Round(-w.GroundY*sy)),
	}
}

// rect converts a world box into the cells it covers, at least one cell each way.
// Objects standing on the ground end on the row just above the ground line.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Round(b.Left * v.sx))
	x1 := int(math.Round(b.Right * v.sx))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 := v.ground - int(math.Round(b.Top*v.sy))
	y1 := v.ground - int(math.Round(b.Bottom*v.sy))
	if y1 <= y0 {
		y0 = y1 - 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// sprite is the shell-side drawable for one obstacle.
type sprite struct {
	kind  trex.Kind
	glyph rune
	born  int // scene frame the obstacle first appeared
}

// Scene draws snapshots and keeps a sprite per live obstacle, keyed by ID.
type Scene struct {
	sprites map[uint64]*sprite
	frame   int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{sprites: make(map[uint64]*sprite)}
}

// Reset forgets all sprites. Obstacle IDs restart with every run.
func (s *Scene) Reset() {
	clear(s.sprites)
}

// Len returns the number of live sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Step advances the animation clock by one simulation tick.
func (s *Scene) Step() {
	s.frame++
}

// reconcile adds sprites for new obstacles and drops those no longer present.
func (s *Scene) reconcile(obstacles []trex.Obstacle) {
	live := make(map[uint64]struct{}, len(obstacles))
	for _, o := range obstacles {
		live[o.ID] = struct{}{}
		if sp, ok := s.sprites[o.ID]; ok && sp.kind == o.Kind {
			continue
		}
		s.sprites[o.ID] = &sprite{
			kind:  o.Kind,
			glyph: cactusGlyphs[o.ID%uint64(len(cactusGlyphs))],
			born:  s.frame,
		}
	}
	for id := range s.sprites {
		if _, ok := live[id]; !ok {
			delete(s.sprites, id)
		}
	}
}

// Draw renders one frame of the run into dst.
func (s *Scene) Draw(dst *core.Screen, snap trex.Snapshot, cfg config.Config, paused bool) {
	dst.Clear()
	s.reconcile(snap.Obstacles)

	vp := newViewport(cfg.World, dst.Width(), dst.Height())
	dst.DrawHLine(0, vp.ground, dst.Width(), GroundChar, core.ColorGround)

	for _, o := range snap.Obstacles {
		s.drawObstacle(dst, vp, o)
	}
	drawTrex(dst, vp, trex.CharacterBox(snap.Character, cfg.Dimensions, cfg.World.TrackX))

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorHUD)
	speed := fmt.Sprintf(" Speed: %.0f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speed)-2, 0, speed, core.ColorDim)

	switch {
	case snap.GameOver:
		drawCenteredMessage(dst, fmt.Sprintf("Game Over! Final Score: %d", snap.Score), "Press R to restart", core.ColorAlert)
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorHUD)
	}
}

func (s *Scene) drawObstacle(dst *core.Screen, vp viewport, o trex.Obstacle) {
	r := vp.rect(o.Box())
	sp := s.sprites[o.ID]

	if !o.Kind.Flying() {
		dst.FillRect(r, sp.glyph, core.ColorCactus)
		return
	}

	wing := WingUpChar
	if ((s.frame-sp.born)/flapFrames)%2 == 1 {
		wing = WingDownChar
	}
	dst.FillRect(r, wing, core.ColorPterodactyl)
	// Head on the leading edge
	dst.Set(r.X, r.Bottom()-1, '<', core.ColorPterodactyl)
}

func drawTrex(dst *core.Screen, vp viewport, b core.Box) {
	r := vp.rect(b)
	dst.FillRect(r, TrexChar, core.ColorTrex)
	dst.Set(r.Right()-1, r.Y, TrexEye, core.ColorTrex)
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawText(box.X+(boxW-titleLen)/2, box.Y+1, title, c)
	dst.DrawText(box.X+(boxW-subtitleLen)/2, box.Y+3, subtitle, core.ColorDim)
}
