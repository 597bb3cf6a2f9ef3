package ui

import (
	"github.com/samdwyer/rustygame/internal/entity"
	"github.com/samdwyer/rustygame/internal/gamedata"
	"github.com/samdwyer/rustygame/internal/world"
)

// Display is the root surface the console is composited onto.
type Display interface {
	Surface
	Clear()
	Show()
	Fullscreen() bool
}

// Renderer draws the map and objects into an offscreen console and
// presents it on a display.
type Renderer struct {
	display Display
	console *Console
	palette gamedata.Palette
	limiter *FrameLimiter
	frames  int
}

// NewRenderer creates a renderer with an offscreen console of the given size.
func NewRenderer(display Display, width, height int, palette gamedata.Palette, limiter *FrameLimiter) *Renderer {
	return &Renderer{
		display: display,
		console: NewConsole(width, height),
		palette: palette,
		limiter: limiter,
	}
}

// Frames returns how many frames have been presented.
func (r *Renderer) Frames() int {
	return r.frames
}

// Render composes a frame and presents it.
func (r *Renderer) Render(m *world.Map, objects []*entity.Object) {
	r.Compose(m, objects)
	r.Present()
}

// Compose draws the map backgrounds, then every object in slice order.
// Later objects overwrite earlier ones on the same cell.
func (r *Renderer) Compose(m *world.Map, objects []*entity.Object) {
	r.console.Clear()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.GetTile(x, y).IsWall() {
				r.console.SetBackground(x, y, r.palette.DarkWall)
			} else {
				r.console.SetBackground(x, y, r.palette.DarkGround)
			}
		}
	}

	for _, o := range objects {
		r.console.PutChar(o.X, o.Y, o.Symbol, o.Color)
	}
}

// Present composites the console onto the display at full opacity, 1:1,
// and flushes. Windowed mode copies to the display origin. A terminal window
// cannot be resized from inside, so fullscreen letterboxes instead: the
// console is centered and the margin stays cleared.
func (r *Renderer) Present() {
	w, h := r.console.Size()
	dstX, dstY := 0, 0
	if r.display.Fullscreen() {
		dw, dh := r.display.Size()
		dstX = max((dw-w)/2, 0)
		dstY = max((dh-h)/2, 0)
	}

	r.display.Clear()
	Blit(r.console, 0, 0, w, h, r.display, dstX, dstY, 1.0, 1.0)

	if r.limiter != nil {
		r.limiter.Wait()
	}
	r.display.Show()
	r.frames++
}
