//go:build ebiten

package app

import (
	"time"

	"noisefield/internal/core"
	"noisefield/internal/render"
	"noisefield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a noise field to the ebiten.Game interface. The texture is
// re-rendered only when a parameter changes.
type Game struct {
	field core.Field
	hud   *ui.HUD
	tex   *ebiten.Image
	buf   []byte

	scale int
	seed  int64
	dirty bool
}

// New constructs a Game for the provided field.
func New(field core.Field, scale int, seed int64) *Game {
	size := field.Size()
	return &Game{
		field: field,
		hud:   ui.NewHUD(field, ui.PanelWidth),
		tex:   ebiten.NewImage(size.W, size.H),
		buf:   make([]byte, 4*size.W*size.H),
		scale: scale,
		seed:  seed,
		dirty: true,
	}
}

// Update handles input and HUD edits, then re-renders if anything changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Reset(g.seed)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.field.Reset(time.Now().UnixNano())
		g.dirty = true
	}

	if g.hud.Update(g.field.Size().W * g.scale) {
		g.dirty = true
	}

	if g.dirty {
		size := g.field.Size()
		render.Fill(g.buf, size.W, size.H, g.field.At)
		g.tex.WritePixels(g.buf)
		g.dirty = false
	}
	return nil
}

// Draw paints the field texture and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.tex, op)
	g.hud.Draw(screen, g.field.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.field.Size()
	return s.W*g.scale + ui.PanelWidth, s.H * g.scale
}
