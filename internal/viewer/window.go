// Package viewer shows a session in a desktop window and feeds it keyboard
// input.
package viewer

import (
	"time"

	"robot-renderer/internal/app"
	"robot-renderer/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Arrow keys auto-repeat after repeatDelay ticks, then every repeatInterval
// ticks, like a held key in a terminal.
const (
	repeatDelay    = 24
	repeatInterval = 3
)

// Run opens the window and blocks until it closes.
func Run(a *app.App, title string) error {
	w, h := a.Size()
	g := &game{app: a, now: time.Now}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	app   *app.App
	now   func() time.Time
	frame *ebiten.Image
}

func (g *game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		g.app.Controller.Key(r)
	}
	if repeating(ebiten.KeyArrowLeft) {
		g.app.Controller.Special(input.KeyLeft)
	}
	if repeating(ebiten.KeyArrowRight) {
		g.app.Controller.Special(input.KeyRight)
	}

	g.app.Advance(g.now())
	return nil
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func (g *game) Draw(screen *ebiten.Image) {
	if img, ok := g.app.Frame(); ok {
		b := img.Bounds()
		if g.frame == nil || g.frame.Bounds().Dx() != b.Dx() || g.frame.Bounds().Dy() != b.Dy() {
			if g.frame != nil {
				g.frame.Deallocate()
			}
			g.frame = ebiten.NewImage(b.Dx(), b.Dy())
		}
		// Every fragment is opaque, so straight and premultiplied alpha agree
		g.frame.WritePixels(img.Pix)
	}
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.Resize(outsideWidth, outsideHeight)
	return g.app.Size()
}
