package ember

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// game adapts a Runtime to the ebiten.Game interface. The layout returns the
// window size unchanged; the runtime's Viewport handles scaling, so widget
// geometry stays in game coordinates regardless of window size.
type game struct {
	rt *Runtime
}

func (g *game) Update() error {
	g.rt.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.rt.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.rt.View().SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run creates a window and drives the runtime's update/draw loop until the
// window closes. For full control, implement ebiten.Game yourself and call
// Runtime.Update and Runtime.Draw directly.
func Run(rt *Runtime, cfg RunConfig) error {
	if cfg.Width == 0 {
		cfg.Width = 960
	}
	if cfg.Height == 0 {
		cfg.Height = 540
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	rt.View().SetScreenSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{rt: rt})
}
