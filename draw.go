package ember

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// rgba converts a [0,1] Color to 8-bit RGBA with premultiplied alpha.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// Theme holds the fill and highlight colors for the default widget drawer.
// Widgets with a non-zero Color override the per-state fill.
type Theme struct {
	FillNormal  Color
	FillHovered Color
	FillPressed Color
	FillFocused Color
	Panel       Color
	Highlight   Color // focus/hover ring, modulated by HighlightAlpha
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		FillNormal:  Color{0.18, 0.20, 0.25, 1},
		FillHovered: Color{0.26, 0.30, 0.38, 1},
		FillPressed: Color{0.12, 0.14, 0.18, 1},
		FillFocused: Color{0.24, 0.28, 0.40, 1},
		Panel:       Color{0.10, 0.11, 0.13, 0.9},
		Highlight:   Color{0.95, 0.80, 0.25, 1},
	}
}

func (t *Theme) fill(w *Widget) Color {
	if w.Color != (Color{}) {
		return w.Color
	}
	if w.Type == WidgetPanel {
		return t.Panel
	}
	switch w.State() {
	case StateHovered:
		return t.FillHovered
	case StatePressed:
		return t.FillPressed
	case StateFocused:
		return t.FillFocused
	default:
		return t.FillNormal
	}
}

// DrawWidgets renders every visible widget in paint (insertion) order:
// per-state rectangle fill, optional image, label, and a highlight ring whose
// opacity follows the widget's animated HighlightAlpha. Coordinates pass
// through the viewport's game-to-screen transform.
func DrawWidgets(screen *ebiten.Image, reg *Registry, view *Viewport, theme *Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}
	scale := view.Scale()
	for _, w := range reg.Widgets() {
		if !w.Visible {
			continue
		}
		sx, sy := view.GameToScreen(w.Rect.X, w.Rect.Y)
		sw := w.Rect.Width * scale
		sh := w.Rect.Height * scale

		if w.Type != WidgetText && w.Type != WidgetImage {
			vector.DrawFilledRect(screen, float32(sx), float32(sy),
				float32(sw), float32(sh), theme.fill(w).rgba(), false)
		}

		if w.Type == WidgetImage && w.Image != nil {
			op := &ebiten.DrawImageOptions{}
			bounds := w.Image.Bounds()
			if bounds.Dx() > 0 && bounds.Dy() > 0 {
				op.GeoM.Scale(sw/float64(bounds.Dx()), sh/float64(bounds.Dy()))
			}
			op.GeoM.Translate(sx, sy)
			screen.DrawImage(w.Image, op)
		}

		if w.Label != "" {
			ebitenutil.DebugPrintAt(screen, w.Label, int(sx)+6, int(sy)+4)
		}

		if w.HighlightAlpha > 0 {
			ring := theme.Highlight
			ring.A *= w.HighlightAlpha
			vector.StrokeRect(screen, float32(sx), float32(sy),
				float32(sw), float32(sh), 2, ring.rgba(), false)
		}
	}
}
