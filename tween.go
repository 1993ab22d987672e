package ember

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightDuration is how long the hover/focus ring takes to fade in or out.
const highlightDuration = 0.12

// setState updates the widget's visual state and retargets the highlight
// tween: interaction states fade the ring in, normal fades it out.
func (w *Widget) setState(state WidgetState) {
	if state == w.state {
		return
	}
	w.state = state
	target := float32(1)
	if state == StateNormal {
		target = 0
	}
	w.highlight = gween.New(float32(w.HighlightAlpha), target, highlightDuration, ease.OutQuad)
}

// advanceHighlight steps the widget's highlight tween by dt seconds.
func (w *Widget) advanceHighlight(dt float64) {
	if w.highlight == nil {
		return
	}
	val, finished := w.highlight.Update(float32(dt))
	w.HighlightAlpha = float64(val)
	if finished {
		w.highlight = nil
	}
}

// TweenGroup animates up to 4 float64 fields on a Widget simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenHighlight) and call Update(dt) each frame. If the target widget is
// disposed, the group stops immediately.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Widget
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target widget has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates the widget's rectangle
// origin to the given coordinates over the specified duration.
func TweenPosition(w *Widget, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(w.Rect.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(w.Rect.Y), float32(toY), duration, fn)
	g.fields[0] = &w.Rect.X
	g.fields[1] = &w.Rect.Y
	return g
}

// TweenSize creates a TweenGroup that animates the widget's width and height
// to the given values over the specified duration.
func TweenSize(w *Widget, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: w}
	g.tweens[0] = gween.New(float32(w.Rect.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(w.Rect.Height), float32(toH), duration, fn)
	g.fields[0] = &w.Rect.Width
	g.fields[1] = &w.Rect.Height
	return g
}

// TweenHighlight creates a TweenGroup that animates the widget's
// HighlightAlpha to the target value over the specified duration.
func TweenHighlight(w *Widget, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: w}
	g.tweens[0] = gween.New(float32(w.HighlightAlpha), float32(to), duration, fn)
	g.fields[0] = &w.HighlightAlpha
	return g
}
