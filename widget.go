package ember

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
)

// WidgetType distinguishes presentation behavior for a Widget.
type WidgetType uint8

const (
	WidgetButton WidgetType = iota // clickable rectangle with a label
	WidgetText                     // static label, not interactive by default
	WidgetImage                    // draws an ebiten.Image
	WidgetPanel                    // plain rectangle, grouping/background
)

// WidgetState is the visual state of a widget. The four states are mutually
// exclusive and used only for presentation.
type WidgetState uint8

const (
	StateNormal  WidgetState = iota // no interaction
	StateHovered                    // pointer inside bounds
	StatePressed                    // pointer button held on the widget
	StateFocused                    // directional focus rests on the widget
)

// widgetIDCounter is a plain counter (no atomic — ember is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Widget is an interactive or drawable UI element. A single flat struct is
// used for all widget kinds to avoid interface dispatch on the hot path.
//
// Neighbor links (Up/Down/Left/Right) form the directional focus graph. They
// are plain references into widgets owned by a Registry, never ownership.
// A widget is created by a scene during setup, registered into the Registry,
// and unregistered when the scene is torn down; it never outlives its scene.
type Widget struct {
	// Identity
	ID   uint32
	Name string
	Type WidgetType

	// Geometry, in game coordinates.
	Rect Rect

	// Presentation
	Label   string
	Image   *ebiten.Image // WidgetImage only
	Color   Color         // base fill tint; zero value means "use theme"
	Visible bool

	// Interaction
	Focusable bool
	Disabled  bool

	// Focus graph neighbor links. Nil means "no edge in that direction".
	Up, Down, Left, Right *Widget

	// Metadata
	UserData any
	EntityID uint32 // forwarded on interaction events to the EntityStore bridge

	// Per-widget callbacks (nil by default; zero cost when unused)
	OnClick      func()
	OnPress      func()
	OnRelease    func()
	OnHoverStart func()
	OnHoverEnd   func()
	OnFocusStart func()
	OnFocusEnd   func()
	OnActivate   func()

	// HighlightAlpha drives the hover/focus ring opacity, animated by an
	// internal tween on state transitions.
	HighlightAlpha float64

	state     WidgetState
	highlight *gween.Tween
	disposed  bool
}

func widgetDefaults(w *Widget) {
	w.ID = nextWidgetID()
	w.Visible = true
}

// NewButton creates a focusable, clickable widget with the given label.
func NewButton(name, label string, rect Rect) *Widget {
	w := &Widget{Name: name, Type: WidgetButton, Label: label, Rect: rect, Focusable: true}
	widgetDefaults(w)
	return w
}

// NewText creates a non-interactive label widget.
func NewText(name, label string, rect Rect) *Widget {
	w := &Widget{Name: name, Type: WidgetText, Label: label, Rect: rect}
	widgetDefaults(w)
	return w
}

// NewImage creates a widget that draws the given image at its rectangle.
func NewImage(name string, img *ebiten.Image, rect Rect) *Widget {
	w := &Widget{Name: name, Type: WidgetImage, Image: img, Rect: rect}
	widgetDefaults(w)
	return w
}

// NewPanel creates a plain rectangle widget, typically used as a background.
func NewPanel(name string, rect Rect) *Widget {
	w := &Widget{Name: name, Type: WidgetPanel, Rect: rect}
	widgetDefaults(w)
	return w
}

// State returns the widget's current visual state.
func (w *Widget) State() WidgetState {
	return w.state
}

// Contains reports whether the game-space point (x, y) lies inside the
// widget's rectangle. Invisible or disabled widgets are never hit.
func (w *Widget) Contains(x, y float64) bool {
	if !w.Visible || w.Disabled {
		return false
	}
	return w.Rect.Contains(x, y)
}

// Neighbor returns the neighbor link for the given direction, or nil.
func (w *Widget) Neighbor(dir Direction) *Widget {
	switch dir {
	case DirUp:
		return w.Up
	case DirDown:
		return w.Down
	case DirLeft:
		return w.Left
	case DirRight:
		return w.Right
	}
	return nil
}

// SetNeighbor sets the neighbor link for the given direction.
func (w *Widget) SetNeighbor(dir Direction, other *Widget) {
	switch dir {
	case DirUp:
		w.Up = other
	case DirDown:
		w.Down = other
	case DirLeft:
		w.Left = other
	case DirRight:
		w.Right = other
	}
}

// LinkVertical wires widgets into a top-to-bottom focus chain:
// each widget's Down points at the next, the next's Up points back.
func LinkVertical(widgets ...*Widget) {
	for i := 0; i < len(widgets)-1; i++ {
		widgets[i].Down = widgets[i+1]
		widgets[i+1].Up = widgets[i]
	}
}

// LinkHorizontal wires widgets into a left-to-right focus chain.
func LinkHorizontal(widgets ...*Widget) {
	for i := 0; i < len(widgets)-1; i++ {
		widgets[i].Right = widgets[i+1]
		widgets[i+1].Left = widgets[i]
	}
}

// Dispose marks the widget as dead and clears callbacks, neighbor links, and
// references so nothing dangles. Safe to call twice.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.ID = 0
	w.Up, w.Down, w.Left, w.Right = nil, nil, nil, nil
	w.Image = nil
	w.UserData = nil
	w.highlight = nil
	w.OnClick = nil
	w.OnPress = nil
	w.OnRelease = nil
	w.OnHoverStart = nil
	w.OnHoverEnd = nil
	w.OnFocusStart = nil
	w.OnFocusEnd = nil
	w.OnActivate = nil
}

// IsDisposed returns true if this widget has been disposed.
func (w *Widget) IsDisposed() bool {
	return w.disposed
}
