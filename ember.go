package ember

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Direction identifies a focus-navigation direction.
type Direction uint8

const (
	DirUp    Direction = iota // move focus upward
	DirDown                   // move focus downward
	DirLeft                   // move focus leftward
	DirRight                  // move focus rightward
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of widget interaction event.
type EventType uint8

const (
	EventHoverStart EventType = iota // pointer entered a widget's bounds
	EventHoverEnd                    // pointer left a widget's bounds
	EventPress                       // pointer button pressed over a widget
	EventRelease                     // pointer button released while a widget was pressed
	EventClick                       // press then release over the same widget
	EventFocusStart                  // widget gained directional focus
	EventFocusEnd                    // widget lost directional focus
	EventActivate                    // focused widget activated via confirm key/button
)

// InteractionEvent carries interaction data for the ECS bridge.
// X and Y are in game coordinates and are zero for focus events.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	X        float64
	Y        float64
}

// EntityStore is the interface for optional ECS integration.
// When set on a Registry, interaction events on widgets with a non-zero
// EntityID are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}
