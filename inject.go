package ember

// syntheticKind identifies an injected event's dispatch path.
type syntheticKind uint8

const (
	synthPointerMove syntheticKind = iota
	synthPointerPress
	synthPointerRelease
	synthDirection
	synthActivate
)

// syntheticEvent is a single injected device event. Coordinates are in game
// space. Events flow through the exact same arbitration and dispatch code as
// real device input, one event per frame.
type syntheticEvent struct {
	kind  syntheticKind
	class InputClass
	x, y  float64
	dir   Direction
}

// InjectPointerMove queues a mouse-class pointer move at game coordinates.
// The event is consumed on the next frame's Step.
func (rt *Runtime) InjectPointerMove(x, y float64) {
	rt.injectQueue = append(rt.injectQueue, syntheticEvent{kind: synthPointerMove, class: InputMouse, x: x, y: y})
}

// InjectPointerPress queues a mouse-class pointer press at game coordinates.
func (rt *Runtime) InjectPointerPress(x, y float64) {
	rt.injectQueue = append(rt.injectQueue, syntheticEvent{kind: synthPointerPress, class: InputMouse, x: x, y: y})
}

// InjectPointerRelease queues a mouse-class pointer release at game coordinates.
func (rt *Runtime) InjectPointerRelease(x, y float64) {
	rt.injectQueue = append(rt.injectQueue, syntheticEvent{kind: synthPointerRelease, class: InputMouse, x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two frames.
func (rt *Runtime) InjectClick(x, y float64) {
	rt.InjectPointerPress(x, y)
	rt.InjectPointerRelease(x, y)
}

// InjectTouch queues a touch-class press/release pair at game coordinates.
func (rt *Runtime) InjectTouch(x, y float64) {
	rt.injectQueue = append(rt.injectQueue,
		syntheticEvent{kind: synthPointerPress, class: InputTouch, x: x, y: y},
		syntheticEvent{kind: synthPointerRelease, class: InputTouch, x: x, y: y})
}

// InjectDirection queues a discrete directional event for the given class
// (keyboard or gamepad).
func (rt *Runtime) InjectDirection(class InputClass, dir Direction) {
	rt.injectQueue = append(rt.injectQueue, syntheticEvent{kind: synthDirection, class: class, dir: dir})
}

// InjectActivate queues a confirm key/button event for the given class.
func (rt *Runtime) InjectActivate(class InputClass) {
	rt.injectQueue = append(rt.injectQueue, syntheticEvent{kind: synthActivate, class: class})
}

// PendingInjected returns the number of queued synthetic events.
func (rt *Runtime) PendingInjected() int {
	return len(rt.injectQueue)
}

// processInjected pops one queued event and feeds it through arbitration and
// dispatch, identical to real device input. Returns true if an event was
// consumed (real device polling is skipped that frame).
func (rt *Runtime) processInjected() bool {
	if len(rt.injectQueue) == 0 {
		return false
	}
	evt := rt.injectQueue[0]
	copy(rt.injectQueue, rt.injectQueue[1:])
	rt.injectQueue = rt.injectQueue[:len(rt.injectQueue)-1]

	switch evt.kind {
	case synthPointerMove:
		rt.arb.ReportActivity(evt.class, rt.now)
		if rt.arb.Current() == evt.class {
			rt.ui.PointerMove(evt.x, evt.y)
		}
	case synthPointerPress:
		rt.arb.ReportActivity(evt.class, rt.now)
		if rt.arb.Current() == evt.class {
			rt.ui.PointerPress(evt.x, evt.y)
		}
	case synthPointerRelease:
		rt.arb.ReportActivity(evt.class, rt.now)
		if rt.arb.Current() == evt.class {
			rt.ui.PointerRelease(evt.x, evt.y)
		}
	case synthDirection:
		rt.arb.ReportDirection(evt.class, evt.dir, rt.now, false)
	case synthActivate:
		rt.arb.ReportActivity(evt.class, rt.now)
		if rt.arb.Current() == evt.class {
			rt.ui.Activate()
		}
	}
	return true
}
