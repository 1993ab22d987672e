package ember

import "math"

// InputClass identifies the device category currently owning UI dispatch.
type InputClass uint8

const (
	InputNone     InputClass = iota // no device has produced input recently
	InputKeyboard                   // keyboard keys
	InputMouse                      // mouse move/buttons/wheel
	InputGamepad                    // gamepad buttons or analog sticks
	InputTouch                      // touch screen
	numInputClasses
)

// String returns the lowercase name of the input class.
func (c InputClass) String() string {
	switch c {
	case InputNone:
		return "none"
	case InputKeyboard:
		return "keyboard"
	case InputMouse:
		return "mouse"
	case InputGamepad:
		return "gamepad"
	case InputTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// IsPointer reports whether the class drives the pointer interaction path.
func (c InputClass) IsPointer() bool {
	return c == InputMouse || c == InputTouch
}

// IsDirectional reports whether the class drives the focus-navigation path.
func (c InputClass) IsDirectional() bool {
	return c == InputKeyboard || c == InputGamepad
}

// --- Defaults ---

const (
	defaultClassTimeout     = 5.0 // seconds of silence before reverting to InputNone
	defaultClassCooldown    = 1.0 // seconds a new class must wait after a class change
	defaultStickDeadzone    = 0.5 // minimum axis magnitude on a [-1,1] axis
	defaultStickRepeatDelay = 0.2 // seconds between analog-stick direction pulses
)

// ArbitratorConfig tunes the input arbitration windows. Zero fields use the
// package defaults.
type ArbitratorConfig struct {
	TimeoutSeconds   float64
	CooldownSeconds  float64
	StickDeadzone    float64
	StickRepeatDelay float64
}

func (c ArbitratorConfig) withDefaults() ArbitratorConfig {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = defaultClassTimeout
	}
	if c.CooldownSeconds == 0 {
		c.CooldownSeconds = defaultClassCooldown
	}
	if c.StickDeadzone == 0 {
		c.StickDeadzone = defaultStickDeadzone
	}
	if c.StickRepeatDelay == 0 {
		c.StickRepeatDelay = defaultStickRepeatDelay
	}
	return c
}

// --- Handler registry ---

type classHandler struct {
	id uint32
	fn func(InputClass)
}

type directionHandler struct {
	id uint32
	fn func(Direction)
}

// ArbitratorHandle allows removing a registered arbitrator callback.
type ArbitratorHandle struct {
	id  uint32
	arb *Arbitrator
	dir bool
}

// Remove unregisters this callback so it no longer fires.
func (h ArbitratorHandle) Remove() {
	if h.arb == nil {
		return
	}
	if h.dir {
		h.arb.dirHandlers = removeDirectionHandler(h.arb.dirHandlers, h.id)
	} else {
		h.arb.classHandlers = removeClassHandler(h.arb.classHandlers, h.id)
	}
}

func removeClassHandler(s []classHandler, id uint32) []classHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = classHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDirectionHandler(s []directionHandler, id uint32) []directionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = directionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Arbitrator ---

// Arbitrator decides, frame by frame, which input class is active. It applies
// two hysteresis windows to avoid flicker when several devices produce
// near-simultaneous events (e.g. a gamepad with pass-through mouse emulation):
//
//   - cooldown: a newly observed class cannot displace the current class until
//     CooldownSeconds have elapsed since the last class change. The cooldown
//     window resets only on actual class changes, not on every activity report.
//   - timeout: with no activity from the current class for TimeoutSeconds, the
//     class reverts to InputNone. Timeout always wins over cooldown.
//
// All timestamps are caller-supplied seconds on a single monotonic clock.
// The Arbitrator is not safe for concurrent use; confine it to the game loop.
type Arbitrator struct {
	cfg ArbitratorConfig

	current      InputClass
	lastActivity [numInputClasses]float64
	lastChange   float64

	classHandlers []classHandler
	dirHandlers   []directionHandler
	nextID        uint32

	lastStickPulse float64
}

// NewArbitrator creates an arbitrator with the given config. The current class
// starts as InputNone and stays there until a device reports activity.
func NewArbitrator(cfg ArbitratorConfig) *Arbitrator {
	a := &Arbitrator{cfg: cfg.withDefaults(), current: InputNone}
	for i := range a.lastActivity {
		a.lastActivity[i] = math.Inf(-1)
	}
	a.lastChange = math.Inf(-1)
	a.lastStickPulse = math.Inf(-1)
	return a
}

// Current returns the active input class.
func (a *Arbitrator) Current() InputClass {
	return a.current
}

// Config returns the effective configuration after defaults were applied.
func (a *Arbitrator) Config() ArbitratorConfig {
	return a.cfg
}

// OnClassChange registers a callback fired exactly once per net change of the
// current class, including transitions to and from InputNone.
func (a *Arbitrator) OnClassChange(fn func(InputClass)) ArbitratorHandle {
	a.nextID++
	a.classHandlers = append(a.classHandlers, classHandler{id: a.nextID, fn: fn})
	return ArbitratorHandle{id: a.nextID, arb: a}
}

// OnDirection registers a callback for directional pulses (arrow keys, D-pad,
// analog stick past the deadzone). Pulses fire only when their owning class
// is allowed to become or remain current.
func (a *Arbitrator) OnDirection(fn func(Direction)) ArbitratorHandle {
	a.nextID++
	a.dirHandlers = append(a.dirHandlers, directionHandler{id: a.nextID, fn: fn})
	return ArbitratorHandle{id: a.nextID, arb: a, dir: true}
}

// ReportActivity records one raw device event for the given class and attempts
// to make it the current class, subject to the cooldown window. Activity for a
// class under cooldown is never dropped: its timestamp is recorded so that the
// most recently active class wins once the window expires.
func (a *Arbitrator) ReportActivity(class InputClass, now float64) {
	if class == InputNone || class >= numInputClasses {
		return
	}
	a.lastActivity[class] = now
	if class == a.current {
		return
	}
	if a.current != InputNone && now-a.lastChange < a.cfg.CooldownSeconds {
		return
	}
	a.setClass(class, now)
}

// Tick must be called once per frame before any other input processing. It
// reverts the current class to InputNone after TimeoutSeconds of silence from
// that class. Timeout bypasses the cooldown window.
func (a *Arbitrator) Tick(now float64) {
	if a.current == InputNone {
		return
	}
	if now-a.lastActivity[a.current] > a.cfg.TimeoutSeconds {
		a.setClass(InputNone, now)
	}
}

// ReportDirection records a directional event for the given class. The event
// counts as activity, and is forwarded to direction listeners only if the
// class ends up current. Analog-stick pulses (analog=true) are rate-limited by
// StickRepeatDelay; discrete presses fire once per press (the caller performs
// edge detection) and are never rate-limited.
func (a *Arbitrator) ReportDirection(class InputClass, dir Direction, now float64, analog bool) {
	a.ReportActivity(class, now)
	if a.current != class {
		return
	}
	if analog {
		if now-a.lastStickPulse < a.cfg.StickRepeatDelay {
			return
		}
		a.lastStickPulse = now
	}
	for _, h := range a.dirHandlers {
		h.fn(dir)
	}
}

// StickDeadzone returns the minimum axis magnitude treated as a direction.
func (a *Arbitrator) StickDeadzone() float64 {
	return a.cfg.StickDeadzone
}

// setClass is the single code path through which the current class changes.
func (a *Arbitrator) setClass(class InputClass, now float64) {
	if class == a.current {
		return
	}
	a.current = class
	a.lastChange = now
	for _, h := range a.classHandlers {
		h.fn(class)
	}
}
