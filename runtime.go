package ember

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RuntimeConfig configures a Runtime. Zero-value fields use defaults
// (640×360 game plane, default arbitration windows).
type RuntimeConfig struct {
	GameWidth  float64
	GameHeight float64
	Arbitrator ArbitratorConfig
}

// Runtime ties the input arbitrator, UI registry, scene director, and device
// poller together behind one explicit context object. There is no package
// global state: everything a frame needs hangs off the Runtime, and all of it
// is confined to the single game-loop goroutine.
//
// Per-frame order (Step): clock advance → Arbitrator.Tick → scripted/injected
// or real device events → widget highlight tweens → current scene update
// (which runs its World's systems). Draw runs the current scene's Draw, then
// the widget layer on top.
type Runtime struct {
	arb      *Arbitrator
	ui       *Registry
	director *Director
	view     *Viewport
	theme    *Theme

	now     float64
	polling bool
	poller  devicePoller

	injectQueue []syntheticEvent
	script      *ScriptRunner
}

// NewRuntime creates a runtime and wires the arbitrator's class-change and
// direction channels into the registry's routing.
func NewRuntime(cfg RuntimeConfig) *Runtime {
	if cfg.GameWidth == 0 {
		cfg.GameWidth = 640
	}
	if cfg.GameHeight == 0 {
		cfg.GameHeight = 360
	}
	rt := &Runtime{
		arb:     NewArbitrator(cfg.Arbitrator),
		ui:      NewRegistry(),
		view:    NewViewport(cfg.GameWidth, cfg.GameHeight),
		theme:   DefaultTheme(),
		polling: true,
	}
	rt.director = newDirector(rt)
	rt.arb.OnClassChange(func(c InputClass) {
		logger.Debug("input class changed", "class", c.String())
		rt.ui.ApplyClass(c)
	})
	rt.arb.OnDirection(func(d Direction) {
		rt.ui.Navigate(d)
	})
	return rt
}

// Arbitrator returns the input arbitrator.
func (rt *Runtime) Arbitrator() *Arbitrator { return rt.arb }

// UI returns the widget registry.
func (rt *Runtime) UI() *Registry { return rt.ui }

// Director returns the scene lifecycle controller.
func (rt *Runtime) Director() *Director { return rt.director }

// View returns the screen↔game coordinate transform.
func (rt *Runtime) View() *Viewport { return rt.view }

// Now returns the runtime's monotonic clock in seconds.
func (rt *Runtime) Now() float64 { return rt.now }

// SetTheme replaces the widget drawing theme. Nil restores the default.
func (rt *Runtime) SetTheme(t *Theme) {
	if t == nil {
		t = DefaultTheme()
	}
	rt.theme = t
}

// SetDevicePolling enables or disables real device polling. Disable it in
// headless tests that drive the runtime through injection only.
func (rt *Runtime) SetDevicePolling(enabled bool) {
	rt.polling = enabled
}

// Update advances the runtime by one fixed tick. Call from ebiten's Update.
func (rt *Runtime) Update() {
	rt.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the runtime by dt seconds. Split out from Update so tests can
// drive frames with an explicit, deterministic clock.
func (rt *Runtime) Step(dt float64) {
	rt.now += dt
	rt.arb.Tick(rt.now)

	if rt.script != nil {
		rt.script.step(rt)
	}
	if !rt.processInjected() && rt.polling {
		rt.poller.poll(rt, rt.now)
	}

	for _, w := range rt.ui.Widgets() {
		w.advanceHighlight(dt)
	}
	rt.director.Update(dt)
}

// Draw renders the current scene, then the widget layer on top of it.
func (rt *Runtime) Draw(screen *ebiten.Image) {
	rt.director.Draw(screen)
	DrawWidgets(screen, rt.ui, rt.view, rt.theme)
}
