package ember

import "testing"

const testDT = 1.0 / 60.0

// newTestRuntime builds a headless runtime with tight arbitration windows so
// injected events from different classes can interleave within a few frames.
func newTestRuntime() *Runtime {
	rt := NewRuntime(RuntimeConfig{
		Arbitrator: ArbitratorConfig{
			TimeoutSeconds:  5.0,
			CooldownSeconds: 0.01,
		},
	})
	rt.SetDevicePolling(false)
	return rt
}

func stepFrames(rt *Runtime, n int) {
	for i := 0; i < n; i++ {
		rt.Step(testDT)
	}
}

func TestRuntime_Defaults(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{})
	if rt.View().GameWidth != 640 || rt.View().GameHeight != 360 {
		t.Errorf("game plane = %vx%v, want 640x360", rt.View().GameWidth, rt.View().GameHeight)
	}
	if rt.Arbitrator().Current() != InputNone {
		t.Errorf("Current() = %v, want InputNone", rt.Arbitrator().Current())
	}
	if rt.Now() != 0 {
		t.Errorf("Now() = %v, want 0", rt.Now())
	}
}

func TestRuntime_InjectedPointerFlow(t *testing.T) {
	rt := newTestRuntime()
	btn := NewButton("play", "Play", Rect{X: 100, Y: 100, Width: 120, Height: 40})
	var clicked int
	btn.OnClick = func() { clicked++ }
	rt.UI().Add(btn)

	rt.InjectPointerMove(150, 120)
	rt.Step(testDT)
	if rt.Arbitrator().Current() != InputMouse {
		t.Fatalf("Current() = %v, want InputMouse", rt.Arbitrator().Current())
	}
	if rt.UI().Hovered() != btn {
		t.Fatalf("Hovered() = %v, want the button", rt.UI().Hovered())
	}

	rt.InjectClick(150, 120)
	stepFrames(rt, 2) // press, then release
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestRuntime_OneInjectedEventPerFrame(t *testing.T) {
	rt := newTestRuntime()
	rt.InjectPointerMove(0, 0)
	rt.InjectPointerMove(1, 1)
	rt.InjectPointerMove(2, 2)

	want := []int{2, 1, 0}
	for i, n := range want {
		rt.Step(testDT)
		if rt.PendingInjected() != n {
			t.Errorf("after frame %d: PendingInjected() = %d, want %d", i+1, rt.PendingInjected(), n)
		}
	}
}

func TestRuntime_DirectionClaimsClassAndNavigates(t *testing.T) {
	rt := newTestRuntime()
	a := NewButton("a", "a", Rect{Y: 0, Width: 100, Height: 40})
	b := NewButton("b", "b", Rect{Y: 50, Width: 100, Height: 40})
	LinkVertical(a, b)
	rt.UI().Add(a)
	rt.UI().Add(b)

	// The first keyboard pulse switches the class (auto-focusing the first
	// focusable widget) and then navigates along its link.
	rt.InjectDirection(InputKeyboard, DirDown)
	rt.Step(testDT)
	if rt.Arbitrator().Current() != InputKeyboard {
		t.Fatalf("Current() = %v, want InputKeyboard", rt.Arbitrator().Current())
	}
	if rt.UI().Focused() != b {
		t.Errorf("Focused() = %v, want b", rt.UI().Focused())
	}

	rt.InjectDirection(InputKeyboard, DirUp)
	rt.Step(testDT)
	if rt.UI().Focused() != a {
		t.Errorf("Focused() = %v, want a", rt.UI().Focused())
	}
}

func TestRuntime_ActivateFiresFocusedWidget(t *testing.T) {
	rt := newTestRuntime()
	a := NewButton("a", "a", Rect{Width: 100, Height: 40})
	var activated int
	a.OnClick = func() { activated++ }
	rt.UI().Add(a)

	rt.InjectDirection(InputKeyboard, DirDown)
	rt.InjectActivate(InputKeyboard)
	stepFrames(rt, 2)
	if activated != 1 {
		t.Errorf("activated = %d, want 1", activated)
	}
}

func TestRuntime_ClassSwitchMouseToKeyboard(t *testing.T) {
	rt := newTestRuntime()
	a := NewButton("a", "a", Rect{Width: 100, Height: 40})
	c := NewButton("c", "c", Rect{X: 200, Width: 100, Height: 40})
	rt.UI().Add(a)
	rt.UI().Add(c)

	rt.InjectPointerMove(210, 20)
	rt.Step(testDT)
	if rt.UI().Hovered() != c {
		t.Fatalf("Hovered() = %v, want c", rt.UI().Hovered())
	}

	rt.InjectDirection(InputKeyboard, DirDown)
	rt.Step(testDT)
	if rt.Arbitrator().Current() != InputKeyboard {
		t.Fatalf("Current() = %v, want InputKeyboard", rt.Arbitrator().Current())
	}
	if rt.UI().Hovered() != nil {
		t.Error("hover should be cleared on switch to the directional path")
	}
	if rt.UI().Focused() != a {
		t.Errorf("Focused() = %v, want a (first focusable in insertion order)", rt.UI().Focused())
	}
}

func TestRuntime_TimeoutPreservesUIState(t *testing.T) {
	rt := NewRuntime(RuntimeConfig{
		Arbitrator: ArbitratorConfig{TimeoutSeconds: 0.1, CooldownSeconds: 0.01},
	})
	rt.SetDevicePolling(false)
	a := NewButton("a", "a", Rect{Width: 100, Height: 40})
	rt.UI().Add(a)

	rt.InjectDirection(InputKeyboard, DirDown)
	rt.Step(testDT)
	if rt.UI().Focused() != a {
		t.Fatalf("setup failed: focused=%v", rt.UI().Focused())
	}

	stepFrames(rt, 20) // well past the 0.1s timeout
	if rt.Arbitrator().Current() != InputNone {
		t.Fatalf("Current() = %v, want InputNone after timeout", rt.Arbitrator().Current())
	}
	if rt.UI().Focused() != a {
		t.Errorf("Focused() = %v, want a (timeout preserves UI state)", rt.UI().Focused())
	}
}

func TestRuntime_TouchInjection(t *testing.T) {
	rt := newTestRuntime()
	btn := NewButton("tap", "Tap", Rect{Width: 100, Height: 40})
	var clicked int
	btn.OnClick = func() { clicked++ }
	rt.UI().Add(btn)

	rt.InjectTouch(50, 20)
	stepFrames(rt, 2)
	if rt.Arbitrator().Current() != InputTouch {
		t.Errorf("Current() = %v, want InputTouch", rt.Arbitrator().Current())
	}
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestRuntime_StepAdvancesClock(t *testing.T) {
	rt := newTestRuntime()
	stepFrames(rt, 3)
	want := 3 * testDT
	if diff := rt.Now() - want; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("Now() = %v, want %v", rt.Now(), want)
	}
}
