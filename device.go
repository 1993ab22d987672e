package ember

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// devicePoller reads raw device state from ebiten once per frame, classifies
// it, and feeds the arbitrator and registry. Discrete events (key and button
// presses) are edge-detected with inpututil; analog stick pulses rely on the
// arbitrator's repeat delay instead.
type devicePoller struct {
	initialized bool
	prevMouseX  int
	prevMouseY  int

	keys       []ebiten.Key
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID

	primaryTouch ebiten.TouchID
	touchActive  bool
	lastTouchX   float64
	lastTouchY   float64
}

func (p *devicePoller) poll(rt *Runtime, now float64) {
	p.pollKeyboard(rt, now)
	p.pollMouse(rt, now)
	p.pollGamepads(rt, now)
	p.pollTouch(rt, now)
	p.initialized = true
}

func (p *devicePoller) pollKeyboard(rt *Runtime, now float64) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		rt.arb.ReportActivity(InputKeyboard, now)
		switch k {
		case ebiten.KeyArrowUp, ebiten.KeyW:
			rt.arb.ReportDirection(InputKeyboard, DirUp, now, false)
		case ebiten.KeyArrowDown, ebiten.KeyS:
			rt.arb.ReportDirection(InputKeyboard, DirDown, now, false)
		case ebiten.KeyArrowLeft, ebiten.KeyA:
			rt.arb.ReportDirection(InputKeyboard, DirLeft, now, false)
		case ebiten.KeyArrowRight, ebiten.KeyD:
			rt.arb.ReportDirection(InputKeyboard, DirRight, now, false)
		case ebiten.KeyEnter, ebiten.KeyKPEnter, ebiten.KeySpace:
			if rt.arb.Current() == InputKeyboard {
				rt.ui.Activate()
			}
		}
	}
}

func (p *devicePoller) pollMouse(rt *Runtime, now float64) {
	mx, my := ebiten.CursorPosition()
	moved := p.initialized && (mx != p.prevMouseX || my != p.prevMouseY)
	wheelX, wheelY := ebiten.Wheel()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	p.prevMouseX, p.prevMouseY = mx, my

	if moved || pressed || released || wheelX != 0 || wheelY != 0 {
		rt.arb.ReportActivity(InputMouse, now)
	}
	if rt.arb.Current() != InputMouse {
		return
	}
	gx, gy := rt.view.ScreenToGame(float64(mx), float64(my))
	if moved {
		rt.ui.PointerMove(gx, gy)
	}
	if pressed {
		rt.ui.PointerPress(gx, gy)
	}
	if released {
		rt.ui.PointerRelease(gx, gy)
	}
}

func (p *devicePoller) pollGamepads(rt *Runtime, now float64) {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if !inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				continue
			}
			rt.arb.ReportActivity(InputGamepad, now)
			switch b {
			case ebiten.StandardGamepadButtonLeftTop:
				rt.arb.ReportDirection(InputGamepad, DirUp, now, false)
			case ebiten.StandardGamepadButtonLeftBottom:
				rt.arb.ReportDirection(InputGamepad, DirDown, now, false)
			case ebiten.StandardGamepadButtonLeftLeft:
				rt.arb.ReportDirection(InputGamepad, DirLeft, now, false)
			case ebiten.StandardGamepadButtonLeftRight:
				rt.arb.ReportDirection(InputGamepad, DirRight, now, false)
			case ebiten.StandardGamepadButtonRightBottom:
				if rt.arb.Current() == InputGamepad {
					rt.ui.Activate()
				}
			}
		}

		ax := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ay := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		dz := rt.arb.StickDeadzone()
		if math.Abs(ax) < dz && math.Abs(ay) < dz {
			continue
		}
		var dir Direction
		if math.Abs(ax) >= math.Abs(ay) {
			dir = DirRight
			if ax < 0 {
				dir = DirLeft
			}
		} else {
			dir = DirDown
			if ay < 0 {
				dir = DirUp
			}
		}
		rt.arb.ReportDirection(InputGamepad, dir, now, true)
	}
}

// pollTouch tracks a single primary touch and maps it onto the pointer path:
// begin = press, move = move, end = release at the last known position.
// Additional simultaneous touches count as activity but do not interact.
func (p *devicePoller) pollTouch(rt *Runtime, now float64) {
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, tid := range p.touchIDs {
		rt.arb.ReportActivity(InputTouch, now)
		if p.touchActive {
			continue
		}
		p.touchActive = true
		p.primaryTouch = tid
		tx, ty := ebiten.TouchPosition(tid)
		gx, gy := rt.view.ScreenToGame(float64(tx), float64(ty))
		p.lastTouchX, p.lastTouchY = gx, gy
		if rt.arb.Current() == InputTouch {
			rt.ui.PointerPress(gx, gy)
		}
	}

	if !p.touchActive {
		return
	}
	if inpututil.IsTouchJustReleased(p.primaryTouch) {
		p.touchActive = false
		rt.arb.ReportActivity(InputTouch, now)
		if rt.arb.Current() == InputTouch {
			rt.ui.PointerRelease(p.lastTouchX, p.lastTouchY)
		}
		return
	}
	tx, ty := ebiten.TouchPosition(p.primaryTouch)
	gx, gy := rt.view.ScreenToGame(float64(tx), float64(ty))
	if gx != p.lastTouchX || gy != p.lastTouchY {
		rt.arb.ReportActivity(InputTouch, now)
		if rt.arb.Current() == InputTouch {
			rt.ui.PointerMove(gx, gy)
		}
		p.lastTouchX, p.lastTouchY = gx, gy
	}
}
