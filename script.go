package ember

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Dir    string  `json:"dir,omitempty"`
	Class  string  `json:"class,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input events across frames for automated
// testing. Attach to a Runtime via SetScriptRunner; one step executes per
// frame once pending injections have drained.
//
// Supported actions: "move", "press", "release", "click" (x, y),
// "navigate" (dir: up/down/left/right, class: keyboard/gamepad, default
// keyboard), "activate" (class), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a ScriptRunner ready to
// be attached to a Runtime via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a script runner to the runtime. The runner's step
// method is called from Step before input processing each frame.
func (rt *Runtime) SetScriptRunner(runner *ScriptRunner) {
	rt.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Runtime.Step.
func (r *ScriptRunner) step(rt *Runtime) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if rt.PendingInjected() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		rt.InjectPointerMove(st.X, st.Y)
	case "press":
		rt.InjectPointerPress(st.X, st.Y)
	case "release":
		rt.InjectPointerRelease(st.X, st.Y)
	case "click":
		rt.InjectClick(st.X, st.Y)
	case "navigate":
		rt.InjectDirection(scriptClass(st.Class), scriptDirection(st.Dir))
	case "activate":
		rt.InjectActivate(scriptClass(st.Class))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && rt.PendingInjected() == 0 {
		r.done = true
	}
}

func scriptDirection(s string) Direction {
	switch s {
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	default:
		return DirUp
	}
}

func scriptClass(s string) InputClass {
	if s == "gamepad" {
		return InputGamepad
	}
	return InputKeyboard
}
