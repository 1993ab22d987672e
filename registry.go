package ember

// Registry owns the live set of widgets and the three singleton interaction
// references: hovered (pointer path), active (currently pressed, pointer path
// only), and focused (directional path). Insertion order is paint order and
// hit-test priority: the topmost widget is the last inserted, and hit testing
// walks the slice in reverse.
//
// The hovered, active, and focused references always point at a registered
// widget or are nil — removing a widget clears any reference to it.
//
// Which interaction path processes events is decided by the input class fed
// through ApplyClass every time the Arbitrator changes its mind:
//
//   - pointer classes (mouse, touch): pointer path active, focus cleared;
//   - directional classes (keyboard, gamepad): directional path active, the
//     first focusable widget auto-selected when nothing is focused;
//   - none: neither path processes events, existing state is preserved.
type Registry struct {
	widgets []*Widget

	hovered *Widget
	active  *Widget
	focused *Widget

	class InputClass
	store EntityStore
}

// NewRegistry creates an empty registry. The input class starts as InputNone,
// so neither interaction path is live until ApplyClass is called.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetEntityStore sets the optional ECS bridge. Interaction events on widgets
// with a non-zero EntityID are forwarded to it.
func (r *Registry) SetEntityStore(store EntityStore) {
	r.store = store
}

// Widgets returns the registered widgets in insertion (paint) order.
// The returned slice MUST NOT be mutated.
func (r *Registry) Widgets() []*Widget {
	return r.widgets
}

// Hovered returns the widget under the pointer, or nil.
func (r *Registry) Hovered() *Widget { return r.hovered }

// Active returns the widget currently pressed by the pointer, or nil.
func (r *Registry) Active() *Widget { return r.active }

// Focused returns the widget holding directional focus, or nil.
func (r *Registry) Focused() *Widget { return r.focused }

// Class returns the input class the registry last routed for.
func (r *Registry) Class() InputClass { return r.class }

// Add registers a widget. Adding nil or an already-registered widget is a no-op.
func (r *Registry) Add(w *Widget) {
	if w == nil || r.contains(w) {
		return
	}
	r.widgets = append(r.widgets, w)
}

// Remove unregisters a widget. Removing an unknown widget is a no-op, not an
// error, but any of the three singleton references pointing at it are still
// cleared so nothing dangles. No callbacks fire; the widget is on its way out.
func (r *Registry) Remove(w *Widget) {
	if w == nil {
		return
	}
	if r.hovered == w {
		r.hovered = nil
	}
	if r.active == w {
		r.active = nil
	}
	if r.focused == w {
		r.focused = nil
	}
	for i, x := range r.widgets {
		if x == w {
			copy(r.widgets[i:], r.widgets[i+1:])
			r.widgets[len(r.widgets)-1] = nil
			r.widgets = r.widgets[:len(r.widgets)-1]
			break
		}
	}
	r.refreshState(w)
}

// Clear unregisters every widget and resets the three singleton references.
// Widgets are not disposed; their owning scene remains responsible for that.
func (r *Registry) Clear() {
	r.hovered = nil
	r.active = nil
	r.focused = nil
	for i := range r.widgets {
		r.widgets[i] = nil
	}
	r.widgets = r.widgets[:0]
}

// SetFocused moves directional focus to w (or clears it when w is nil).
// Fires OnFocusEnd on the previously focused widget, then OnFocusStart on the
// new one. Reassigning the same widget is a no-op: no duplicate start events.
func (r *Registry) SetFocused(w *Widget) {
	if w == r.focused {
		return
	}
	prev := r.focused
	r.focused = w
	if prev != nil {
		if prev.OnFocusEnd != nil {
			prev.OnFocusEnd()
		}
		r.emit(EventFocusEnd, prev, 0, 0)
		r.refreshState(prev)
	}
	if w != nil {
		if w.OnFocusStart != nil {
			w.OnFocusStart()
		}
		r.emit(EventFocusStart, w, 0, 0)
		r.refreshState(w)
	}
}

// ApplyClass switches the registry's routing between the pointer and
// directional paths. Called by the runtime on every arbitrator class change.
func (r *Registry) ApplyClass(class InputClass) {
	if class == r.class {
		return
	}
	r.class = class
	switch {
	case class.IsPointer():
		// Focus is meaningless without a pointed target.
		r.SetFocused(nil)
	case class.IsDirectional():
		// Pointer state cannot update while the directional path owns input.
		r.setHovered(nil, 0, 0)
		r.clearActive()
		if r.focused == nil {
			r.focusFirst()
		}
	default:
		// InputNone: preserve existing state until a class becomes active.
	}
}

// --- Pointer path ---

// PointerMove hit-tests widgets in reverse insertion order and updates the
// hovered reference, firing OnHoverEnd/OnHoverStart on a target change.
// No-op unless a pointer class is current.
func (r *Registry) PointerMove(x, y float64) {
	if !r.class.IsPointer() {
		return
	}
	r.setHovered(r.hitTest(x, y), x, y)
}

// PointerPress re-evaluates hover at (x, y), then presses the hovered widget:
// it becomes the active widget and OnPress fires. No-op with nothing hovered.
func (r *Registry) PointerPress(x, y float64) {
	if !r.class.IsPointer() {
		return
	}
	r.setHovered(r.hitTest(x, y), x, y)
	if r.hovered == nil {
		return
	}
	r.active = r.hovered
	if r.active.OnPress != nil {
		r.active.OnPress()
	}
	r.emit(EventPress, r.active, x, y)
	r.refreshState(r.active)
}

// PointerRelease re-evaluates hover at (x, y) and releases the active widget:
// OnRelease always fires; the click callback fires only if the release landed
// on the widget that was pressed (press-and-drag-off cancels the click).
func (r *Registry) PointerRelease(x, y float64) {
	if !r.class.IsPointer() {
		return
	}
	r.setHovered(r.hitTest(x, y), x, y)
	w := r.active
	if w == nil {
		return
	}
	r.active = nil
	if w.OnRelease != nil {
		w.OnRelease()
	}
	r.emit(EventRelease, w, x, y)
	if w == r.hovered {
		if w.OnClick != nil {
			w.OnClick()
		}
		r.emit(EventClick, w, x, y)
	}
	r.refreshState(w)
}

// hitTest returns the topmost widget containing (x, y), or nil.
func (r *Registry) hitTest(x, y float64) *Widget {
	for i := len(r.widgets) - 1; i >= 0; i-- {
		if r.widgets[i].Contains(x, y) {
			return r.widgets[i]
		}
	}
	return nil
}

func (r *Registry) setHovered(w *Widget, x, y float64) {
	if w == r.hovered {
		return
	}
	prev := r.hovered
	r.hovered = w
	if prev != nil {
		if prev.OnHoverEnd != nil {
			prev.OnHoverEnd()
		}
		r.emit(EventHoverEnd, prev, x, y)
		r.refreshState(prev)
	}
	if w != nil {
		if w.OnHoverStart != nil {
			w.OnHoverStart()
		}
		r.emit(EventHoverStart, w, x, y)
		r.refreshState(w)
	}
}

func (r *Registry) clearActive() {
	w := r.active
	if w == nil {
		return
	}
	r.active = nil
	r.refreshState(w)
}

// --- Directional path ---

// Navigate moves focus along the focused widget's neighbor link for the given
// direction. With no focused widget it selects the first focusable one. A
// missing link or a non-focusable neighbor is silently a no-op: that is the
// edge of the graph, and there is no wraparound.
func (r *Registry) Navigate(dir Direction) {
	if !r.class.IsDirectional() {
		return
	}
	if r.focused == nil {
		r.focusFirst()
		return
	}
	next := r.focused.Neighbor(dir)
	if next == nil || !next.Focusable || next.Disabled || !r.contains(next) {
		return
	}
	r.SetFocused(next)
}

// Activate forwards a confirm key/button to the focused widget: OnActivate if
// set, otherwise the click callback. No-op without a focused widget.
func (r *Registry) Activate() {
	if !r.class.IsDirectional() {
		return
	}
	w := r.focused
	if w == nil {
		return
	}
	switch {
	case w.OnActivate != nil:
		w.OnActivate()
	case w.OnClick != nil:
		w.OnClick()
	}
	r.emit(EventActivate, w, 0, 0)
}

// focusFirst selects the first focusable widget in insertion order.
func (r *Registry) focusFirst() {
	for _, w := range r.widgets {
		if w.Focusable && !w.Disabled && w.Visible {
			r.SetFocused(w)
			return
		}
	}
}

// --- Internal ---

func (r *Registry) contains(w *Widget) bool {
	for _, x := range r.widgets {
		if x == w {
			return true
		}
	}
	return false
}

// refreshState recomputes a widget's visual state from the three singleton
// references. Pressed wins over hovered, hovered over focused.
func (r *Registry) refreshState(w *Widget) {
	state := StateNormal
	switch {
	case r.active == w:
		state = StatePressed
	case r.hovered == w:
		state = StateHovered
	case r.focused == w:
		state = StateFocused
	}
	w.setState(state)
}

func (r *Registry) emit(eventType EventType, w *Widget, x, y float64) {
	if r.store == nil || w == nil || w.EntityID == 0 {
		return
	}
	r.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: w.EntityID,
		X:        x,
		Y:        y,
	})
}
