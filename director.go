package ember

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrSceneNotFound is returned by SetScene for a name that was never
// registered. The current scene is left untouched.
var ErrSceneNotFound = errors.New("scene not found")

// Scene is a named, self-contained screen owning its own widgets, entities,
// and systems. Exactly one scene is current at a time.
//
// Enter populates the scene: register widgets with the runtime's Registry,
// spawn entities, add systems. Exit tears all of that down again — the scene
// is responsible for unregistering its widgets, though the Director sweeps
// the Registry afterwards so a sloppy Exit cannot leak widgets into the next
// scene. A scene's widgets never outlive the scene.
type Scene interface {
	Enter(rt *Runtime) error
	Exit() error
	Update(dt float64)
	Draw(screen *ebiten.Image)
}

// SceneFactory constructs a fresh scene instance. A new instance is built on
// every transition; scenes hold no state across visits unless they persist it
// themselves.
type SceneFactory func() Scene

// Director owns transitions between named scenes and forwards per-frame
// update/draw calls to the current one.
type Director struct {
	rt        *Runtime
	factories map[string]SceneFactory
	current   Scene
	name      string
}

func newDirector(rt *Runtime) *Director {
	return &Director{rt: rt, factories: make(map[string]SceneFactory)}
}

// Register makes a scene constructible under the given name. Registering the
// same name twice replaces the factory.
func (d *Director) Register(name string, factory SceneFactory) {
	d.factories[name] = factory
}

// Current returns the name of the current scene, or "" before the first
// transition.
func (d *Director) Current() string {
	return d.name
}

// CurrentScene returns the current scene instance, or nil.
func (d *Director) CurrentScene() Scene {
	return d.current
}

// SetScene transitions to the named scene:
//
//  1. An unregistered name fails with ErrSceneNotFound; the current scene is
//     unchanged.
//  2. The current scene's Exit runs. Exit failures are only logged — the
//     transition proceeds regardless, with no partial-transition rollback.
//     The Registry is then swept clean of any widgets Exit left behind.
//  3. The new scene is constructed and entered.
//
// An Enter failure is returned wrapped, but the new scene is still current:
// there is nothing coherent to roll back to.
func (d *Director) SetScene(name string) error {
	factory, ok := d.factories[name]
	if !ok {
		logger.Warn("scene not registered", "name", name)
		return fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}

	if d.current != nil {
		if err := d.current.Exit(); err != nil {
			logger.Warn("scene exit failed", "scene", d.name, "error", err)
		}
		d.rt.UI().Clear()
	}

	next := factory()
	d.current = next
	d.name = name
	if err := next.Enter(d.rt); err != nil {
		return fmt.Errorf("enter scene %q: %w", name, err)
	}
	logger.Debug("scene changed", "scene", name)
	return nil
}

// Update delegates to the current scene only.
func (d *Director) Update(dt float64) {
	if d.current != nil {
		d.current.Update(dt)
	}
}

// Draw delegates to the current scene only.
func (d *Director) Draw(screen *ebiten.Image) {
	if d.current != nil {
		d.current.Draw(screen)
	}
}
