package ember

// Entity is a gameplay object: an opaque id, an active flag, and a mapping
// from component tag to component data. At most one component per tag;
// adding a duplicate tag overwrites (last write wins).
type Entity struct {
	ID     string
	Active bool

	components map[string]Component
}

// NewEntity creates an active entity with the given components attached.
func NewEntity(id string, comps ...Component) *Entity {
	e := &Entity{ID: id, Active: true, components: make(map[string]Component, len(comps))}
	e.Add(comps...)
	return e
}

// Add attaches components, overwriting any existing component with the same
// tag. Within one call, a later duplicate tag wins.
func (e *Entity) Add(comps ...Component) {
	for _, c := range comps {
		e.components[c.Tag()] = c
	}
}

// Component returns the component for the given tag. A missing component is
// not an error; callers must check the second return value.
func (e *Entity) Component(tag string) (Component, bool) {
	c, ok := e.components[tag]
	return c, ok
}

// RemoveComponent detaches the component with the given tag, if present.
func (e *Entity) RemoveComponent(tag string) {
	delete(e.components, tag)
}

// Has reports whether the entity carries all of the given tags.
func (e *Entity) Has(tags ...string) bool {
	for _, tag := range tags {
		if _, ok := e.components[tag]; !ok {
			return false
		}
	}
	return true
}

// SystemFunc is a system's per-entity update, called once per matching entity
// per frame.
type SystemFunc func(dt float64, e *Entity)

type system struct {
	name     string
	required []string
	fn       SystemFunc
}

// World is a generic store of entities and systems, owned by a single scene.
// Systems run every frame in the order they were added, each over the subset
// of entities that were active and carried all required component tags at the
// start of that system's pass.
//
// Systems observe a stable entity set per pass: the matching-entity list is
// snapshotted before the pass, and Spawn/Despawn calls made from inside a
// system are deferred to a commit queue flushed between systems. An entity
// spawned by system N is therefore first visible to system N+1, and an entity
// despawned by system N is still visited by N's remaining iterations of the
// current pass (its Active flag is cleared immediately, so later systems in
// the same frame skip it).
type World struct {
	entities []*Entity
	index    map[string]*Entity
	systems  []system

	updating       bool
	pendingSpawn   []*Entity
	pendingDespawn []string

	snapshot []*Entity // reused per-pass buffer
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{index: make(map[string]*Entity)}
}

// Spawn adds an entity to the world. During Update the add is deferred and
// committed between system passes. Spawning an id that already exists
// replaces the old entity.
func (w *World) Spawn(e *Entity) {
	if e == nil {
		return
	}
	if w.updating {
		w.pendingSpawn = append(w.pendingSpawn, e)
		return
	}
	w.spawnNow(e)
}

// Despawn removes the entity with the given id. Unknown ids are a no-op.
// During Update the entity is deactivated immediately and the removal is
// committed between system passes.
func (w *World) Despawn(id string) {
	if w.updating {
		if e, ok := w.index[id]; ok {
			e.Active = false
		}
		w.pendingDespawn = append(w.pendingDespawn, id)
		return
	}
	w.despawnNow(id)
}

// Entity returns the entity with the given id.
func (w *World) Entity(id string) (*Entity, bool) {
	e, ok := w.index[id]
	return e, ok
}

// Entities returns all entities in spawn order, including inactive ones.
// The returned slice MUST NOT be mutated.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Len returns the number of entities in the world.
func (w *World) Len() int {
	return len(w.entities)
}

// AddSystem appends a system that runs over entities carrying all required
// tags. Systems run in the order they were added.
func (w *World) AddSystem(name string, required []string, fn SystemFunc) {
	w.systems = append(w.systems, system{name: name, required: required, fn: fn})
}

// Update runs every system in registration order. Entity mutations requested
// by system callbacks are committed between passes.
func (w *World) Update(dt float64) {
	w.updating = true
	for _, sys := range w.systems {
		w.snapshot = w.snapshot[:0]
		for _, e := range w.entities {
			if e.Active && e.Has(sys.required...) {
				w.snapshot = append(w.snapshot, e)
			}
		}
		for _, e := range w.snapshot {
			sys.fn(dt, e)
		}
		w.commit()
	}
	w.updating = false
}

// Clear removes all entities and systems. Called from scene teardown.
func (w *World) Clear() {
	for i := range w.entities {
		w.entities[i] = nil
	}
	w.entities = w.entities[:0]
	w.systems = nil
	w.pendingSpawn = nil
	w.pendingDespawn = nil
	w.index = make(map[string]*Entity)
}

func (w *World) commit() {
	for _, id := range w.pendingDespawn {
		w.despawnNow(id)
	}
	w.pendingDespawn = w.pendingDespawn[:0]
	for _, e := range w.pendingSpawn {
		w.spawnNow(e)
	}
	w.pendingSpawn = w.pendingSpawn[:0]
}

func (w *World) spawnNow(e *Entity) {
	if old, ok := w.index[e.ID]; ok {
		w.removeFromSlice(old)
	}
	w.index[e.ID] = e
	w.entities = append(w.entities, e)
}

func (w *World) despawnNow(id string) {
	e, ok := w.index[id]
	if !ok {
		return
	}
	delete(w.index, id)
	w.removeFromSlice(e)
}

func (w *World) removeFromSlice(e *Entity) {
	for i, x := range w.entities {
		if x == e {
			copy(w.entities[i:], w.entities[i+1:])
			w.entities[len(w.entities)-1] = nil
			w.entities = w.entities[:len(w.entities)-1]
			return
		}
	}
}
