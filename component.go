package ember

// Component is a plain attribute bag attached to an entity. Each component
// carries its own type tag; an entity holds at most one component per tag.
type Component interface {
	Tag() string
}

// Component tags for the built-in gameplay bags.
const (
	TagPosition = "position"
	TagVelocity = "velocity"
	TagCollider = "collider"
	TagHealth   = "health"
	TagAttack   = "attack"
	TagItem     = "item"
)

// Position is an entity's location in game coordinates.
type Position struct {
	X, Y float64
}

func (Position) Tag() string { return TagPosition }

// Velocity is an entity's movement in game units per second.
type Velocity struct {
	X, Y float64
}

func (Velocity) Tag() string { return TagVelocity }

// Collider is a circular collision shape centered on the entity's position.
type Collider struct {
	Radius float64
}

func (Collider) Tag() string { return TagCollider }

// Health tracks hit points and passive regeneration per second.
type Health struct {
	Current      float64
	Max          float64
	Regeneration float64
}

func (Health) Tag() string { return TagHealth }

// Attack describes an entity's melee/ranged strike.
type Attack struct {
	Damage   float64
	Range    float64
	Cooldown float64
	// Remaining counts down between strikes; ready when <= 0.
	Remaining float64
}

func (Attack) Tag() string { return TagAttack }

// Item is a pickup with a kind, a magnitude, and a remaining lifetime in
// seconds (zero means permanent).
type Item struct {
	Kind     string
	Value    float64
	Duration float64
}

func (Item) Tag() string { return TagItem }
