package core

// GravityConstant is the downward acceleration in world units per second².
const GravityConstant = -9.8

// Gravity is the acceleration applied to every body on each integration step.
var Gravity = Vector3{X: 0, Y: GravityConstant, Z: 0}

// Body is the physics state shared by every entity in the world.
// Entities embed it by value; nothing else holds a reference to it.
type Body struct {
	Position Vector3
	Velocity Vector3
	Mass     float64 // Stored only, not used by integration
}

// NewBody creates a body at pos moving with vel.
func NewBody(pos, vel Vector3, mass float64) Body {
	return Body{Position: pos, Velocity: vel, Mass: mass}
}

// Integrate advances the body by dt seconds under the default Gravity.
func (b *Body) Integrate(dt float64) {
	b.IntegrateWith(dt, Gravity)
}

// IntegrateWith advances the body by dt seconds under acceleration g.
// Position is advanced with the velocity from before this step, then the
// velocity is updated (explicit Euler).
func (b *Body) IntegrateWith(dt float64, g Vector3) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Velocity = b.Velocity.Add(g.Scale(dt))
}
