// Package core provides the fundamental types shared by the simulation and
// its front ends: vector math, rigid bodies, input frames, the runtime
// config and a text screen buffer. It has no terminal dependencies so game
// logic stays pure and testable.
package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a point or direction in world space.
// Arithmetic is delegated to gonum's r3 package; the type shares r3.Vec's
// layout so conversions are free.
type Vector3 r3.Vec

// Vec3 creates a vector from its components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) r3() r3.Vec {
	return r3.Vec(v)
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3(r3.Add(v.r3(), o.r3()))
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3(r3.Sub(v.r3(), o.r3()))
}

// Scale returns v * k.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3(r3.Scale(k, v.r3()))
}

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return r3.Dot(v.r3(), o.r3())
}

// Cross returns the cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3(r3.Cross(v.r3(), o.r3()))
}

// Length returns the Euclidean length sqrt(v·v).
func (v Vector3) Length() float64 {
	return r3.Norm(v.r3())
}

// Distance returns the Euclidean distance between v and o.
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Normalize scales v to unit length in place.
// A zero-length vector is left unchanged (r3.Unit would yield NaN).
func (v *Vector3) Normalize() {
	if v.Length() <= 0 {
		return
	}
	*v = Vector3(r3.Unit(v.r3()))
}

// String formats the vector as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
