package parallax

import "github.com/go-gl/mathgl/mgl64"

// VectorKind selects the transition law applied by Vector.Move.
type VectorKind uint8

const (
	VectorLinear    VectorKind = iota // constant velocity
	VectorZero                        // stationary; velocity is always zero
	VectorScrolling                   // linear, wrapping x back to 0 past -Width
	VectorGravity                     // linear position, vy scaled by Gravity each tick
)

// DefaultGravity is the vertical velocity factor used by Gravity vectors.
const DefaultGravity = 0.2

// Vector is an immutable motion state. A single flat value is used for all
// variants; Kind decides which fields Move reads.
type Vector struct {
	Pos  mgl64.Vec2
	Vel  mgl64.Vec2
	Kind VectorKind

	// Scrolling only.
	Width, Height float64

	// Gravity only.
	Gravity float64
}

// Linear returns a constant-velocity vector.
func Linear(x, y, vx, vy float64) Vector {
	return Vector{Pos: mgl64.Vec2{x, y}, Vel: mgl64.Vec2{vx, vy}, Kind: VectorLinear}
}

// Zero returns a stationary vector at (x, y).
func Zero(x, y float64) Vector {
	return Vector{Pos: mgl64.Vec2{x, y}, Kind: VectorZero}
}

// Scrolling returns a vector that snaps x back to 0 once it has travelled a
// full width to the left, producing a treadmill of period width.
func Scrolling(x, y, vx, vy, width, height float64) Vector {
	return Vector{
		Pos:    mgl64.Vec2{x, y},
		Vel:    mgl64.Vec2{vx, vy},
		Kind:   VectorScrolling,
		Width:  width,
		Height: height,
	}
}

// Gravity returns a vector whose vertical velocity is multiplied by
// DefaultGravity on every move.
func Gravity(x, y, vx, vy float64) Vector {
	return Vector{
		Pos:     mgl64.Vec2{x, y},
		Vel:     mgl64.Vec2{vx, vy},
		Kind:    VectorGravity,
		Gravity: DefaultGravity,
	}
}

// X returns the horizontal position.
func (v Vector) X() float64 { return v.Pos[0] }

// Y returns the vertical position.
func (v Vector) Y() float64 { return v.Pos[1] }

// Move returns the vector one tick later. v is never modified.
func (v Vector) Move() Vector {
	switch v.Kind {
	case VectorZero:
		v.Vel = mgl64.Vec2{}
		return v
	case VectorScrolling:
		next := v.Pos.Add(v.Vel)
		if next[0] <= -v.Width && v.Vel[0] < 0 {
			next[0] = 0
		}
		v.Pos = next
		return v
	case VectorGravity:
		if v.Vel[1] <= 0 {
			// The negation is discarded: vy is never inverted at the apex.
			_ = -v.Vel[1]
		}
		v.Pos = v.Pos.Add(v.Vel)
		v.Vel[1] *= v.Gravity
		return v
	default:
		v.Pos = v.Pos.Add(v.Vel)
		return v
	}
}

// Offset returns a copy of v translated by (dx, dy). Velocity and kind are
// preserved.
func (v Vector) Offset(dx, dy float64) Vector {
	v.Pos = v.Pos.Add(mgl64.Vec2{dx, dy})
	return v
}
