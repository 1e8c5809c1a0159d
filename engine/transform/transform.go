package transform

import (
	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a rigid local-space transform: a translation and a unit quaternion rotation.
// Scale is not modelled; scene sizes live on the bodies themselves.
type Transform struct {
	// Position is the translation relative to the parent node (or the world for roots).
	Position mgl32.Vec3
	// Rotation is the orientation relative to the parent node. Always kept normalized.
	Rotation mgl32.Quat
}

// Identity returns the transform with no translation and no rotation.
//
// Returns:
//   - Transform: the identity transform
func Identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

// FromPosition returns an unrotated transform at the given position.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - Transform: the translated transform
func FromPosition(x, y, z float32) Transform {
	return Transform{Position: mgl32.Vec3{x, y, z}, Rotation: mgl32.QuatIdent()}
}

// LookingAt returns a transform at eye whose forward (-Z) axis points toward target.
//
// Parameters:
//   - eye: position of the transform
//   - target: point to look at
//   - up: approximate up direction
//
// Returns:
//   - Transform: the oriented transform
func LookingAt(eye, target, up mgl32.Vec3) Transform {
	return Transform{Position: eye, Rotation: common.LookRotation(eye, target, up)}
}

// Right returns the local +X axis in parent space.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// Up returns the local +Y axis in parent space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Forward returns the local -Z axis in parent space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// RotateY rotates the transform about the parent's vertical axis by angle radians.
// The translation is left untouched.
//
// Parameters:
//   - angle: rotation in radians, counter-clockwise when viewed from +Y
//
// Returns:
//   - Transform: the rotated transform
func (t Transform) RotateY(angle float32) Transform {
	t.Rotation = mgl32.QuatRotate(angle, common.WorldUp).Mul(t.Rotation).Normalize()
	return t
}

// Compose returns the transform of child expressed in the space t is expressed in.
// For a parent world transform t and a child local transform, the result is the
// child's world transform.
//
// Parameters:
//   - child: transform relative to t
//
// Returns:
//   - Transform: t ∘ child
func (t Transform) Compose(child Transform) Transform {
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(child.Position)),
		Rotation: t.Rotation.Mul(child.Rotation).Normalize(),
	}
}

// Apply maps a point from local space into the space t is expressed in.
//
// Parameters:
//   - p: local-space point
//
// Returns:
//   - mgl32.Vec3: transformed point
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(p))
}
