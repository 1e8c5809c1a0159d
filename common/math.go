package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the world vertical axis. The ground plane is Y = 0.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Clamp limits v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound (must be >= lo)
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeOrZero2 returns the unit vector of v, or the zero vector when v has no length.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec2: normalized v, or {0, 0}
func NormalizeOrZero2(v mgl32.Vec2) mgl32.Vec2 {
	l := v.Len()
	if l == 0 || math.IsInf(float64(l), 0) || math.IsNaN(float64(l)) {
		return mgl32.Vec2{}
	}
	return v.Mul(1 / l)
}

// NormalizeOrZero3 returns the unit vector of v, or the zero vector when v has no length.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: normalized v, or {0, 0, 0}
func NormalizeOrZero3(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 || math.IsInf(float64(l), 0) || math.IsNaN(float64(l)) {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// GroundXZ projects a world position onto the ground plane, returning its (X, Z) pair.
//
// Parameters:
//   - v: world-space position
//
// Returns:
//   - mgl32.Vec2: the X and Z components of v
func GroundXZ(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v[0], v[2]}
}

// BasisRotation builds the unit quaternion whose local axes map to the given world axes.
// The local -Z axis maps to forward, +Y to up and +X to right.
//
// Parameters:
//   - right, up, forward: an orthonormal, right-handed world basis
//
// Returns:
//   - mgl32.Quat: rotation taking local axes to the basis
func BasisRotation(right, up, forward mgl32.Vec3) mgl32.Quat {
	// column-major: columns are the images of +X, +Y and +Z
	m := mgl32.Mat4{
		right[0], right[1], right[2], 0,
		up[0], up[1], up[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		0, 0, 0, 1,
	}
	return mgl32.Mat4ToQuat(m).Normalize()
}

// LookRotation returns the rotation that points the local -Z axis from eye toward target,
// keeping the local +Y axis as close to up as possible.
// Returns the identity rotation when eye and target coincide or the view direction is
// parallel to up.
//
// Parameters:
//   - eye: world-space origin of the view
//   - target: world-space point to look at
//   - up: approximate up direction (typically WorldUp)
//
// Returns:
//   - mgl32.Quat: the look rotation
func LookRotation(eye, target, up mgl32.Vec3) mgl32.Quat {
	forward := NormalizeOrZero3(target.Sub(eye))
	if forward == (mgl32.Vec3{}) {
		return mgl32.QuatIdent()
	}
	right := NormalizeOrZero3(forward.Cross(up))
	if right == (mgl32.Vec3{}) {
		return mgl32.QuatIdent()
	}
	realUp := right.Cross(forward)
	return BasisRotation(right, realUp, forward)
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Near2 reports whether every component of a and b differs by at most eps.
// Unlike mgl32's ApproxEqualThreshold the tolerance is absolute, also next to zero.
func Near2(a, b mgl32.Vec2, eps float32) bool {
	return mgl32.Abs(a[0]-b[0]) <= eps && mgl32.Abs(a[1]-b[1]) <= eps
}

// Near3 reports whether every component of a and b differs by at most eps.
func Near3(a, b mgl32.Vec3, eps float32) bool {
	return mgl32.Abs(a[0]-b[0]) <= eps && mgl32.Abs(a[1]-b[1]) <= eps && mgl32.Abs(a[2]-b[2]) <= eps
}

// NearQuat reports whether a and b describe the same rotation within eps per component.
// q and -q are the same rotation.
func NearQuat(a, b mgl32.Quat, eps float32) bool {
	same := func(a, b mgl32.Quat) bool {
		return mgl32.Abs(a.W-b.W) <= eps && Near3(a.V, b.V, eps)
	}
	return same(a, b) || same(a, b.Scale(-1))
}
