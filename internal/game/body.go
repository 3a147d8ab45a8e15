package game

// Body is the kinematic capsule the locomotion controller drives.
// Pos is the capsule's bottom center (foot position); Height changes
// between the crouch and normal presets.
type Body struct {
	Collider ColliderID // self id, excluded from ground sweeps; ColliderNone if unregistered
	Pos      Vec3
	Vel      Vec3
	Radius   float64
	Height   float64
}

// Center returns the capsule's volumetric center.
func (b *Body) Center() Vec3 {
	return b.Pos.Add(Vec3{Y: b.Height / 2})
}

// HalfHeight returns half the current capsule height.
func (b *Body) HalfHeight() float64 {
	return b.Height / 2
}
