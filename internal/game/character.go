package game

// Transform is a position plus facing direction, used for attachment
// sockets (muzzle, eject port) and the aim origin.
type Transform struct {
	Pos     Vec3
	Forward Vec3
}

// TransformFn supplies a socket's current transform. Weapon references
// may be nil, in which case the dependent operation is a guarded no-op.
type TransformFn func() Transform

// CharacterSource exposes the external input/character state the
// locomotion controller and weapon consume each tick. The interactive
// host implements it over the keyboard and mouse; tests script it.
type CharacterSource interface {
	// MoveIntent is the ground-plane intent in the character's local
	// frame: forward along +Z, strafe along +X, each in [-1, 1].
	MoveIntent() (forward, strafe float64)
	Running() bool
	CrouchHeld() bool
	// Yaw is the facing angle in radians; 0 faces +Z.
	Yaw() float64
	// AimTransform is the camera/aim-origin ray used for aim correction.
	AimTransform() Transform
}

// ScriptedCharacter is a CharacterSource with settable fields, used by
// the headless harness and tests.
type ScriptedCharacter struct {
	Forward, Strafe float64
	Run             bool
	Crouch          bool
	FacingYaw       float64
	Aim             Transform
}

func (c *ScriptedCharacter) MoveIntent() (float64, float64) { return c.Forward, c.Strafe }
func (c *ScriptedCharacter) Running() bool                  { return c.Run }
func (c *ScriptedCharacter) CrouchHeld() bool               { return c.Crouch }
func (c *ScriptedCharacter) Yaw() float64                   { return c.FacingYaw }
func (c *ScriptedCharacter) AimTransform() Transform        { return c.Aim }

// Loadout tracks the currently equipped weapon and plays the swap
// signals. Each weapon owns its own ammunition store, so equipping a
// fresh weapon starts with a full magazine.
type Loadout struct {
	current Weapon
}

// Equip holsters the current weapon (if any) and readies w.
func (l *Loadout) Equip(w Weapon) {
	if l.current != nil {
		l.current.Holster()
	}
	l.current = w
	if w != nil {
		w.Unholster()
	}
}

// Current returns the equipped weapon, or nil.
func (l *Loadout) Current() Weapon {
	return l.current
}
