package game

import (
	"fmt"

	"github.com/spf13/viper"
)

// Tuning bundles every gameplay constant the sim reads. Defaults are
// compiled in; hosts may override individual values from a config file.
type Tuning struct {
	// Gravity is negative (pulls along -Y), in units/s².
	Gravity float64 `mapstructure:"gravity"`
	// GroundedFallBias scales gravity*dt into the small downward velocity
	// kept while grounded, so the capsule stays adhered on down-slopes.
	GroundedFallBias float64 `mapstructure:"grounded_fall_bias"`

	WalkSpeed   float64 `mapstructure:"walk_speed"`
	RunSpeed    float64 `mapstructure:"run_speed"`
	CrouchSpeed float64 `mapstructure:"crouch_speed"`

	NormalHeight  float64 `mapstructure:"normal_height"`
	CrouchHeight  float64 `mapstructure:"crouch_height"`
	CapsuleRadius float64 `mapstructure:"capsule_radius"`

	// GroundSweepRadiusScale shrinks the ground-probe sphere slightly
	// inside the capsule radius to avoid false self-collision.
	GroundSweepRadiusScale float64 `mapstructure:"ground_sweep_radius_scale"`
	GroundSweepSkin        float64 `mapstructure:"ground_sweep_skin"`

	StepHeight    float64 `mapstructure:"step_height"`
	StepSmooth    float64 `mapstructure:"step_smooth"`
	StepProbe     float64 `mapstructure:"step_probe"`
	StepFootLift  float64 `mapstructure:"step_foot_lift"` // lower ray height above the feet
	FootstepSpeed float64 `mapstructure:"footstep_speed"` // min horizontal speed for footsteps

	Weapon WeaponSpec `mapstructure:"weapon"`
}

// WeaponSpec holds the per-weapon configuration a Rifle is built from.
type WeaponSpec struct {
	MagazineCapacity  int     `mapstructure:"magazine_capacity"`
	StartingReserve   int     `mapstructure:"starting_reserve"`
	FireIntervalTicks int     `mapstructure:"fire_interval_ticks"` // 0 disables the cooldown gate
	MaxRange          float64 `mapstructure:"max_range"`
	ProjectileImpulse float64 `mapstructure:"projectile_impulse"`
	CasingImpulse     float64 `mapstructure:"casing_impulse"`
	SpreadRad         float64 `mapstructure:"spread_rad"` // base angular spread at multiplier 1.0
}

// DefaultTuning returns the compiled-in gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          -20.0,
		GroundedFallBias: 0.5,

		WalkSpeed:   3.2,
		RunSpeed:    6.0,
		CrouchSpeed: 1.6,

		NormalHeight:  1.8,
		CrouchHeight:  1.1,
		CapsuleRadius: 0.4,

		GroundSweepRadiusScale: 0.95,
		GroundSweepSkin:        0.1,

		StepHeight:    0.5,
		StepSmooth:    0.05,
		StepProbe:     0.6,
		StepFootLift:  0.05,
		FootstepSpeed: 0.5,

		Weapon: WeaponSpec{
			MagazineCapacity:  30,
			StartingReserve:   90,
			FireIntervalTicks: 6, // ~0.1s at 60TPS — automatic-fire cadence
			MaxRange:          200.0,
			ProjectileImpulse: 80.0,
			CasingImpulse:     2.5,
			SpreadRad:         0.01,
		},
	}
}

// LoadTuning reads overrides from the config file at path (TOML or YAML)
// on top of the defaults. Keys absent from the file keep their defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return t, fmt.Errorf("read tuning config: %w", err)
	}
	if err := v.Unmarshal(&t); err != nil {
		return t, fmt.Errorf("decode tuning config: %w", err)
	}
	return t, nil
}
