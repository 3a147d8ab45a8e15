package game

import (
	"fmt"
	"math"
	"math/rand"
)

// farAimDistance is how far along the aim forward the projectile is
// oriented when the aim ray strikes nothing within range.
const farAimDistance = 1000.0

// Weapon is the capability interface every equippable weapon variant
// implements. Operations that hit a guard condition (missing socket,
// empty magazine, cooldown) return false and mutate nothing, so callers
// and tests can tell "executed" from "skipped".
type Weapon interface {
	Fire(spreadMultiplier float64) bool
	Reload() bool
	EjectCasing() bool
	FillAmmo(amount int)

	AmmoCurrent() int
	AmmoReserve() int
	AmmoCapacity() int
	IsFull() bool
	HasAmmo() bool

	Holster()
	Unholster()
}

// RifleDeps wires a Rifle to its collaborators. Sinks and the observer
// may be nil (replaced by no-ops); nil Muzzle or AimOrigin makes Fire a
// guarded no-op, and a nil Ticks source disables the fire-interval gate.
type RifleDeps struct {
	World     *World
	Spawner   Spawner
	Anim      AnimSink
	Audio     AudioSink
	Observer  AmmoObserver
	Muzzle    TransformFn
	AimOrigin TransformFn
	EjectPort TransformFn
	// MuzzleEffect is the host's flash/bang hook, invoked per discharge.
	MuzzleEffect func()
	Rng          *rand.Rand
	// Ticks supplies the fixed tick counter used by the fire interval.
	Ticks func() int
	Log   *SimLog
}

// Rifle is the concrete hitscan-corrected projectile weapon. Discharge
// and reload run synchronously from host callbacks, never on the tick.
type Rifle struct {
	spec WeaponSpec
	ammo *AmmoStore

	world        *World
	spawner      Spawner
	anim         AnimSink
	audio        AudioSink
	observer     AmmoObserver
	muzzle       TransformFn
	aimOrigin    TransformFn
	ejectPort    TransformFn
	muzzleEffect func()
	rng          *rand.Rand
	ticks        func() int
	log          *SimLog

	fired        bool
	lastFireTick int
}

// NewRifle builds a rifle with a full magazine per the spec.
func NewRifle(spec WeaponSpec, deps RifleDeps) *Rifle {
	if deps.Anim == nil {
		deps.Anim = NopAnimSink()
	}
	if deps.Audio == nil {
		deps.Audio = NopAudioSink()
	}
	if deps.Observer == nil {
		deps.Observer = NopAmmoObserver()
	}
	if deps.Rng == nil {
		deps.Rng = rand.New(rand.NewSource(1)) // #nosec G404 -- gameplay spread, not crypto
	}
	return &Rifle{
		spec:         spec,
		ammo:         NewAmmoStore(spec.MagazineCapacity, spec.StartingReserve),
		world:        deps.World,
		spawner:      deps.Spawner,
		anim:         deps.Anim,
		audio:        deps.Audio,
		observer:     deps.Observer,
		muzzle:       deps.Muzzle,
		aimOrigin:    deps.AimOrigin,
		ejectPort:    deps.EjectPort,
		muzzleEffect: deps.MuzzleEffect,
		rng:          deps.Rng,
		ticks:        deps.Ticks,
		log:          deps.Log,
	}
}

func (r *Rifle) tick() int {
	if r.ticks == nil {
		return 0
	}
	return r.ticks()
}

// cooldownReady reports whether the fire interval has elapsed since the
// previous discharge. A zero interval or missing tick source leaves the
// gate open and timing entirely to the caller.
func (r *Rifle) cooldownReady() bool {
	if r.spec.FireIntervalTicks <= 0 || r.ticks == nil || !r.fired {
		return true
	}
	return r.ticks()-r.lastFireTick >= r.spec.FireIntervalTicks
}

// Fire discharges one round. The projectile spawns at the muzzle socket
// but is oriented along the corrected aim line: muzzle toward the aim
// ray's hit point, or toward a far point when the ray strikes nothing.
func (r *Rifle) Fire(spreadMultiplier float64) bool {
	if r.muzzle == nil || r.aimOrigin == nil {
		return false
	}
	if !r.ammo.HasAmmo() {
		r.audio.Play(ClipFireEmpty)
		r.log.Add(r.tick(), "weapon", "weapon", "fire-dry", "magazine empty", 0)
		return false
	}
	if !r.cooldownReady() {
		r.log.AddVerbose(r.tick(), "weapon", "weapon", "fire-gated", "inside fire interval", 0)
		return false
	}

	r.ammo.ConsumeOne()
	r.fired = true
	r.lastFireTick = r.tick()
	r.anim.Trigger(AnimFire)
	if r.muzzleEffect != nil {
		r.muzzleEffect()
	}

	aim := r.aimOrigin()
	muzzle := r.muzzle()
	target := aim.Pos.Add(aim.Forward.Normalized().Scale(farAimDistance))
	if r.world != nil {
		if hit, ok := r.world.Raycast(aim.Pos, aim.Forward, r.spec.MaxRange, LayerWorld); ok {
			target = hit.Point
		}
	}
	dir := DirFromTo(muzzle.Pos, target)
	dir = r.applySpread(dir, spreadMultiplier)

	if r.spawner != nil {
		h := r.spawner.Spawn(EntityProjectile, muzzle.Pos, dir)
		r.spawner.ApplyImpulse(h, dir.Scale(r.spec.ProjectileImpulse))
	}

	r.observer.AmmoChanged(r.ammo.Current(), r.ammo.Reserve())
	r.log.Add(r.tick(), "weapon", "weapon", "fire",
		fmt.Sprintf("mag %d/%d reserve %d", r.ammo.Current(), r.ammo.Capacity(), r.ammo.Reserve()),
		float64(r.ammo.Current()))
	return true
}

// applySpread deviates dir by a random angle up to SpreadRad scaled by
// the multiplier, on both axes perpendicular to the shot.
func (r *Rifle) applySpread(dir Vec3, multiplier float64) Vec3 {
	maxAngle := r.spec.SpreadRad * multiplier
	if maxAngle <= 0 {
		return dir
	}
	up := Vec3{Y: 1}
	if math.Abs(dir.Y) > 0.99 {
		up = Vec3{X: 1}
	}
	right := dir.Cross(up).Normalized()
	above := right.Cross(dir)
	a := (r.rng.Float64()*2 - 1) * maxAngle
	b := (r.rng.Float64()*2 - 1) * maxAngle
	return dir.Add(right.Scale(math.Tan(a))).Add(above.Scale(math.Tan(b))).Normalized()
}

// Reload tops the magazine up from the reserve. Refilling from a dry
// magazine plays the longer empty-reload variant (bolt release).
func (r *Rifle) Reload() bool {
	if r.ammo.IsFull() {
		return false
	}
	if r.ammo.Reserve() == 0 {
		// Dry click: no rounds carried, nothing changes.
		r.audio.Play(ClipFireEmpty)
		r.observer.AmmoChanged(r.ammo.Current(), r.ammo.Reserve())
		r.log.Add(r.tick(), "weapon", "weapon", "reload-dry", "reserve empty", 0)
		return false
	}

	wasDry := !r.ammo.HasAmmo()
	moved := r.ammo.TransferFromReserve(r.ammo.Capacity() - r.ammo.Current())
	if moved <= 0 {
		return false
	}
	if wasDry {
		r.anim.Trigger(AnimReloadEmpty)
		r.audio.Play(ClipReloadEmpty)
	} else {
		r.anim.Trigger(AnimReload)
		r.audio.Play(ClipReload)
	}
	r.observer.AmmoChanged(r.ammo.Current(), r.ammo.Reserve())
	r.log.Add(r.tick(), "weapon", "weapon", "reload",
		fmt.Sprintf("moved %d, mag %d/%d reserve %d", moved, r.ammo.Current(), r.ammo.Capacity(), r.ammo.Reserve()),
		float64(moved))
	return true
}

// EjectCasing spawns a spent casing at the eject port with a small kick.
// The host's animation-event relay calls this, independent of firing.
func (r *Rifle) EjectCasing() bool {
	if r.ejectPort == nil || r.spawner == nil {
		return false
	}
	port := r.ejectPort()
	h := r.spawner.Spawn(EntityCasing, port.Pos, port.Forward)
	r.spawner.ApplyImpulse(h, port.Forward.Normalized().Scale(r.spec.CasingImpulse))
	r.log.Add(r.tick(), "weapon", "weapon", "eject", "casing", 0)
	return true
}

// FillAmmo replaces the carried reserve total; pickups and inventory
// changes outside the core funnel through here.
func (r *Rifle) FillAmmo(amount int) {
	r.ammo.SetReserve(amount)
	r.observer.AmmoChanged(r.ammo.Current(), r.ammo.Reserve())
	r.log.Add(r.tick(), "weapon", "ammo", "fill",
		fmt.Sprintf("reserve %d", r.ammo.Reserve()), float64(r.ammo.Reserve()))
}

func (r *Rifle) AmmoCurrent() int  { return r.ammo.Current() }
func (r *Rifle) AmmoReserve() int  { return r.ammo.Reserve() }
func (r *Rifle) AmmoCapacity() int { return r.ammo.Capacity() }
func (r *Rifle) IsFull() bool      { return r.ammo.IsFull() }
func (r *Rifle) HasAmmo() bool     { return r.ammo.HasAmmo() }

// Holster plays the stow signal.
func (r *Rifle) Holster() { r.audio.Play(ClipHolster) }

// Unholster plays the ready signal.
func (r *Rifle) Unholster() { r.audio.Play(ClipUnholster) }
