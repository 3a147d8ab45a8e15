package game

// Sim drives the locomotion stack in a fixed per-tick order and counts
// fixed ticks for the weapon's fire interval. It is constructed with
// explicit dependencies and driven by a host loop it does not own; there
// are no engine lifecycle hooks and no runtime service lookup.
type Sim struct {
	World      *World
	Body       *Body
	Ground     *GroundDetector
	Locomotion *LocomotionController
	Step       *StepClimber
	Log        *SimLog

	tuning Tuning
	tick   int
}

// NewSim wires the ground detector, locomotion controller and step
// climber around one body. audio and log may be nil.
func NewSim(world *World, body *Body, source CharacterSource, tuning Tuning, audio AudioSink, log *SimLog) *Sim {
	s := &Sim{
		World:  world,
		Body:   body,
		Log:    log,
		tuning: tuning,
	}
	s.Ground = NewGroundDetector(world, body, &s.tuning, log)
	s.Locomotion = NewLocomotionController(body, source, s.Ground, &s.tuning, audio, log)
	s.Step = NewStepClimber(world, body, source, &s.tuning, log)
	return s
}

// FixedTick runs one fixed step: ground detection, velocity integration,
// step climbing, capsule collision resolution (which arms the next
// tick's contact events), then the grounded reset. The order is
// load-bearing — integration reads the grounded flag established at the
// top of the same tick, and the flag never survives the tick.
func (s *Sim) FixedTick(dt float64) {
	s.Ground.Update(s.tick)
	s.Locomotion.FixedTick(s.tick, dt)
	s.Step.FixedTick(s.tick)
	contacts := s.World.ResolveCapsule(s.Body)
	s.Ground.OnContacts(contacts)
	s.Ground.EndTick()
	s.tick++
}

// VariableTick runs presentation-adjacent work (footstep gating) on the
// host's variable-rate tick.
func (s *Sim) VariableTick(dt float64) {
	s.Locomotion.VariableTick(dt)
}

// Tick returns the number of completed fixed ticks. Weapons use this as
// their fire-interval clock.
func (s *Sim) Tick() int { return s.tick }

// Tuning exposes the sim's effective tuning values.
func (s *Sim) Tuning() *Tuning { return &s.tuning }
