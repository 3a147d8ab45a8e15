package game

import "fmt"

// StepClimber lets the capsule surmount low obstacles without physical
// simulation. After velocity integration it probes forward with a paired
// ray cast: a lower ray near foot level and an upper ray at step height.
// A lower hit with upper clearance means a climbable ledge, and the body
// is nudged straight up — a deterministic position correction, not a
// velocity change.
type StepClimber struct {
	world  *World
	body   *Body
	source CharacterSource
	tuning *Tuning
	log    *SimLog
}

func NewStepClimber(world *World, body *Body, source CharacterSource, tuning *Tuning, log *SimLog) *StepClimber {
	return &StepClimber{world: world, body: body, source: source, tuning: tuning, log: log}
}

// FixedTick runs one probe and returns whether a climb was applied.
func (s *StepClimber) FixedTick(tick int) bool {
	forward := RotateY(Vec3{Z: 1}, s.source.Yaw())
	feet := s.body.Pos

	lowerOrigin := feet.Add(Vec3{Y: s.tuning.StepFootLift})
	lowerHit, ok := s.world.Raycast(lowerOrigin, forward, s.tuning.StepProbe, LayerWorld)
	if !ok {
		return false
	}

	upperOrigin := feet.Add(Vec3{Y: s.tuning.StepHeight})
	if _, blocked := s.world.Raycast(upperOrigin, forward, s.tuning.StepProbe, LayerWorld); blocked {
		return false
	}

	obstacle, ok := s.world.BoxByID(lowerHit.Collider)
	if !ok {
		return false
	}
	offset := obstacle.Top() - feet.Y
	if offset <= 0 || offset > s.tuning.StepHeight {
		return false
	}

	s.body.Pos.Y += offset + s.tuning.StepSmooth
	s.log.Add(tick, "body", "step", "climb", fmt.Sprintf("offset %.2f", offset), offset)
	return true
}
