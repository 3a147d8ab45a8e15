package game

import "fmt"

// LocomotionController composes externally-driven horizontal intent with
// internally-integrated vertical velocity and owns the crouch latch.
// Horizontal speed is recomputed from input every tick; vertical velocity
// persists across ticks and is the only integrated state.
type LocomotionController struct {
	body   *Body
	source CharacterSource
	ground *GroundDetector
	tuning *Tuning
	audio  AudioSink
	log    *SimLog

	crouching   bool
	verticalVel float64

	// lastGrounded snapshots the grounded flag for the variable tick,
	// which runs after the fixed tick has already reset it.
	lastGrounded bool
	footstepClip ClipName // currently looping clip, "" when paused
}

func NewLocomotionController(body *Body, source CharacterSource, ground *GroundDetector, tuning *Tuning, audio AudioSink, log *SimLog) *LocomotionController {
	if audio == nil {
		audio = NopAudioSink()
	}
	return &LocomotionController{
		body:   body,
		source: source,
		ground: ground,
		tuning: tuning,
		audio:  audio,
		log:    log,
	}
}

// FixedTick integrates one fixed step. Crouch is a held-input latch:
// while held, the capsule uses the crouch preset and running is
// suppressed regardless of the character's running flag.
func (l *LocomotionController) FixedTick(tick int, dt float64) {
	l.crouching = l.source.CrouchHeld()
	if l.crouching {
		l.body.Height = l.tuning.CrouchHeight
	} else {
		l.body.Height = l.tuning.NormalHeight
	}

	forward, strafe := l.source.MoveIntent()
	intent := Vec3{X: strafe, Z: forward}
	if intent.LenSq() > 1 {
		intent = intent.Normalized()
	}

	speed := l.tuning.WalkSpeed
	switch {
	case l.crouching:
		speed = l.tuning.CrouchSpeed
	case l.source.Running():
		speed = l.tuning.RunSpeed
	}
	horizontal := RotateY(intent.Scale(speed), l.source.Yaw())

	grounded := l.ground.Grounded()
	l.lastGrounded = grounded
	if grounded {
		// Small constant downward bias instead of zero keeps the capsule
		// adhered on downward slopes and step edges.
		l.verticalVel = l.tuning.Gravity * l.tuning.GroundedFallBias * dt
	} else {
		l.verticalVel += l.tuning.Gravity * dt
	}

	l.body.Vel = Vec3{X: horizontal.X, Y: l.verticalVel, Z: horizontal.Z}
	l.body.Pos = l.body.Pos.Add(l.body.Vel.Scale(dt))

	l.log.AddVerbose(tick, "body", "move", "position",
		fmt.Sprintf("(%.2f,%.2f,%.2f)", l.body.Pos.X, l.body.Pos.Y, l.body.Pos.Z), l.body.Pos.Y)
	l.log.AddVerbose(tick, "body", "move", "vertical", fmt.Sprintf("%.3f", l.verticalVel), l.verticalVel)
}

// VariableTick selects and gates footstep audio. The walk or run loop
// plays only while the character was grounded this tick and moving above
// the footstep speed threshold; otherwise the current loop pauses.
func (l *LocomotionController) VariableTick(dt float64) {
	_ = dt // cadence lives in the looped clips themselves

	minSq := l.tuning.FootstepSpeed * l.tuning.FootstepSpeed
	moving := l.body.Vel.Horizontal().LenSq() > minSq
	if l.lastGrounded && moving {
		clip := ClipFootstepWalk
		if !l.crouching && l.source.Running() {
			clip = ClipFootstepRun
		}
		if l.footstepClip != clip {
			if l.footstepClip != "" {
				l.audio.Pause(l.footstepClip)
			}
			l.audio.Play(clip)
			l.footstepClip = clip
		}
		return
	}
	if l.footstepClip != "" {
		l.audio.Pause(l.footstepClip)
		l.footstepClip = ""
	}
}

// Crouching reports the crouch latch state.
func (l *LocomotionController) Crouching() bool { return l.crouching }

// VerticalVelocity returns the integrated vertical speed.
func (l *LocomotionController) VerticalVelocity() float64 { return l.verticalVel }
