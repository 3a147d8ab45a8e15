package game

// GroundDetector owns the per-tick grounded flag. It follows a
// contact-event model: capsule resolution at the end of a tick arms the
// detector, and at the top of the next tick one downward sphere sweep
// confirms genuine contact with non-self geometry. Sweep results are
// per-call local slices; no hit buffer survives a tick.
type GroundDetector struct {
	world   *World
	body    *Body
	tuning  *Tuning
	pending []Contact
	ground  bool
	log     *SimLog
}

func NewGroundDetector(world *World, body *Body, tuning *Tuning, log *SimLog) *GroundDetector {
	return &GroundDetector{world: world, body: body, tuning: tuning, log: log}
}

// OnContacts arms the detector with this tick's collision feedback.
func (g *GroundDetector) OnContacts(cs []Contact) {
	g.pending = append(g.pending, cs...)
}

// Update consumes the pending contact events and, when armed, sweeps a
// sphere downward from the capsule center. Any hit distinct from the
// body's own collider grounds the character for this tick.
func (g *GroundDetector) Update(tick int) {
	if len(g.pending) == 0 {
		return
	}
	g.pending = g.pending[:0]

	radius := g.body.Radius * g.tuning.GroundSweepRadiusScale
	dist := g.body.HalfHeight() + g.tuning.GroundSweepSkin
	hits := g.world.SphereSweep(g.body.Center(), radius, Vec3{Y: -1}, dist, LayerWorld, g.body.Collider)
	for _, h := range hits {
		if h.Collider == g.body.Collider {
			continue
		}
		g.ground = true
		g.log.AddVerbose(tick, "body", "ground", "contact", "grounded", 1)
		break
	}
}

// Grounded reports the flag established by this tick's Update.
func (g *GroundDetector) Grounded() bool { return g.ground }

// EndTick clears the grounded flag; it must be re-asserted by contact
// on the following tick.
func (g *GroundDetector) EndTick() { g.ground = false }
