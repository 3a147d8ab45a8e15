package game

import "math"

// Layer is a bitmask used to filter world queries.
type Layer uint8

const (
	LayerWorld Layer = 1 << iota // static level geometry
	LayerDebris                  // transient spawned entities (casings, projectiles)

	LayerAll Layer = 0xFF
)

// ColliderID identifies one collider inside a World.
type ColliderID int

// ColliderNone marks a body that is not registered as a world collider.
const ColliderNone ColliderID = -1

// Box is an axis-aligned collider.
type Box struct {
	ID       ColliderID
	Min, Max Vec3
	Layer    Layer
}

// Top returns the upward-facing surface height of the box.
func (b Box) Top() float64 { return b.Max.Y }

// RayHit describes the nearest geometry struck by a raycast.
type RayHit struct {
	Point    Vec3
	Normal   Vec3
	Collider ColliderID
	Distance float64
}

// SweepHit is one collider touched by a volumetric sweep.
type SweepHit struct {
	Collider ColliderID
	Point    Vec3 // sphere center at time of contact
}

// Contact is collision feedback produced by capsule resolution.
type Contact struct {
	Collider ColliderID
	Normal   Vec3
	Depth    float64
}

// World holds static collision geometry and answers synchronous,
// side-effect-free spatial queries. It is not safe for concurrent
// mutation; the sim runs single-threaded on the host's ticks.
type World struct {
	boxes  []Box
	nextID ColliderID
}

func NewWorld() *World {
	return &World{}
}

// AddBox registers an axis-aligned collider and returns its id.
func (w *World) AddBox(min, max Vec3, layer Layer) ColliderID {
	id := w.nextID
	w.nextID++
	w.boxes = append(w.boxes, Box{ID: id, Min: min, Max: max, Layer: layer})
	return id
}

// AddGroundPlane registers a flat floor at height y, modelled as a very
// large thin box so every query path treats it like ordinary geometry.
func (w *World) AddGroundPlane(y float64) ColliderID {
	const ext = 1e6
	return w.AddBox(Vec3{-ext, y - 1, -ext}, Vec3{ext, y, ext}, LayerWorld)
}

// BoxByID returns the collider with the given id.
func (w *World) BoxByID(id ColliderID) (Box, bool) {
	for _, b := range w.boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

// Raycast finds the nearest collider hit along dir (normalized internally)
// within maxDist. Returns false when nothing is struck.
func (w *World) Raycast(origin, dir Vec3, maxDist float64, mask Layer) (RayHit, bool) {
	dir = dir.Normalized()
	if dir == (Vec3{}) || maxDist <= 0 {
		return RayHit{}, false
	}

	best := RayHit{Distance: math.MaxFloat64}
	found := false
	for _, b := range w.boxes {
		if b.Layer&mask == 0 {
			continue
		}
		t, ok := rayBoxHitT(origin, dir, maxDist, b.Min, b.Max)
		if !ok || t >= best.Distance {
			continue
		}
		p := origin.Add(dir.Scale(t))
		best = RayHit{
			Point:    p,
			Normal:   boxSurfaceNormal(b, p),
			Collider: b.ID,
			Distance: t,
		}
		found = true
	}
	if !found {
		return RayHit{}, false
	}
	return best, true
}

// SphereSweep moves a sphere from center along dir for dist and returns
// every collider it touches, nearest first. The result slice is freshly
// allocated per call; callers never share a hit buffer across ticks.
func (w *World) SphereSweep(center Vec3, radius float64, dir Vec3, dist float64, mask Layer, exclude ColliderID) []SweepHit {
	dir = dir.Normalized()
	if dir == (Vec3{}) || dist <= 0 {
		return nil
	}

	type tHit struct {
		t   float64
		hit SweepHit
	}
	var hits []tHit
	r := Vec3{radius, radius, radius}
	for _, b := range w.boxes {
		if b.Layer&mask == 0 || b.ID == exclude {
			continue
		}
		// Sphere-vs-box sweep reduces to a raycast against the box
		// inflated by the sphere radius.
		t, ok := rayBoxHitT(center, dir, dist, b.Min.Sub(r), b.Max.Add(r))
		if !ok {
			continue
		}
		hits = append(hits, tHit{t, SweepHit{Collider: b.ID, Point: center.Add(dir.Scale(t))}})
	}
	if len(hits) == 0 {
		return nil
	}
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].t < hits[j-1].t; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]SweepHit, len(hits))
	for i, h := range hits {
		out[i] = h.hit
	}
	return out
}

// rayBoxHitT returns the entry parameter t in [0, maxDist] where the ray
// origin+dir*t (dir unit length) first meets the AABB. Slab test per axis;
// a ray starting inside the box reports t=0.
func rayBoxHitT(origin, dir Vec3, maxDist float64, min, max Vec3) (float64, bool) {
	tMin := 0.0
	tMax := maxDist

	axes := [3][3]float64{
		{origin.X, dir.X, 0},
		{origin.Y, dir.Y, 0},
		{origin.Z, dir.Z, 0},
	}
	mins := [3]float64{min.X, min.Y, min.Z}
	maxs := [3]float64{max.X, max.Y, max.Z}

	for i := 0; i < 3; i++ {
		o, d := axes[i][0], axes[i][1]
		if math.Abs(d) < 1e-12 {
			if o < mins[i] || o > maxs[i] {
				return 0, false
			}
			continue
		}
		invD := 1.0 / d
		t1 := (mins[i] - o) * invD
		t2 := (maxs[i] - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// boxSurfaceNormal picks the face normal nearest to point p on box b.
func boxSurfaceNormal(b Box, p Vec3) Vec3 {
	faces := []struct {
		dist   float64
		normal Vec3
	}{
		{math.Abs(p.X - b.Min.X), Vec3{-1, 0, 0}},
		{math.Abs(p.X - b.Max.X), Vec3{1, 0, 0}},
		{math.Abs(p.Y - b.Min.Y), Vec3{0, -1, 0}},
		{math.Abs(p.Y - b.Max.Y), Vec3{0, 1, 0}},
		{math.Abs(p.Z - b.Min.Z), Vec3{0, 0, -1}},
		{math.Abs(p.Z - b.Max.Z), Vec3{0, 0, 1}},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.dist < best.dist {
			best = f
		}
	}
	return best.normal
}

// ResolveCapsule pushes a penetrating body out of world geometry along the
// axis of least penetration and reports the resulting contacts. This is the
// collision feedback that arms the ground detector for the next tick.
func (w *World) ResolveCapsule(b *Body) []Contact {
	var contacts []Contact
	for _, box := range w.boxes {
		if box.Layer&LayerWorld == 0 || box.ID == b.Collider {
			continue
		}

		bodyMin := Vec3{b.Pos.X - b.Radius, b.Pos.Y, b.Pos.Z - b.Radius}
		bodyMax := Vec3{b.Pos.X + b.Radius, b.Pos.Y + b.Height, b.Pos.Z + b.Radius}

		overlapX := math.Min(bodyMax.X, box.Max.X) - math.Max(bodyMin.X, box.Min.X)
		overlapY := math.Min(bodyMax.Y, box.Max.Y) - math.Max(bodyMin.Y, box.Min.Y)
		overlapZ := math.Min(bodyMax.Z, box.Max.Z) - math.Max(bodyMin.Z, box.Min.Z)
		if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
			continue
		}

		bodyCenter := b.Center()
		boxCenter := box.Min.Add(box.Max).Scale(0.5)

		// Push out along the shallowest axis.
		switch {
		case overlapY <= overlapX && overlapY <= overlapZ:
			if bodyCenter.Y >= boxCenter.Y {
				b.Pos.Y += overlapY
				contacts = append(contacts, Contact{box.ID, Vec3{0, 1, 0}, overlapY})
			} else {
				b.Pos.Y -= overlapY
				contacts = append(contacts, Contact{box.ID, Vec3{0, -1, 0}, overlapY})
			}
		case overlapX <= overlapZ:
			if bodyCenter.X >= boxCenter.X {
				b.Pos.X += overlapX
				contacts = append(contacts, Contact{box.ID, Vec3{1, 0, 0}, overlapX})
			} else {
				b.Pos.X -= overlapX
				contacts = append(contacts, Contact{box.ID, Vec3{-1, 0, 0}, overlapX})
			}
		default:
			if bodyCenter.Z >= boxCenter.Z {
				b.Pos.Z += overlapZ
				contacts = append(contacts, Contact{box.ID, Vec3{0, 0, 1}, overlapZ})
			} else {
				b.Pos.Z -= overlapZ
				contacts = append(contacts, Contact{box.ID, Vec3{0, 0, -1}, overlapZ})
			}
		}
	}
	return contacts
}
