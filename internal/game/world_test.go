package game

import (
	"math"
	"testing"
)

func TestRaycast_EmptyWorld(t *testing.T) {
	w := NewWorld()
	if _, ok := w.Raycast(Vec3{}, Vec3{Z: 1}, 100, LayerAll); ok {
		t.Fatal("raycast in empty world should miss")
	}
}

func TestRaycast_HitsBoxFace(t *testing.T) {
	w := NewWorld()
	id := w.AddBox(Vec3{-1, 0, 2}, Vec3{1, 2, 3}, LayerWorld)

	hit, ok := w.Raycast(Vec3{0, 1, 0}, Vec3{Z: 1}, 100, LayerWorld)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Collider != id {
		t.Fatalf("hit collider %d, want %d", hit.Collider, id)
	}
	if math.Abs(hit.Distance-2) > 1e-9 {
		t.Fatalf("hit distance %f, want 2", hit.Distance)
	}
	vecApprox(t, hit.Point, Vec3{0, 1, 2}, 1e-9)
	vecApprox(t, hit.Normal, Vec3{0, 0, -1}, 1e-9)
}

func TestRaycast_RespectsMaxDistance(t *testing.T) {
	w := NewWorld()
	w.AddBox(Vec3{-1, 0, 2}, Vec3{1, 2, 3}, LayerWorld)
	if _, ok := w.Raycast(Vec3{0, 1, 0}, Vec3{Z: 1}, 1.5, LayerWorld); ok {
		t.Fatal("box beyond max distance should not be hit")
	}
}

func TestRaycast_NearestOfTwo(t *testing.T) {
	w := NewWorld()
	far := w.AddBox(Vec3{-1, 0, 8}, Vec3{1, 2, 9}, LayerWorld)
	near := w.AddBox(Vec3{-1, 0, 4}, Vec3{1, 2, 5}, LayerWorld)
	_ = far

	hit, ok := w.Raycast(Vec3{0, 1, 0}, Vec3{Z: 1}, 100, LayerWorld)
	if !ok || hit.Collider != near {
		t.Fatalf("expected nearest box %d, got %v ok=%v", near, hit.Collider, ok)
	}
}

func TestRaycast_LayerMask(t *testing.T) {
	w := NewWorld()
	w.AddBox(Vec3{-1, 0, 2}, Vec3{1, 2, 3}, LayerDebris)
	if _, ok := w.Raycast(Vec3{0, 1, 0}, Vec3{Z: 1}, 100, LayerWorld); ok {
		t.Fatal("mask should exclude debris colliders")
	}
	if _, ok := w.Raycast(Vec3{0, 1, 0}, Vec3{Z: 1}, 100, LayerAll); !ok {
		t.Fatal("LayerAll should include debris colliders")
	}
}

func TestRaycast_ZeroDirection(t *testing.T) {
	w := NewWorld()
	w.AddBox(Vec3{-1, 0, 2}, Vec3{1, 2, 3}, LayerWorld)
	if _, ok := w.Raycast(Vec3{0, 1, 0}, Vec3{}, 100, LayerWorld); ok {
		t.Fatal("zero direction should miss, not panic")
	}
}

func TestRaycast_DiagonalThroughBox(t *testing.T) {
	w := NewWorld()
	w.AddBox(Vec3{2, 2, 2}, Vec3{3, 3, 3}, LayerWorld)
	if _, ok := w.Raycast(Vec3{}, Vec3{1, 1, 1}, 100, LayerWorld); !ok {
		t.Fatal("diagonal ray through box should hit")
	}
}

func TestSphereSweep_HitsGround(t *testing.T) {
	w := NewWorld()
	ground := w.AddGroundPlane(0)

	hits := w.SphereSweep(Vec3{0, 1, 0}, 0.35, Vec3{Y: -1}, 1.2, LayerWorld, ColliderNone)
	if len(hits) != 1 || hits[0].Collider != ground {
		t.Fatalf("hits=%v, want the ground plane", hits)
	}
	// Inflated by the radius: contact when the center is 0.35 above.
	if math.Abs(hits[0].Point.Y-0.35) > 1e-9 {
		t.Fatalf("contact center at y=%f, want 0.35", hits[0].Point.Y)
	}
}

func TestSphereSweep_ShortSweepMisses(t *testing.T) {
	w := NewWorld()
	w.AddGroundPlane(0)
	if hits := w.SphereSweep(Vec3{0, 5, 0}, 0.35, Vec3{Y: -1}, 1.0, LayerWorld, ColliderNone); len(hits) != 0 {
		t.Fatalf("sweep far above ground should miss, got %v", hits)
	}
}

func TestSphereSweep_ExcludesSelf(t *testing.T) {
	w := NewWorld()
	self := w.AddBox(Vec3{-1, -1, -1}, Vec3{1, 1, 1}, LayerWorld)
	if hits := w.SphereSweep(Vec3{0, 2, 0}, 0.3, Vec3{Y: -1}, 2, LayerWorld, self); len(hits) != 0 {
		t.Fatalf("self collider should be excluded, got %v", hits)
	}
}

func TestSphereSweep_NearestFirst(t *testing.T) {
	w := NewWorld()
	low := w.AddBox(Vec3{-1, -2, -1}, Vec3{1, -1, 1}, LayerWorld)
	high := w.AddBox(Vec3{-1, 0, -1}, Vec3{1, 0.5, 1}, LayerWorld)

	hits := w.SphereSweep(Vec3{0, 2, 0}, 0.3, Vec3{Y: -1}, 10, LayerWorld, ColliderNone)
	if len(hits) != 2 {
		t.Fatalf("%d hits, want 2", len(hits))
	}
	if hits[0].Collider != high || hits[1].Collider != low {
		t.Fatalf("hits out of order: %v (high=%d low=%d)", hits, high, low)
	}
}

func TestResolveCapsule_PushesUpOutOfFloor(t *testing.T) {
	w := NewWorld()
	ground := w.AddGroundPlane(0)
	b := &Body{Collider: ColliderNone, Pos: Vec3{0, -0.1, 0}, Radius: 0.4, Height: 1.8}

	contacts := w.ResolveCapsule(b)
	if len(contacts) != 1 || contacts[0].Collider != ground {
		t.Fatalf("contacts=%v, want one ground contact", contacts)
	}
	vecApprox(t, contacts[0].Normal, Vec3{Y: 1}, 1e-9)
	if math.Abs(b.Pos.Y) > 1e-9 {
		t.Fatalf("feet at y=%f, want 0", b.Pos.Y)
	}
}

func TestResolveCapsule_PushesOutOfWall(t *testing.T) {
	w := NewWorld()
	w.AddBox(Vec3{-5, 0, 2}, Vec3{5, 3, 3}, LayerWorld)
	b := &Body{Collider: ColliderNone, Pos: Vec3{0, 0, 1.7}, Radius: 0.4, Height: 1.8}

	contacts := w.ResolveCapsule(b)
	if len(contacts) != 1 {
		t.Fatalf("contacts=%v, want one wall contact", contacts)
	}
	vecApprox(t, contacts[0].Normal, Vec3{Z: -1}, 1e-9)
	if math.Abs(b.Pos.Z-1.6) > 1e-9 {
		t.Fatalf("body at z=%f, want pushed back to 1.6", b.Pos.Z)
	}
}

func TestResolveCapsule_NoOverlapNoContact(t *testing.T) {
	w := NewWorld()
	w.AddGroundPlane(0)
	b := &Body{Collider: ColliderNone, Pos: Vec3{0, 0.5, 0}, Radius: 0.4, Height: 1.8}
	if contacts := w.ResolveCapsule(b); len(contacts) != 0 {
		t.Fatalf("airborne body reported contacts: %v", contacts)
	}
}
