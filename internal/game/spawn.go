package game

// EntityKind selects the prefab a Spawner instantiates.
type EntityKind string

const (
	EntityProjectile EntityKind = "projectile"
	EntityCasing     EntityKind = "casing"
)

// EntityHandle identifies one spawned transient entity.
type EntityHandle int

// NoEntity is returned by spawners that could not spawn.
const NoEntity EntityHandle = -1

// Spawner creates transient entities (projectiles, casings) on behalf of
// the weapon. The sim core never owns entity lifetimes; hosts decide how
// long spawned objects live and how they are simulated or drawn.
type Spawner interface {
	Spawn(kind EntityKind, pos Vec3, forward Vec3) EntityHandle
	ApplyImpulse(h EntityHandle, impulse Vec3)
}

// SpawnedEntity is one record kept by RecordingSpawner.
type SpawnedEntity struct {
	Handle  EntityHandle
	Kind    EntityKind
	Pos     Vec3
	Forward Vec3
	Impulse Vec3
}

// RecordingSpawner stores every spawn and impulse. It backs the headless
// harness and tests; the interactive host wraps it for debug drawing.
type RecordingSpawner struct {
	entities []SpawnedEntity
	next     EntityHandle
}

func NewRecordingSpawner() *RecordingSpawner {
	return &RecordingSpawner{}
}

func (s *RecordingSpawner) Spawn(kind EntityKind, pos Vec3, forward Vec3) EntityHandle {
	h := s.next
	s.next++
	s.entities = append(s.entities, SpawnedEntity{Handle: h, Kind: kind, Pos: pos, Forward: forward})
	return h
}

func (s *RecordingSpawner) ApplyImpulse(h EntityHandle, impulse Vec3) {
	for i := range s.entities {
		if s.entities[i].Handle == h {
			s.entities[i].Impulse = s.entities[i].Impulse.Add(impulse)
			return
		}
	}
}

// Entities returns all spawn records in spawn order.
func (s *RecordingSpawner) Entities() []SpawnedEntity {
	return s.entities
}

// ByKind returns the spawn records of one kind.
func (s *RecordingSpawner) ByKind(kind EntityKind) []SpawnedEntity {
	var out []SpawnedEntity
	for _, e := range s.entities {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
