package game

// AmmoStore tracks the magazine and carried reserve for one weapon.
// It is owned by the weapon that created it; collaborators read counts
// through the weapon's query methods and never mutate the store directly.
type AmmoStore struct {
	capacity int
	current  int
	reserve  int
}

// NewAmmoStore creates a store with a full magazine, matching the
// initialize-on-equip lifecycle. Negative inputs clamp to zero.
func NewAmmoStore(capacity, reserve int) *AmmoStore {
	if capacity < 0 {
		capacity = 0
	}
	if reserve < 0 {
		reserve = 0
	}
	return &AmmoStore{capacity: capacity, current: capacity, reserve: reserve}
}

// ConsumeOne removes a single round from the magazine. It fails without
// mutation when the magazine is empty.
func (a *AmmoStore) ConsumeOne() bool {
	if a.current <= 0 {
		return false
	}
	a.current--
	return true
}

// TransferFromReserve moves up to amount rounds from the reserve into the
// magazine, clamped by both the magazine deficit and the reserve. Returns
// the number actually moved; zero when nothing can move.
func (a *AmmoStore) TransferFromReserve(amount int) int {
	if amount <= 0 {
		return 0
	}
	moved := amount
	if deficit := a.capacity - a.current; moved > deficit {
		moved = deficit
	}
	if moved > a.reserve {
		moved = a.reserve
	}
	if moved <= 0 {
		return 0
	}
	a.current += moved
	a.reserve -= moved
	return moved
}

// SetReserve replaces the carried total unconditionally. Inventory and
// pickup logic outside the core uses this when carried ammunition changes.
func (a *AmmoStore) SetReserve(amount int) {
	if amount < 0 {
		amount = 0
	}
	a.reserve = amount
}

// IsFull reports whether the magazine holds its full capacity.
func (a *AmmoStore) IsFull() bool { return a.current >= a.capacity }

// HasAmmo reports whether at least one round is chambered.
func (a *AmmoStore) HasAmmo() bool { return a.current > 0 }

// Current returns the rounds in the magazine.
func (a *AmmoStore) Current() int { return a.current }

// Reserve returns the carried rounds outside the magazine.
func (a *AmmoStore) Reserve() int { return a.reserve }

// Capacity returns the magazine's maximum size.
func (a *AmmoStore) Capacity() int { return a.capacity }
