package game

import "testing"

func TestAmmoStore_StartsFull(t *testing.T) {
	a := NewAmmoStore(30, 90)
	if a.Current() != 30 || a.Reserve() != 90 || a.Capacity() != 30 {
		t.Fatalf("unexpected initial state: %d/%d reserve %d", a.Current(), a.Capacity(), a.Reserve())
	}
	if !a.IsFull() || !a.HasAmmo() {
		t.Fatal("full magazine should report IsFull and HasAmmo")
	}
}

func TestAmmoStore_ConsumeOne(t *testing.T) {
	a := NewAmmoStore(2, 0)
	if !a.ConsumeOne() || a.Current() != 1 {
		t.Fatalf("first consume failed, current=%d", a.Current())
	}
	if !a.ConsumeOne() || a.Current() != 0 {
		t.Fatalf("second consume failed, current=%d", a.Current())
	}
	// Empty magazine: consume fails and mutates nothing.
	if a.ConsumeOne() {
		t.Fatal("consume from empty magazine should fail")
	}
	if a.Current() != 0 {
		t.Fatalf("failed consume mutated state: current=%d", a.Current())
	}
	if a.HasAmmo() {
		t.Fatal("empty magazine should not report HasAmmo")
	}
}

func TestAmmoStore_TransferClamping(t *testing.T) {
	cases := []struct {
		name               string
		capacity, current  int
		reserve, amount    int
		wantMoved, wantCur int
		wantRes            int
	}{
		{"full refill", 30, 25, 90, 5, 5, 30, 85},
		{"reserve limits", 30, 28, 3, 2, 2, 30, 1},
		{"deficit limits", 30, 29, 90, 10, 1, 30, 89},
		{"no deficit", 30, 30, 90, 5, 0, 30, 90},
		{"no reserve", 30, 10, 0, 20, 0, 10, 0},
		{"zero amount", 30, 10, 50, 0, 0, 10, 50},
		{"negative amount", 30, 10, 50, -3, 0, 10, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAmmoStore(tc.capacity, tc.reserve)
			a.current = tc.current
			moved := a.TransferFromReserve(tc.amount)
			if moved != tc.wantMoved {
				t.Errorf("moved %d, want %d", moved, tc.wantMoved)
			}
			if a.Current() != tc.wantCur || a.Reserve() != tc.wantRes {
				t.Errorf("state %d/%d, want %d/%d", a.Current(), a.Reserve(), tc.wantCur, tc.wantRes)
			}
		})
	}
}

// Transfers never overfill the magazine or drive the reserve negative,
// for any requested amount.
func TestAmmoStore_TransferBounds(t *testing.T) {
	const capacity, reserve = 30, 17
	for amount := 0; amount <= capacity+reserve+5; amount++ {
		for current := 0; current <= capacity; current++ {
			a := NewAmmoStore(capacity, reserve)
			a.current = current
			a.TransferFromReserve(amount)
			if a.Current() > capacity {
				t.Fatalf("amount=%d current=%d: magazine overfilled to %d", amount, current, a.Current())
			}
			if a.Reserve() < 0 {
				t.Fatalf("amount=%d current=%d: reserve went negative: %d", amount, current, a.Reserve())
			}
		}
	}
}

func TestAmmoStore_SetReserve(t *testing.T) {
	a := NewAmmoStore(30, 90)
	a.SetReserve(12)
	if a.Reserve() != 12 {
		t.Fatalf("reserve=%d, want 12", a.Reserve())
	}
	a.SetReserve(-5)
	if a.Reserve() != 0 {
		t.Fatalf("negative reserve should clamp to 0, got %d", a.Reserve())
	}
}
