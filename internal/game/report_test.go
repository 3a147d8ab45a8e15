package game

import (
	"strings"
	"testing"
)

func TestBuildRunReport_Tallies(t *testing.T) {
	log := NewSimLog(false)
	log.Add(1, "player", "weapon", "fire", "", 29)
	log.Add(2, "player", "weapon", "fire", "", 28)
	log.Add(3, "player", "weapon", "fire-dry", "", 0)
	log.Add(4, "player", "weapon", "reload", "", 30)
	log.Add(5, "player", "weapon", "reload-dry", "", 0)
	log.Add(6, "player", "weapon", "eject", "", 0)
	log.Add(7, "body", "step", "climb", "", 0.3)

	a := NewAmmoStore(30, 90)
	r := BuildRunReport(log, 100, reportWeapon{a})

	if r.Shots != 2 || r.DryFires != 1 || r.Reloads != 1 || r.DryReloads != 1 {
		t.Fatalf("weapon tallies wrong: %+v", r)
	}
	if r.Casings != 1 || r.StepsClimbed != 1 {
		t.Fatalf("entity tallies wrong: %+v", r)
	}
	if r.EndMagazine != 30 || r.EndReserve != 90 {
		t.Fatalf("end state wrong: %+v", r)
	}
}

func TestBuildRunReport_NilWeapon(t *testing.T) {
	r := BuildRunReport(NewSimLog(false), 10, nil)
	if r.EndMagazine != 0 || r.EndReserve != 0 {
		t.Fatalf("nil weapon should leave end state zero: %+v", r)
	}
}

func TestRunReport_String(t *testing.T) {
	r := RunReport{Ticks: 600, Shots: 42, StepsClimbed: 2}
	s := r.String()
	for _, want := range []string{"ticks", "shots", "steps climbed", "42"} {
		if !strings.Contains(s, want) {
			t.Fatalf("report string missing %q:\n%s", want, s)
		}
	}
}

func TestAggregateReport_Averages(t *testing.T) {
	a := AggregateReport{Runs: []RunReport{
		{Shots: 10, StepsClimbed: 2},
		{Shots: 20, StepsClimbed: 4},
	}}
	s := a.String()
	if !strings.Contains(s, "runs 2") {
		t.Fatalf("missing run count:\n%s", s)
	}
	if !strings.Contains(s, "15.0") || !strings.Contains(s, "3.0") {
		t.Fatalf("averages missing:\n%s", s)
	}
}

func TestAggregateReport_Empty(t *testing.T) {
	s := AggregateReport{}.String()
	if !strings.Contains(s, "runs 0") {
		t.Fatalf("empty aggregate should render zero runs:\n%s", s)
	}
}

// reportWeapon adapts a bare AmmoStore to the Weapon surface the report
// reads, keeping these tests off the full rifle wiring.
type reportWeapon struct {
	ammo *AmmoStore
}

func (w reportWeapon) Fire(float64) bool { return false }
func (w reportWeapon) Reload() bool      { return false }
func (w reportWeapon) EjectCasing() bool { return false }
func (w reportWeapon) FillAmmo(int)      {}
func (w reportWeapon) AmmoCurrent() int  { return w.ammo.Current() }
func (w reportWeapon) AmmoReserve() int  { return w.ammo.Reserve() }
func (w reportWeapon) AmmoCapacity() int { return w.ammo.Capacity() }
func (w reportWeapon) IsFull() bool      { return w.ammo.IsFull() }
func (w reportWeapon) HasAmmo() bool     { return w.ammo.HasAmmo() }
func (w reportWeapon) Holster()          {}
func (w reportWeapon) Unholster()        {}
