package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuning_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `
walk_speed: 4.5
step_height: 0.4
weapon:
  magazine_capacity: 20
  fire_interval_ticks: 10
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	if tuning.WalkSpeed != 4.5 {
		t.Errorf("walk_speed=%f, want 4.5", tuning.WalkSpeed)
	}
	if tuning.StepHeight != 0.4 {
		t.Errorf("step_height=%f, want 0.4", tuning.StepHeight)
	}
	if tuning.Weapon.MagazineCapacity != 20 || tuning.Weapon.FireIntervalTicks != 10 {
		t.Errorf("weapon overrides not applied: %+v", tuning.Weapon)
	}

	// Keys absent from the file keep their compiled-in defaults.
	def := DefaultTuning()
	if tuning.RunSpeed != def.RunSpeed || tuning.Gravity != def.Gravity {
		t.Errorf("defaults clobbered: run=%f gravity=%f", tuning.RunSpeed, tuning.Gravity)
	}
	if tuning.Weapon.StartingReserve != def.Weapon.StartingReserve {
		t.Errorf("nested default clobbered: reserve=%d", tuning.Weapon.StartingReserve)
	}
}

func TestLoadTuning_MissingFile(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	// The returned tuning is still usable.
	if tuning.WalkSpeed != DefaultTuning().WalkSpeed {
		t.Fatalf("fallback tuning corrupted: walk=%f", tuning.WalkSpeed)
	}
}
