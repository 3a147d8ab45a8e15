package main

import (
	"testing"

	"github.com/Garsondee/Trigger-Step/internal/game"
)

func TestRunOnce_FiringRange(t *testing.T) {
	r := runOnce("firing-range", 1, 600, game.DefaultTuning(), false)
	if r.Shots == 0 {
		t.Fatal("firing range produced no shots")
	}
	if r.Reloads == 0 {
		t.Fatal("dry magazines were never reloaded")
	}
	if r.EndMagazine < 0 || r.EndReserve < 0 {
		t.Fatalf("ammo state went negative: %+v", r)
	}
}

func TestRunOnce_AssaultCourse(t *testing.T) {
	r := runOnce("assault-course", 42, 1200, game.DefaultTuning(), false)
	if r.StepsClimbed < 2 {
		t.Fatalf("climbed %d steps on the course, want at least 2", r.StepsClimbed)
	}
	if r.Shots == 0 {
		t.Fatal("assault course fired no shots")
	}
}

func TestRunOnce_Deterministic(t *testing.T) {
	a := runOnce("assault-course", 7, 600, game.DefaultTuning(), false)
	b := runOnce("assault-course", 7, 600, game.DefaultTuning(), false)
	if a != b {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
}
