package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Trigger-Step/internal/game"
)

// testSink builds a sink around a bare mixer, skipping speaker init so
// the tests run headless.
func testSink() *Sink {
	return &Sink{
		mixer: &beep.Mixer{},
		loops: make(map[game.ClipName]*beep.Ctrl),
	}
}

func TestTone_FiniteAndDecaying(t *testing.T) {
	const dur = 10 * time.Millisecond
	total := sampleRate.N(dur)
	s := newTone(440, dur)

	buf := make([][2]float64, total)
	n, ok := s.Stream(buf)
	if n != total || !ok {
		t.Fatalf("first stream: n=%d ok=%v, want %d true", n, ok, total)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Fatalf("drained tone kept streaming: n=%d ok=%v", n, ok)
	}

	// The decay envelope brings the tail quieter than the head.
	head, tail := 0.0, 0.0
	for i := 0; i < total/4; i++ {
		head += buf[i][0] * buf[i][0]
		tail += buf[total-1-i][0] * buf[total-1-i][0]
	}
	if tail >= head {
		t.Fatalf("no decay: head energy %f, tail energy %f", head, tail)
	}
}

func TestLoopTone_RepeatsForever(t *testing.T) {
	s := newLoopTone(150, 5*time.Millisecond, 10*time.Millisecond)
	period := sampleRate.N(5*time.Millisecond) + sampleRate.N(10*time.Millisecond)

	buf := make([][2]float64, period*3)
	n, ok := s.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("loop tone stopped: n=%d ok=%v", n, ok)
	}

	// Burst samples carry signal, gap samples are silent, every period.
	for p := 0; p < 3; p++ {
		base := p * period
		burstEnergy := 0.0
		for i := 1; i < sampleRate.N(5*time.Millisecond); i++ {
			burstEnergy += buf[base+i][0] * buf[base+i][0]
		}
		if burstEnergy == 0 {
			t.Fatalf("period %d: burst is silent", p)
		}
		if v := buf[base+period-1][0]; v != 0 {
			t.Fatalf("period %d: gap sample not silent: %f", p, v)
		}
	}
}

func TestSink_OneShotAddsToMixer(t *testing.T) {
	s := testSink()
	s.Play(game.ClipReload)
	if s.mixer.Len() != 1 {
		t.Fatalf("mixer has %d streamers, want 1", s.mixer.Len())
	}
	// Unknown clips are ignored.
	s.Play(game.ClipName("no-such-clip"))
	if s.mixer.Len() != 1 {
		t.Fatal("unknown clip reached the mixer")
	}
}

func TestSink_LoopPauseResume(t *testing.T) {
	s := testSink()

	s.Play(game.ClipFootstepWalk)
	ctrl, ok := s.loops[game.ClipFootstepWalk]
	if !ok || ctrl.Paused {
		t.Fatal("loop should be registered and running")
	}
	if s.mixer.Len() != 1 {
		t.Fatalf("mixer has %d streamers, want 1", s.mixer.Len())
	}

	s.Pause(game.ClipFootstepWalk)
	if !ctrl.Paused {
		t.Fatal("pause did not stop the loop")
	}

	// Resuming reuses the existing ctrl instead of stacking a new loop.
	s.Play(game.ClipFootstepWalk)
	if ctrl.Paused {
		t.Fatal("replay did not unpause the loop")
	}
	if s.mixer.Len() != 1 {
		t.Fatalf("resume added a duplicate streamer: mixer len %d", s.mixer.Len())
	}
}

func TestSink_PauseUnknownClipIsNoop(t *testing.T) {
	s := testSink()
	s.Pause(game.ClipReload) // one-shot, never tracked
	s.Pause(game.ClipFootstepRun)
	if len(s.loops) != 0 {
		t.Fatalf("pause created loop entries: %v", s.loops)
	}
}
