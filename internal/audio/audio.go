// Package audio implements the gameplay AudioSink on gopxl/beep with
// short synthesized clips, so the module ships no sound assets. Hosts
// that fail speaker initialization fall back to the core's no-op sink.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Trigger-Step/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// clipParams describes one synthesized clip. Looping clips (footsteps)
// repeat with a gap of silence until paused.
type clipParams struct {
	freq float64
	dur  time.Duration
	loop bool
	gap  time.Duration
}

var clips = map[game.ClipName]clipParams{
	game.ClipFireEmpty:    {freq: 1100, dur: 40 * time.Millisecond},
	game.ClipReload:       {freq: 420, dur: 180 * time.Millisecond},
	game.ClipReloadEmpty:  {freq: 320, dur: 260 * time.Millisecond},
	game.ClipHolster:      {freq: 240, dur: 120 * time.Millisecond},
	game.ClipUnholster:    {freq: 300, dur: 120 * time.Millisecond},
	game.ClipFootstepWalk: {freq: 150, dur: 60 * time.Millisecond, loop: true, gap: 440 * time.Millisecond},
	game.ClipFootstepRun:  {freq: 170, dur: 50 * time.Millisecond, loop: true, gap: 240 * time.Millisecond},
}

// Sink plays named gameplay clips through the system speaker.
type Sink struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	loops map[game.ClipName]*beep.Ctrl
}

// NewSink initializes the speaker and returns a ready sink.
func NewSink() (*Sink, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Sink{
		mixer: &beep.Mixer{},
		loops: make(map[game.ClipName]*beep.Ctrl),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts the named clip. One-shot clips play to completion; loop
// clips keep repeating until paused.
func (s *Sink) Play(c game.ClipName) {
	p, ok := clips[c]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !p.loop {
		s.mixer.Add(newTone(p.freq, p.dur))
		return
	}
	if ctrl, running := s.loops[c]; running {
		ctrl.Paused = false
		return
	}
	ctrl := &beep.Ctrl{Streamer: newLoopTone(p.freq, p.dur, p.gap)}
	s.loops[c] = ctrl
	s.mixer.Add(ctrl)
}

// Pause stops a looping clip; one-shot clips are unaffected.
func (s *Sink) Pause(c game.ClipName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctrl, ok := s.loops[c]; ok {
		ctrl.Paused = true
	}
}

// tone is a sine burst with a linear decay envelope.
type tone struct {
	freq  float64
	phase float64
	total int
	pos   int
}

func newTone(freq float64, dur time.Duration) beep.Streamer {
	return &tone{freq: freq, total: sampleRate.N(dur)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		decay := 1.0 - float64(t.pos)/float64(t.total)
		v := math.Sin(2*math.Pi*t.phase) * decay * 0.4
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// loopTone repeats a decaying burst followed by silence, forever.
type loopTone struct {
	freq   float64
	phase  float64
	burst  int
	period int
	pos    int
}

func newLoopTone(freq float64, dur, gap time.Duration) beep.Streamer {
	burst := sampleRate.N(dur)
	return &loopTone{freq: freq, burst: burst, period: burst + sampleRate.N(gap)}
}

func (t *loopTone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		var v float64
		if t.pos < t.burst {
			decay := 1.0 - float64(t.pos)/float64(t.burst)
			v = math.Sin(2*math.Pi*t.phase) * decay * 0.35
			t.phase += t.freq / float64(sampleRate)
			t.phase -= math.Floor(t.phase)
		}
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		if t.pos >= t.period {
			t.pos = 0
			t.phase = 0
		}
	}
	return len(samples), true
}

func (t *loopTone) Err() error { return nil }
