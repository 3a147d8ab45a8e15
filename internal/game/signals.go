package game

// AnimTrigger names an animation the host's animation layer should start.
type AnimTrigger string

const (
	AnimFire        AnimTrigger = "fire"
	AnimReload      AnimTrigger = "reload"
	AnimReloadEmpty AnimTrigger = "reload-empty"
)

// ClipName names an audio clip the host's audio layer should play.
type ClipName string

const (
	ClipFireEmpty    ClipName = "fire-empty"
	ClipFootstepWalk ClipName = "footstep-walk"
	ClipFootstepRun  ClipName = "footstep-run"
	ClipHolster      ClipName = "holster"
	ClipUnholster    ClipName = "unholster"
	ClipReload       ClipName = "reload"
	ClipReloadEmpty  ClipName = "reload-empty"
)

// AnimSink receives named animation triggers from the sim core.
type AnimSink interface {
	Trigger(t AnimTrigger)
}

// AnimSinkFunc adapts a function to AnimSink.
type AnimSinkFunc func(t AnimTrigger)

func (f AnimSinkFunc) Trigger(t AnimTrigger) { f(t) }

// AudioSink receives named clip playback requests. Footstep clips loop
// while playing and are paused via Pause; one-shot clips ignore Pause.
type AudioSink interface {
	Play(c ClipName)
	Pause(c ClipName)
}

// AmmoObserver is notified whenever the equipped weapon's counts change.
// UI collaborators read through this; they never mutate ammunition state.
type AmmoObserver interface {
	AmmoChanged(current, reserve int)
}

// AmmoObserverFunc adapts a function to AmmoObserver.
type AmmoObserverFunc func(current, reserve int)

func (f AmmoObserverFunc) AmmoChanged(current, reserve int) { f(current, reserve) }

type nopAnimSink struct{}

func (nopAnimSink) Trigger(AnimTrigger) {}

type nopAudioSink struct{}

func (nopAudioSink) Play(ClipName)  {}
func (nopAudioSink) Pause(ClipName) {}

type nopAmmoObserver struct{}

func (nopAmmoObserver) AmmoChanged(int, int) {}

// NopAnimSink discards all triggers.
func NopAnimSink() AnimSink { return nopAnimSink{} }

// NopAudioSink discards all playback requests.
func NopAudioSink() AudioSink { return nopAudioSink{} }

// NopAmmoObserver discards all notifications.
func NopAmmoObserver() AmmoObserver { return nopAmmoObserver{} }
