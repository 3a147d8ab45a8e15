package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Trigger-Step/internal/audio"
	"github.com/Garsondee/Trigger-Step/internal/game"
)

const (
	screenW = 960
	screenH = 540

	fixedDt = 1.0 / 60.0

	// Top-down debug view: world X/Z mapped to screen, pixels per unit.
	viewScale = 40.0
)

// inputCharacter implements game.CharacterSource over the keyboard.
// WASD moves, shift runs, C crouches, left/right arrows turn.
type inputCharacter struct {
	body *game.Body
	yaw  float64
}

func (c *inputCharacter) MoveIntent() (float64, float64) {
	var forward, strafe float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= 1
	}
	return forward, strafe
}

func (c *inputCharacter) Running() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
}

func (c *inputCharacter) CrouchHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyC)
}

func (c *inputCharacter) Yaw() float64 { return c.yaw }

func (c *inputCharacter) AimTransform() game.Transform {
	eye := c.body.Pos.Add(game.Vec3{Y: c.body.Height * 0.9})
	return game.Transform{Pos: eye, Forward: game.RotateY(game.Vec3{Z: 1}, c.yaw)}
}

// debugEntity is a spawned projectile or casing kept alive briefly for
// the debug view. The host integrates these, not the sim core.
type debugEntity struct {
	kind game.EntityKind
	pos  game.Vec3
	vel  game.Vec3
	age  int
}

// debugSpawner implements game.Spawner and animates spawned entities
// for the top-down view.
type debugSpawner struct {
	entities []debugEntity
	handles  []game.EntityHandle
	next     game.EntityHandle
}

func (s *debugSpawner) Spawn(kind game.EntityKind, pos, forward game.Vec3) game.EntityHandle {
	h := s.next
	s.next++
	s.entities = append(s.entities, debugEntity{kind: kind, pos: pos})
	s.handles = append(s.handles, h)
	return h
}

func (s *debugSpawner) ApplyImpulse(h game.EntityHandle, impulse game.Vec3) {
	for i, hh := range s.handles {
		if hh == h {
			s.entities[i].vel = s.entities[i].vel.Add(impulse)
			return
		}
	}
}

func (s *debugSpawner) update(dt float64) {
	const maxAge = 120 // two seconds on screen
	kept := s.entities[:0]
	keptH := s.handles[:0]
	for i := range s.entities {
		e := s.entities[i]
		if e.kind == game.EntityCasing {
			e.vel.Y -= 20 * dt
		}
		e.pos = e.pos.Add(e.vel.Scale(dt))
		e.age++
		if e.age <= maxAge && e.pos.Y > -1 {
			kept = append(kept, e)
			keptH = append(keptH, s.handles[i])
		}
	}
	s.entities = kept
	s.handles = keptH
}

// App is the Ebiten host. It owns the loop the sim core does not:
// Update drives the fixed tick at 60TPS, Draw renders the debug view.
type App struct {
	log zerolog.Logger

	world   *game.World
	body    *game.Body
	char    *inputCharacter
	sim     *game.Sim
	rifle   *game.Rifle
	loadout *game.Loadout
	spawner *debugSpawner
	simLog  *game.SimLog

	ammoCurrent int
	ammoReserve int
	flashTicks  int
	prevReload  bool
	prevEject   bool
	prevCopy    bool
	boxes       []game.Box
}

func newApp(log zerolog.Logger, tuning game.Tuning, sink game.AudioSink) *App {
	a := &App{log: log}
	a.world = game.NewWorld()
	a.world.AddGroundPlane(0)

	// A small assault course: stairs the step climber can take, one
	// ledge it cannot, and a wall for the aim-correction ray.
	addBox := func(min, max game.Vec3) {
		id := a.world.AddBox(min, max, game.LayerWorld)
		if b, ok := a.world.BoxByID(id); ok {
			a.boxes = append(a.boxes, b)
		}
	}
	addBox(game.Vec3{X: -1, Y: 0, Z: 3}, game.Vec3{X: 1, Y: 0.3, Z: 4})
	addBox(game.Vec3{X: -1, Y: 0, Z: 4}, game.Vec3{X: 1, Y: 0.6, Z: 5})
	addBox(game.Vec3{X: 3, Y: 0, Z: 2}, game.Vec3{X: 4, Y: 1.2, Z: 4})
	addBox(game.Vec3{X: -5, Y: 0, Z: 6}, game.Vec3{X: 5, Y: 2.5, Z: 6.5})

	a.simLog = game.NewSimLog(false)
	a.body = &game.Body{
		Collider: game.ColliderNone,
		Pos:      game.Vec3{},
		Radius:   tuning.CapsuleRadius,
		Height:   tuning.NormalHeight,
	}
	a.char = &inputCharacter{body: a.body}
	a.sim = game.NewSim(a.world, a.body, a.char, tuning, sink, a.simLog)
	a.spawner = &debugSpawner{}

	a.rifle = game.NewRifle(tuning.Weapon, game.RifleDeps{
		World:     a.world,
		Spawner:   a.spawner,
		Audio:     sink,
		Anim:      game.AnimSinkFunc(func(t game.AnimTrigger) { a.onAnim(t) }),
		Observer:  game.AmmoObserverFunc(func(cur, res int) { a.ammoCurrent, a.ammoReserve = cur, res }),
		Muzzle:    a.muzzleTransform,
		AimOrigin: a.char.AimTransform,
		EjectPort: a.ejectTransform,
		MuzzleEffect: func() {
			a.flashTicks = 4
		},
		Ticks: a.sim.Tick,
		Log:   a.simLog,
	})
	a.ammoCurrent = a.rifle.AmmoCurrent()
	a.ammoReserve = a.rifle.AmmoReserve()
	a.loadout = &game.Loadout{}
	a.loadout.Equip(a.rifle)
	return a
}

// onAnim is the host's animation-event relay: triggers that would start
// character animations also fire their mid-animation weapon callbacks
// here, since the debug view has no skeletal layer.
func (a *App) onAnim(t game.AnimTrigger) {
	if t == game.AnimFire {
		a.rifle.EjectCasing()
	}
}

func (a *App) muzzleTransform() game.Transform {
	aim := a.char.AimTransform()
	pos := aim.Pos.Add(aim.Forward.Scale(0.3)).Add(game.Vec3{Y: -0.15})
	return game.Transform{Pos: pos, Forward: aim.Forward}
}

func (a *App) ejectTransform() game.Transform {
	aim := a.char.AimTransform()
	right := game.RotateY(aim.Forward, 1.5708)
	return game.Transform{Pos: aim.Pos.Add(right.Scale(0.2)), Forward: right}
}

func (a *App) Update() error {
	const turnRate = 0.04
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.char.yaw -= turnRate
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.char.yaw += turnRate
	}

	// Held trigger: the rifle's own fire interval paces automatic fire.
	if ebiten.IsKeyPressed(ebiten.KeyF) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		spread := 1.0
		if a.char.CrouchHeld() {
			spread = 0.5
		}
		a.rifle.Fire(spread)
	}

	reload := ebiten.IsKeyPressed(ebiten.KeyR)
	if reload && !a.prevReload {
		a.rifle.Reload()
	}
	a.prevReload = reload

	eject := ebiten.IsKeyPressed(ebiten.KeyE)
	if eject && !a.prevEject {
		a.rifle.EjectCasing()
	}
	a.prevEject = eject

	copyKey := ebiten.IsKeyPressed(ebiten.KeyP)
	if copyKey && !a.prevCopy {
		report := game.DebugReport(a.simLog, a.sim.Tick(), 300, a.body, a.rifle)
		if err := clipboard.WriteAll(report); err != nil {
			a.log.Warn().Err(err).Msg("clipboard copy failed")
		} else {
			a.log.Info().Msg("debug report copied to clipboard")
		}
	}
	a.prevCopy = copyKey

	a.sim.FixedTick(fixedDt)
	a.sim.VariableTick(fixedDt)
	a.spawner.update(fixedDt)
	if a.flashTicks > 0 {
		a.flashTicks--
	}
	return nil
}

func toScreen(p game.Vec3) (float32, float32) {
	return float32(screenW/2 + p.X*viewScale), float32(screenH/2 + p.Z*viewScale)
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 18, A: 255})

	// Obstacles, brighter when taller.
	for _, b := range a.boxes {
		x0, y0 := toScreen(b.Min)
		x1, y1 := toScreen(b.Max)
		shade := uint8(90 + b.Max.Y*40)
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0,
			color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
	}

	// Spawned entities.
	for _, e := range a.spawner.entities {
		x, y := toScreen(e.pos)
		c := color.RGBA{R: 250, G: 220, B: 80, A: 255}
		r := float32(2)
		if e.kind == game.EntityCasing {
			c = color.RGBA{R: 180, G: 140, B: 40, A: 255}
			r = 1.5
		}
		vector.DrawFilledCircle(screen, x, y, r, c, false)
	}

	// Body with facing line; muzzle flash ring while active.
	bx, by := toScreen(a.body.Pos)
	bodyCol := color.RGBA{R: 90, G: 170, B: 250, A: 255}
	if a.char.CrouchHeld() {
		bodyCol = color.RGBA{R: 60, G: 120, B: 190, A: 255}
	}
	vector.DrawFilledCircle(screen, bx, by, float32(a.body.Radius*viewScale), bodyCol, false)
	fwd := game.RotateY(game.Vec3{Z: 1}, a.char.yaw)
	fx, fy := toScreen(a.body.Pos.Add(fwd.Scale(0.8)))
	vector.StrokeLine(screen, bx, by, fx, fy, 2, color.RGBA{R: 230, G: 230, B: 230, A: 255}, false)
	if a.flashTicks > 0 {
		mx, my := toScreen(a.muzzleTransform().Pos)
		vector.DrawFilledCircle(screen, mx, my, 4, color.RGBA{R: 255, G: 200, B: 60, A: 255}, false)
	}

	hud := fmt.Sprintf("AMMO %d/%d  RESERVE %d", a.ammoCurrent, a.rifle.AmmoCapacity(), a.ammoReserve)
	text.Draw(screen, hud, basicfont.Face7x13, 12, 20, color.White)
	text.Draw(screen, "WASD move  shift run  C crouch  arrows turn  F/LMB fire  R reload  E eject  P report",
		basicfont.Face7x13, 12, screenH-10, color.RGBA{R: 150, G: 150, B: 150, A: 255})
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "optional tuning config file (TOML/YAML)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	tuning := game.DefaultTuning()
	if configPath != "" {
		t, err := game.LoadTuning(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load tuning")
		}
		tuning = t
		log.Info().Str("path", configPath).Msg("tuning loaded")
	}

	var sink game.AudioSink
	if s, err := audio.NewSink(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running silent")
		sink = game.NopAudioSink()
	} else {
		sink = s
	}

	ebiten.SetWindowTitle("Trigger Step")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(newApp(log, tuning, sink)); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
