// Package game implements the flaptty simulation engine: fixed-tick
// physics, obstacle spawning, collision detection, scoring and the
// session state machine. The package is pure logic with no external
// dependencies (especially no Bubble Tea); given the same seed and the
// same command sequence it produces identical sessions, which is what
// the test suite relies on.
package game

import (
	"fmt"
	"math/rand"

	"github.com/ndanilko/flaptty/internal/config"
	"github.com/ndanilko/flaptty/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseIdle is the state before the first jump: no obstacles, entity
	// frozen at field center.
	PhaseIdle Phase = iota

	// PhaseRunning means physics and spawning are active.
	PhaseRunning

	// PhaseGameOver is terminal for the session. Physics and spawning
	// are halted and the final score is retained until the next restart.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session owns all mutable game state for one player: the entity, the
// live obstacle collection, the score and the spawn scheduler. It is not
// safe for concurrent use; the platform drives it from a single loop of
// interleaved Jump and Tick calls.
type Session struct {
	cfg    config.Config
	fieldW int
	fieldH int
	rng    *rand.Rand
	events Events

	phase       Phase
	entity      Entity
	obstacles   []Obstacle
	score       int
	tick        uint64
	nextPair    uint64
	sched       *SpawnScheduler
	pendingJump bool
}

// NewSession creates a session in the Idle phase. It validates the
// config against the field dimensions so that degenerate gap bounds are
// rejected here rather than at the first spawn.
func NewSession(cfg config.Config, rt core.RuntimeConfig, events Events) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if rt.TickRate <= 0 {
		return nil, fmt.Errorf("game: tick rate must be positive, got %d", rt.TickRate)
	}
	if rt.ScreenW < cfg.Player.X+cfg.Player.Width+cfg.Obstacles.Width {
		return nil, fmt.Errorf("game: field width %d too small for player at x=%d", rt.ScreenW, cfg.Player.X)
	}
	// The gap must fit between the minimum margins on both edges.
	if rt.ScreenH-cfg.Obstacles.GapHeight-2*cfg.Obstacles.MinGapY < 0 {
		return nil, fmt.Errorf("game: field height %d cannot fit gap %d with margin %d",
			rt.ScreenH, cfg.Obstacles.GapHeight, cfg.Obstacles.MinGapY)
	}
	if rt.ScreenH-cfg.Field.TopMargin-cfg.Field.BottomMargin < cfg.Player.Height {
		return nil, fmt.Errorf("game: field height %d leaves no room between margins", rt.ScreenH)
	}
	if events == nil {
		events = NopEvents{}
	}

	s := &Session{
		cfg:    cfg,
		fieldW: rt.ScreenW,
		fieldH: rt.ScreenH,
		rng:    rand.New(rand.NewSource(rt.Seed)),
		events: events,
		sched:  NewSpawnScheduler(rt.TickRate),
	}
	s.resetEntity()
	return s, nil
}

// resetEntity places the entity at field center with zero velocity.
func (s *Session) resetEntity() {
	s.entity = Entity{
		X: s.cfg.Player.X,
		Y: float64(s.fieldH-s.cfg.Player.Height) / 2.0,
		W: s.cfg.Player.Width,
		H: s.cfg.Player.Height,
	}
}

// Jump is the single inbound command besides Tick. In Idle or GameOver
// it (re)starts the session; while Running it queues an upward impulse
// consumed by the next Tick.
func (s *Session) Jump() {
	switch s.phase {
	case PhaseRunning:
		s.pendingJump = true
		s.events.JumpOccurred()
	case PhaseIdle, PhaseGameOver:
		s.start()
	}
}

// start resets entity, obstacles and score and arms the first spawn
// after the grace delay. A restart from GameOver is indistinguishable
// from a first start; everything happens inside this one call, so no
// tick can observe a half-reset session.
func (s *Session) start() {
	s.resetEntity()
	s.obstacles = s.obstacles[:0]
	s.score = 0
	s.tick = 0
	s.pendingJump = false
	s.phase = PhaseRunning
	s.sched.Arm(FirstSpawnDelayMS)
	s.events.SessionStarted()
}

// Tick advances the simulation by one frame. It does nothing outside the
// Running phase, which makes repeated ticks after game over harmless.
//
// Order within a tick is load-bearing: spawn, entity physics, obstacle
// advance, scoring, despawn, collision. Scoring must see post-advance
// positions in the same tick the obstacles cross the entity.
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}
	s.tick++

	// Spawn timer. Re-armed immediately with the interval for the score
	// at re-arm time.
	if s.sched.Tick() {
		s.spawnPair()
		s.sched.Arm(SpawnInterval(s.score))
	}

	// Entity physics: semi-implicit Euler. A jump overwrites velocity
	// instead of accumulating with gravity.
	if s.pendingJump {
		s.entity.Vel = s.cfg.Physics.JumpImpulse
		s.pendingJump = false
	} else {
		s.entity.Vel += s.cfg.Physics.Gravity
	}
	s.entity.Y += s.entity.Vel

	// Obstacle advance. Speed is derived from score every tick, never
	// cached across ticks.
	speed := s.CurrentSpeed()
	for i := range s.obstacles {
		s.obstacles[i].X -= speed
	}

	// Scoring. Only the top half of a pair is tested so each pair counts
	// exactly once; the flag is then flipped on both halves.
	leading := s.entity.Bounds().Right()
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Edge == EdgeTop && !o.passed && o.Bounds().Right() < leading {
			s.markPassed(o.Pair)
			s.score++
		}
	}

	// Despawn obstacles that fully left the field. In-place filter, so
	// removing one element never skips another.
	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Bounds().Right() > 0 {
			live = append(live, o)
		}
	}
	s.obstacles = live

	// Terminal check last. One signal, however many overlaps exist.
	if s.collided() {
		s.end()
	}
}

// markPassed flips the scoring flag on both halves of a pair.
func (s *Session) markPassed(pair uint64) {
	for i := range s.obstacles {
		if s.obstacles[i].Pair == pair {
			s.obstacles[i].passed = true
		}
	}
}

// collided reports whether any terminal condition holds this tick.
// The obstacle scan short-circuits on the first overlap.
func (s *Session) collided() bool {
	eb := s.entity.Bounds()
	for _, o := range s.obstacles {
		if eb.Intersects(o.Bounds()) {
			return true
		}
	}

	// Field margin bands. The ground check counts touching as a hit so
	// the entity visibly rests on the ground line when it dies there.
	if s.entity.Y < float64(s.cfg.Field.TopMargin) {
		return true
	}
	if s.entity.Y+float64(s.entity.H) >= float64(s.fieldH-s.cfg.Field.BottomMargin) {
		return true
	}
	return false
}

// end performs the Running -> GameOver transition. Idempotent: repeated
// terminal signals are no-ops.
func (s *Session) end() {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.sched.Disarm()
	s.events.SessionEnded(s.score)
}

// CurrentSpeed returns the obstacle scroll speed for the current score.
func (s *Session) CurrentSpeed() float64 {
	return s.cfg.Physics.BaseSpeed + float64(s.score)*s.cfg.Physics.SpeedIncrease
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score. After game over it is the final score.
func (s *Session) Score() int {
	return s.score
}
