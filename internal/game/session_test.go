package game

import (
	"testing"

	"github.com/ndanilko/flaptty/internal/config"
	"github.com/ndanilko/flaptty/internal/core"
)

// recordingEvents counts event deliveries for assertions.
type recordingEvents struct {
	started   int
	jumps     int
	ended     int
	lastScore int
}

func (r *recordingEvents) SessionStarted() { r.started++ }
func (r *recordingEvents) JumpOccurred()   { r.jumps++ }
func (r *recordingEvents) SessionEnded(score int) {
	r.ended++
	r.lastScore = score
}

// testConfig uses the reference tuning from the scenario suite: gravity
// 0.5, base speed 12.
func testConfig() config.Config {
	return config.Config{
		Physics: config.Physics{
			Gravity:       0.5,
			JumpImpulse:   -8,
			BaseSpeed:     12,
			SpeedIncrease: 0.5,
		},
		Obstacles: config.Obstacles{
			Width:     4,
			GapHeight: 10,
			MinGapY:   2,
		},
		Player: config.Player{
			X:      12,
			Width:  2,
			Height: 2,
		},
		Field: config.Field{
			TopMargin:    1,
			BottomMargin: 2,
		},
	}
}

// testRuntime uses a 50 Hz tick so every tick is exactly 20 ms and the
// spawn countdown hits millisecond boundaries without float drift.
func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 200, ScreenH: 40, TickRate: 50, Seed: 1}
}

func newTestSession(t *testing.T, cfg config.Config, rt core.RuntimeConfig, ev Events) *Session {
	t.Helper()
	s, err := NewSession(cfg, rt, ev)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestNewSessionStartsIdle(t *testing.T) {
	s := newTestSession(t, testConfig(), testRuntime(), nil)

	if s.Phase() != PhaseIdle {
		t.Errorf("new session phase = %v, expected Idle", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("new session score = %d, expected 0", s.Score())
	}
	if len(s.obstacles) != 0 {
		t.Errorf("new session has %d obstacles, expected 0", len(s.obstacles))
	}

	// Entity frozen at field center.
	wantY := float64(40-2) / 2.0
	if s.entity.Y != wantY {
		t.Errorf("entity y = %g, expected field center %g", s.entity.Y, wantY)
	}
}

func TestTickInIdleIsNoOp(t *testing.T) {
	s := newTestSession(t, testConfig(), testRuntime(), nil)

	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	after := s.Snapshot()

	if after.Phase != PhaseIdle || after.Player.Y != before.Player.Y || after.Tick != before.Tick {
		t.Errorf("ticking in Idle must not advance anything: before %+v, after %+v", before.Player, after.Player)
	}
}

func TestJumpFromIdleStartsRunning(t *testing.T) {
	ev := &recordingEvents{}
	s := newTestSession(t, testConfig(), testRuntime(), ev)

	s.Jump()

	if s.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected Running", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
	if s.entity.Vel != 0 {
		t.Errorf("starting jump must reset velocity to zero, got %g", s.entity.Vel)
	}
	if ev.started != 1 {
		t.Errorf("SessionStarted fired %d times, expected 1", ev.started)
	}
	if ev.jumps != 0 {
		t.Errorf("the starting jump must not also report JumpOccurred, got %d", ev.jumps)
	}
	if !s.sched.Armed() {
		t.Error("starting a session must arm the spawn timer")
	}
}

func TestJumpWhileRunningQueuesImpulse(t *testing.T) {
	ev := &recordingEvents{}
	s := newTestSession(t, testConfig(), testRuntime(), ev)
	s.Jump()

	s.Jump()
	if s.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected Running", s.Phase())
	}
	if ev.jumps != 1 {
		t.Errorf("JumpOccurred fired %d times, expected 1", ev.jumps)
	}

	s.Tick()
	if s.entity.Vel != -8 {
		t.Errorf("jump must overwrite velocity with the impulse, got %g", s.entity.Vel)
	}
}

func TestRestartClearsLeftoverState(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg, testRuntime(), nil)
	s.Jump()

	// Leave stale obstacles and a score behind, then kill the session.
	s.obstacles = append(s.obstacles,
		Obstacle{X: 100, Y: 0, W: 4, H: 5, Edge: EdgeTop, Pair: 7},
		Obstacle{X: 100, Y: 15, W: 4, H: 25, Edge: EdgeBottom, Pair: 7},
	)
	s.score = 42
	s.entity.Y = float64(40) // Into the ground band
	s.Tick()
	if s.Phase() != PhaseGameOver {
		t.Fatal("setup: session should be over")
	}

	// Restart must be indistinguishable from a first start.
	s.Jump()

	if s.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, expected Running", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("restart must reset score to 0, got %d", s.Score())
	}
	if len(s.obstacles) != 0 {
		t.Errorf("restart must clear obstacles, got %d left", len(s.obstacles))
	}
	if s.entity.Vel != 0 {
		t.Errorf("restart must zero velocity, got %g", s.entity.Vel)
	}
	wantY := float64(40-2) / 2.0
	if s.entity.Y != wantY {
		t.Errorf("restart must recenter entity, y = %g, expected %g", s.entity.Y, wantY)
	}
}

func TestGameOverIsTerminalAndIdempotent(t *testing.T) {
	ev := &recordingEvents{}
	s := newTestSession(t, testConfig(), testRuntime(), ev)
	s.Jump()

	s.entity.Y = 100 // Way past the ground
	s.Tick()
	if s.Phase() != PhaseGameOver {
		t.Fatal("session should be over")
	}
	finalScore := s.Score()

	// Further ticks must change nothing.
	snap := s.Snapshot()
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	after := s.Snapshot()

	if after.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected GameOver", after.Phase)
	}
	if after.Player != snap.Player {
		t.Errorf("player state changed after game over: %+v vs %+v", snap.Player, after.Player)
	}
	if s.Score() != finalScore {
		t.Errorf("final score changed after game over: %d vs %d", s.Score(), finalScore)
	}
	if ev.ended != 1 {
		t.Errorf("SessionEnded fired %d times, expected exactly 1", ev.ended)
	}
}

func TestSimultaneousTerminalConditionsEndOnce(t *testing.T) {
	ev := &recordingEvents{}
	s := newTestSession(t, testConfig(), testRuntime(), ev)
	s.Jump()

	// Overlap an obstacle and the ground band in the same tick.
	s.entity.Y = float64(40 - 2 - 2) // Touches the ground after one gravity step
	s.obstacles = append(s.obstacles,
		Obstacle{X: 10, Y: 20, W: 10, H: 20, Edge: EdgeBottom, Pair: 1},
	)
	s.Tick()

	if s.Phase() != PhaseGameOver {
		t.Fatal("session should be over")
	}
	if ev.ended != 1 {
		t.Errorf("two terminal conditions in one tick must end the session once, SessionEnded fired %d times", ev.ended)
	}
}

func TestScoreMonotonicWithinSession(t *testing.T) {
	cfg := testConfig()
	// Slow everything down so the session survives long enough to score.
	cfg.Physics.Gravity = 0.0001
	cfg.Physics.BaseSpeed = 2
	cfg.Physics.SpeedIncrease = 0
	rt := testRuntime()
	rt.ScreenH = 1000

	s := newTestSession(t, cfg, rt, nil)
	s.Jump()

	prev := 0
	for i := 0; i < 1500 && s.Phase() == PhaseRunning; i++ {
		s.Tick()
		if s.Score() < prev {
			t.Fatalf("score decreased from %d to %d at tick %d", prev, s.Score(), i)
		}
		prev = s.Score()
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	rt := testRuntime()
	rt.ScreenH = 400 // Tall field so the scripted flight stays airborne
	rt.Seed = 12345

	run := func() (Snapshot, int) {
		s := newTestSession(t, cfg, rt, nil)
		s.Jump()
		ticks := 0
		for i := 0; i < 400; i++ {
			if i%33 == 0 {
				s.Jump()
			}
			s.Tick()
			ticks++
			if s.Phase() == PhaseGameOver {
				break
			}
		}
		return s.Snapshot(), ticks
	}

	snap1, ticks1 := run()
	snap2, ticks2 := run()

	if ticks1 != ticks2 {
		t.Errorf("tick counts differ: %d vs %d", ticks1, ticks2)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("scores differ: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Player != snap2.Player {
		t.Errorf("player states differ: %+v vs %+v", snap1.Player, snap2.Player)
	}
	if len(snap1.Obstacles) != len(snap2.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(snap1.Obstacles), len(snap2.Obstacles))
	}
	for i := range snap1.Obstacles {
		if snap1.Obstacles[i] != snap2.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, snap1.Obstacles[i], snap2.Obstacles[i])
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newTestSession(t, testConfig(), testRuntime(), nil)
	s.Jump()
	s.obstacles = append(s.obstacles,
		Obstacle{X: 100, Y: 0, W: 4, H: 10, Edge: EdgeTop, Pair: 1},
	)

	snap := s.Snapshot()
	s.Tick()

	if len(snap.Obstacles) != 1 || snap.Obstacles[0].X != 100 {
		t.Errorf("snapshot must not alias live state, got %+v", snap.Obstacles)
	}
}
