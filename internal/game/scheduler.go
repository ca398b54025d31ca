package game

// Spawn cadence. The thresholds are fixed constants, not config fields.
const (
	// FirstSpawnDelayMS is the grace period between session start and the
	// first obstacle pair.
	FirstSpawnDelayMS = 2000
)

// SpawnInterval returns the delay in milliseconds before the next spawn,
// given the score at re-arm time. First matching band wins.
func SpawnInterval(score int) int {
	switch {
	case score < 10:
		return 3000
	case score < 20:
		return 2500
	case score < 50:
		return 2000
	case score < 100:
		return 1500
	default:
		return 1000
	}
}

// SpawnScheduler is a one-shot countdown timer driven by simulation
// ticks instead of wall-clock callbacks, which keeps spawn timing
// deterministic and testable. The session advances it only while
// Running, so a countdown armed by a finished session can never fire;
// restart replaces the countdown wholesale.
type SpawnScheduler struct {
	msPerTick float64
	remaining float64
	armed     bool
}

// NewSpawnScheduler creates a disarmed scheduler for the given tick rate.
func NewSpawnScheduler(tickRate int) *SpawnScheduler {
	return &SpawnScheduler{
		msPerTick: 1000.0 / float64(tickRate),
	}
}

// Arm starts a one-shot countdown of afterMS milliseconds.
func (s *SpawnScheduler) Arm(afterMS int) {
	s.remaining = float64(afterMS)
	s.armed = true
}

// Disarm cancels any pending countdown.
func (s *SpawnScheduler) Disarm() {
	s.armed = false
}

// Armed reports whether a countdown is pending.
func (s *SpawnScheduler) Armed() bool {
	return s.armed
}

// Tick advances the countdown by one simulation tick and reports whether
// it expired. An expired scheduler is disarmed; the caller decides
// whether to re-arm it.
func (s *SpawnScheduler) Tick() bool {
	if !s.armed {
		return false
	}
	s.remaining -= s.msPerTick
	if s.remaining > 0 {
		return false
	}
	s.armed = false
	return true
}
