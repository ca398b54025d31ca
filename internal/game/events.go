package game

// Events receives fire-and-forget notifications from the session, meant
// for presentation collaborators (sound, status lines, logging).
// Implementations must return promptly: they are called from inside
// Jump/Tick and anything slow stalls the frame.
type Events interface {
	// SessionStarted fires on every transition into Running, including
	// restarts after game over.
	SessionStarted()

	// JumpOccurred fires for each jump impulse applied while Running.
	// The jump that starts a session reports SessionStarted instead.
	JumpOccurred()

	// SessionEnded fires exactly once per session, with the final score.
	SessionEnded(finalScore int)
}

// NopEvents is an Events implementation that ignores everything.
type NopEvents struct{}

func (NopEvents) SessionStarted()  {}
func (NopEvents) JumpOccurred()    {}
func (NopEvents) SessionEnded(int) {}
