package tui

import (
	"github.com/charmbracelet/log"

	"github.com/ndanilko/flaptty/internal/game"
)

// uiEvents adapts engine callbacks for the terminal frontend. It records
// a pending terminal bell for the view to emit and forwards every event
// to an optional downstream sink.
//
// All calls happen on the Bubble Tea update goroutine, so no locking.
type uiEvents struct {
	next game.Events
	bell bool
}

func newUIEvents(next game.Events) *uiEvents {
	return &uiEvents{next: next}
}

func (e *uiEvents) SessionStarted() {
	if e.next != nil {
		e.next.SessionStarted()
	}
}

func (e *uiEvents) JumpOccurred() {
	if e.next != nil {
		e.next.JumpOccurred()
	}
}

func (e *uiEvents) SessionEnded(finalScore int) {
	e.bell = true
	if e.next != nil {
		e.next.SessionEnded(finalScore)
	}
}

// takeBell reports whether a bell is pending and clears it.
func (e *uiEvents) takeBell() bool {
	b := e.bell
	e.bell = false
	return b
}

// EventLogger forwards engine events to a structured logger. The SSH
// server uses it to trace play per connection.
type EventLogger struct {
	Logger *log.Logger
}

func (l EventLogger) SessionStarted() {
	l.Logger.Info("run started")
}

func (l EventLogger) JumpOccurred() {
	l.Logger.Debug("flap")
}

func (l EventLogger) SessionEnded(finalScore int) {
	l.Logger.Info("run ended", "score", finalScore)
}
