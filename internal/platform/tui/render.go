package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ndanilko/flaptty/internal/core"
)

// Glyph classes for coloring. The screen buffer stores bare runes, so
// the renderer classifies each glyph to pick a style.
type glyphClass int

const (
	classDefault glyphClass = iota
	classPipe
	classPlayer
	classGround
)

var classStyles = [...]lipgloss.Style{
	classDefault: lipgloss.NewStyle(),
	classPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	classPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	classGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func classify(r rune) glyphClass {
	switch r {
	case pipeChar, pipeCapTop, pipeCapBottom:
		return classPipe
	case playerChar, playerEyeChar:
		return classPlayer
	case groundChar, groundFill, ceilingChar:
		return classGround
	}
	return classDefault
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells of the same class to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := classify(s.Get(x, y))

			var run strings.Builder
			for x < s.Width() && classify(s.Get(x, y)) == start {
				run.WriteRune(s.Get(x, y))
				x++
			}

			sb.WriteString(classStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}
