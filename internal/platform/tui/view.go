package tui

import (
	"fmt"

	"github.com/ndanilko/flaptty/internal/config"
	"github.com/ndanilko/flaptty/internal/core"
	"github.com/ndanilko/flaptty/internal/game"
)

// Glyphs used by the renderer. styleFor keys the color off these.
const (
	playerChar    = '●'
	playerEyeChar = '>'
	pipeChar      = '█'
	pipeCapTop    = '▄' // Bottom edge of a top pipe
	pipeCapBottom = '▀' // Top edge of a bottom pipe
	groundChar    = '═'
	groundFill    = '░'
	ceilingChar   = '─'
)

// drawSession renders an engine snapshot into the screen buffer.
func drawSession(dst *core.Screen, snap game.Snapshot, cfg config.Config, best int) {
	dst.Clear()

	drawBands(dst, snap, cfg)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o)
	}

	drawPlayer(dst, snap.Player)
	drawHUD(dst, snap, best)

	switch snap.Phase {
	case game.PhaseIdle:
		drawCenteredMessage(dst, "F L A P T T Y", "Press Space to start")
	case game.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to retry", snap.Score))
	}
}

// drawBands marks the deadly strips at the field edges: a ceiling line
// and a filled ground band.
func drawBands(dst *core.Screen, snap game.Snapshot, cfg config.Config) {
	if cfg.Field.TopMargin > 0 {
		dst.DrawHLine(0, cfg.Field.TopMargin-1, snap.FieldW, ceilingChar)
	}

	groundY := snap.FieldH - cfg.Field.BottomMargin
	dst.DrawHLine(0, groundY, snap.FieldW, groundChar)
	for y := groundY + 1; y < snap.FieldH; y++ {
		dst.DrawHLine(0, y, snap.FieldW, groundFill)
	}
}

// drawObstacle renders one pipe half with a cap on its gap-facing edge.
func drawObstacle(dst *core.Screen, o game.ObstacleView) {
	x := int(o.X)
	for dy := 0; dy < o.H; dy++ {
		for dx := 0; dx < o.W; dx++ {
			dst.Set(x+dx, o.Y+dy, pipeChar)
		}
	}

	switch o.Edge {
	case game.EdgeTop:
		for dx := 0; dx < o.W; dx++ {
			dst.Set(x+dx, o.Y+o.H-1, pipeCapTop)
		}
	case game.EdgeBottom:
		for dx := 0; dx < o.W; dx++ {
			dst.Set(x+dx, o.Y, pipeCapBottom)
		}
	}
}

func drawPlayer(dst *core.Screen, p game.PlayerView) {
	y := int(p.Y)
	for dy := 0; dy < p.H; dy++ {
		for dx := 0; dx < p.W; dx++ {
			if dx == p.W-1 && dy == 0 {
				dst.Set(p.X+dx, y+dy, playerEyeChar)
			} else {
				dst.Set(p.X+dx, y+dy, playerChar)
			}
		}
	}
}

func drawHUD(dst *core.Screen, snap game.Snapshot, best int) {
	hud := fmt.Sprintf(" Score: %d ", snap.Score)
	if best > 0 {
		hud += fmt.Sprintf(" Best: %d ", best)
	}
	dst.DrawText(2, 0, hud)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
