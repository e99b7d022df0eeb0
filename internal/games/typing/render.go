package typing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/typing-arcade/internal/core"
)

// Visual characters for rendering.
const (
	GroundChar  = '▀'
	PendingChar = '·'
	CursorChar  = '_'
)

const barWidth = 24

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		drawMessage(dst, "CANNOT START", g.loadErr.Error(), core.ColorBrightRed)
		return
	}
	snap, ok := g.Snapshot()
	if !ok {
		return
	}

	w, h := dst.Width(), dst.Height()
	theme := snap.Theme.Color

	// Header
	levelText := fmt.Sprintf(" Level %d  %s ", snap.Level, snap.Theme.Name)
	dst.DrawTextColor(1, 0, levelText, theme)
	scoreText := fmt.Sprintf(" Score: %d ", snap.Stats.Score)
	dst.DrawText(w-utf8.RuneCountInString(scoreText)-1, 0, scoreText)
	dst.DrawHLine(0, 1, w, '─', theme)

	// Enemy
	enemyColor := core.ColorBrightRed
	name := snap.EnemyName
	if snap.EnemyIsBoss {
		enemyColor = core.ColorBrightMagenta
		name = "BOSS " + name
	}
	dst.DrawTextCenteredColor(2, name, enemyColor)
	g.drawGauge(dst, 3, "Enemy", snap.EnemyHealth, snap.EnemyMaxHealth, enemyColor)

	// Falling word: top of the field at issue, ground at the deadline.
	fieldTop, ground := 5, h-5
	if snap.Phase == PhaseAwaitingInput || snap.Phase == PhaseGrace {
		span := ground - fieldTop - 1
		y := fieldTop + int(snap.TimerProgress*float64(span))
		drawWord(dst, y, snap)
	}
	dst.DrawHLine(0, ground, w, GroundChar, theme)

	// Typing slots
	drawSlots(dst, ground+1, snap)

	// Player
	g.drawGauge(dst, h-2, "You", snap.PlayerHealth, snap.PlayerMaxHealth, core.ColorBrightGreen)

	// Footer
	footer := fmt.Sprintf(" %.1fs  Words %d  Mistakes %d  Timeouts %d ",
		snap.Remaining.Seconds(), snap.Stats.Words, snap.Stats.Mistakes, snap.Stats.Timeouts)
	dst.DrawTextColor(1, h-1, footer, core.ColorGray)

	if g.flashLeft > 0 && g.flash != "" {
		dst.DrawTextCenteredColor(fieldTop-1, g.flash, g.flashColor)
	}

	if g.paused {
		drawMessage(dst, "PAUSED", "Press Tab to resume", core.ColorBrightYellow)
	}
	if snap.Over {
		title := "GAME OVER"
		color := core.ColorBrightRed
		if snap.Outcome.Result == ResultVictory {
			title = "VICTORY"
			color = core.ColorBrightYellow
		}
		drawMessage(dst, title, snap.Outcome.Message()+"  |  Enter to play again", color)
	}
}

func (g *Game) drawGauge(dst *core.Screen, y int, label string, hp, maxHP int, c core.Color) {
	fraction := 0.0
	if maxHP > 0 {
		fraction = float64(hp) / float64(maxHP)
	}
	labelText := fmt.Sprintf("%-6s", label)
	valueText := fmt.Sprintf(" %d/%d", hp, maxHP)
	total := len(labelText) + barWidth + len(valueText)
	x := (dst.Width() - total) / 2
	dst.DrawTextColor(x, y, labelText, c)
	dst.DrawBar(x+len(labelText), y, barWidth, fraction, c)
	dst.DrawText(x+len(labelText)+barWidth, y, valueText)
}

// drawWord draws the target word, coloring what has been typed so far.
func drawWord(dst *core.Screen, y int, snap Snapshot) {
	runes := []rune(snap.Word)
	x := (dst.Width() - len(runes)) / 2
	for i, r := range runes {
		c := core.ColorWhite
		switch {
		case i == snap.Mismatch:
			c = core.ColorBrightRed
		case i < snap.Cursor:
			c = core.ColorBrightGreen
		case i == snap.Cursor && snap.Phase == PhaseAwaitingInput:
			c = core.ColorBrightYellow
		}
		if snap.Phase == PhaseGrace && snap.Mismatch < 0 {
			c = core.ColorBrightGreen
		}
		dst.SetColor(x+i, y, r, c)
	}
}

// drawSlots draws one cell per character of the word: typed characters,
// the focused slot, and the pending ones.
func drawSlots(dst *core.Screen, y int, snap Snapshot) {
	n := len(snap.Entered)
	if n == 0 {
		return
	}
	width := n*2 - 1
	x := (dst.Width() - width) / 2
	for i, r := range snap.Entered {
		cx := x + i*2
		switch {
		case i == snap.Mismatch:
			dst.SetColor(cx, y, r, core.ColorBrightRed)
		case r != 0:
			dst.SetColor(cx, y, r, core.ColorBrightGreen)
		case i == snap.Cursor && snap.Phase == PhaseAwaitingInput:
			dst.SetColor(cx, y, CursorChar, core.ColorBrightYellow)
		default:
			dst.SetColor(cx, y, PendingChar, core.ColorGray)
		}
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	maxW := dst.Width() - 4
	if utf8.RuneCountInString(subtitle) > maxW {
		subtitle = truncate(subtitle, maxW)
	}
	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCenteredColor(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle)
}

func truncate(s string, n int) string {
	if n <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}
