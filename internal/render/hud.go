package render

import (
	"fmt"
	"strings"

	"emoji-tactics/assets"
	"emoji-tactics/internal/game"
	"emoji-tactics/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status line, inventory and message log at the
// bottom of the screen.
func (r *Renderer) DrawHUD(g *game.Game) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	pd := g.Player()
	theme := assets.ThemeFor(pd.Level)
	status := fmt.Sprintf("Level %d (%s)  AP %d  Armor %d  Moves like: %s",
		pd.Level, theme.Name, g.PlayerAP(), pd.Armor, pd.Behaviour.Name)
	switch g.State() {
	case game.StateNPCTurn:
		status += "  [creatures moving]"
	case game.StateGameOver:
		status += "  [GAME OVER]"
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, inventoryLine(pd), tcell.StyleDefault.Foreground(tcell.ColorLightGreen))

	// Message log (last 3 messages).
	msgs := g.Messages()
	start := max(0, len(msgs)-3)
	for i, msg := range msgs[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func inventoryLine(pd *system.PlayerData) string {
	var b strings.Builder
	for i := 0; i < system.MaxItems; i++ {
		if i > 0 {
			b.WriteString("  ")
		}
		if i < len(pd.Items) {
			def := assets.Item(pd.Items[i])
			fmt.Fprintf(&b, "[%d] %s %s", i+1, def.Glyph, def.Name)
		} else {
			fmt.Fprintf(&b, "[%d] -", i+1)
		}
	}
	return b.String()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text left to right, advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
