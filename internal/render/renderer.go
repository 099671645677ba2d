// Package render draws a game onto a tcell screen.
package render

import (
	"sort"

	"emoji-tactics/assets"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/game"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved for the HUD at the bottom.
const hudRows = 6

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen    tcell.Screen
	camera    *Camera
	size      int
	cursor    grid.Vec
	hasCursor bool
}

// NewRenderer creates a Renderer for a size×size board.
func NewRenderer(screen tcell.Screen, size int) *Renderer {
	r := &Renderer{screen: screen, size: size}
	r.Resize()
	return r
}

// Resize recomputes the board placement after the terminal size changed.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(r.size, w, max(r.size, h-hudRows))
}

// ScreenToWorld resolves a screen cell, e.g. a mouse click, to a board cell.
func (r *Renderer) ScreenToWorld(sx, sy int) (grid.Vec, bool) {
	return r.camera.ScreenToWorld(sx, sy)
}

// SetCursor marks the board cell under the keyboard or mouse cursor.
func (r *Renderer) SetCursor(v grid.Vec) {
	r.cursor = v
	r.hasCursor = true
}

// base is the background style of the cell at screen (sx, sy).
func (r *Renderer) base(sx, sy int) tcell.Style {
	st := tcell.StyleDefault.Background(tcell.ColorBlack)
	if r.hasCursor {
		cx, cy := r.camera.WorldToScreen(r.cursor)
		if cx == sx && cy == sy {
			st = st.Background(tcell.ColorNavy)
		}
	}
	return st
}

// Draw renders one frame of g.
func (r *Renderer) Draw(g *game.Game) {
	r.screen.Clear()
	st := g.State()
	if (st == game.StateLoadAssets || st == game.StateMainMenu) && g.Board() == nil {
		r.drawMenu()
		r.screen.Show()
		return
	}
	if b := g.Board(); b != nil {
		_, alpha := g.Fade()
		if s := shadeFor(alpha); s != shadeBlack {
			r.drawBoard(b, g.Player().Level, s)
			r.drawHighlights(g, s)
			r.drawEntities(g.World(), s)
		}
	}
	r.DrawHUD(g)
	r.screen.Show()
}

// drawBoard renders every tile with the level's theme.
func (r *Renderer) drawBoard(b *gamemap.Board, level int, s shade) {
	theme := assets.ThemeFor(level)
	for _, v := range b.Cells() {
		kind, _ := b.KindAt(v)
		sx, sy := r.camera.WorldToScreen(v)
		r.putGlyph(sx, sy, theme.Glyph(kind), s.apply(r.base(sx, sy)))
	}
}

func (r *Renderer) drawHighlights(g *game.Game, s shade) {
	for _, v := range g.LegalMoves() {
		sx, sy := r.camera.WorldToScreen(v)
		r.putGlyph(sx, sy, assets.Highlight, s.apply(r.base(sx, sy)))
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order  int
	sx, sy int
	rend   component.Renderable
}

// drawEntities renders items at their cells and units at their animated
// positions, ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World, s shade) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		rend, _ := ecs.Get[component.Renderable](w, id, component.CRenderable)
		var sx, sy int
		if m, ok := ecs.Get[component.Motion](w, id, component.CMotion); ok {
			sx, sy = r.camera.MotionToScreen(m.X, m.Y)
		} else {
			pos, _ := ecs.Get[component.Position](w, id, component.CPosition)
			sx, sy = r.camera.WorldToScreen(pos.Vec())
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, sx: sx, sy: sy, rend: rend})
	}

	// Lower order is drawn first, behind.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		style := s.apply(r.base(e.sx, e.sy).Foreground(e.rend.FGColor))
		r.putGlyph(e.sx, e.sy, e.rend.Glyph, style)
	}
}

func (r *Renderer) drawMenu() {
	w, h := r.screen.Size()
	lines := []string{
		"E M O J I   T A C T I C S",
		"",
		"Capture a creature to take its moves.",
		"Clear the board to go deeper.",
		"",
		"Enter: start    q: quit",
	}
	top := max(0, (h-len(lines))/2)
	for i, l := range lines {
		x := max(0, (w-runewidth.StringWidth(l))/2)
		r.drawText(x, top+i, l, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Keep the two-column grid for narrow glyphs.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
