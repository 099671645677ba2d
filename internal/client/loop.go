// Package client drives a game from a tcell screen: input events become
// intents and a ticker advances the game.
package client

import (
	"context"
	"time"

	"emoji-tactics/internal/game"
	"emoji-tactics/internal/grid"
	"emoji-tactics/internal/render"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = time.Second / 30

// Client couples one game with the screen it is played on.
type Client struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	cursor   grid.Vec
	held     bool // left button down, for click edge detection
	redraw   bool
}

// New creates a client for g on screen. The screen must be initialised.
func New(screen tcell.Screen, g *game.Game) *Client {
	size := g.Config().BoardSize
	c := &Client{
		screen:   screen,
		game:     g,
		renderer: render.NewRenderer(screen, size),
		cursor:   grid.V(size/2, size/2),
		redraw:   true,
	}
	c.renderer.SetCursor(c.cursor)
	return c
}

// Run plays until the player quits, ctx is cancelled, or the screen stops
// delivering events. It does not finalise the screen.
func (c *Client) Run(ctx context.Context) {
	c.screen.EnableMouse()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if c.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			c.tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// tick advances the game and draws when something changed.
func (c *Client) tick(dt float64) {
	c.game.Update(dt)
	if c.game.TakeRedraw() || c.redraw {
		c.redraw = false
		c.renderer.Draw(c.game)
	}
}

// handleEvent applies one input event and reports whether to quit.
func (c *Client) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		c.screen.Sync()
		c.renderer.Resize()
		c.redraw = true
	case *tcell.EventKey:
		return c.handleAction(keyToAction(ev))
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
	return false
}

func (c *Client) handleAction(a Action) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionConfirm:
		c.confirm(c.cursor)
	case ActionUseItem1, ActionUseItem2, ActionUseItem3:
		c.game.UseItem(int(a - ActionUseItem1))
	case ActionCursorN, ActionCursorS, ActionCursorE, ActionCursorW:
		c.moveCursor(c.cursor.Add(actionToDelta(a)))
	}
	return false
}

func (c *Client) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	v, onBoard := c.renderer.ScreenToWorld(x, y)
	if onBoard {
		c.moveCursor(v)
	}
	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !c.held {
		switch {
		case c.inMenu():
			c.game.Start()
		case onBoard:
			c.game.MoveTo(v)
		}
	}
	c.held = pressed
}

// confirm starts a game from the menus or asks to move to v.
func (c *Client) confirm(v grid.Vec) {
	if c.inMenu() {
		c.game.Start()
		return
	}
	c.game.MoveTo(v)
}

func (c *Client) inMenu() bool {
	s := c.game.State()
	return s == game.StateMainMenu || s == game.StateGameOver
}

func (c *Client) moveCursor(v grid.Vec) {
	size := c.game.Config().BoardSize
	v.X = min(max(v.X, 0), size-1)
	v.Y = min(max(v.Y, 0), size-1)
	if v == c.cursor {
		return
	}
	c.cursor = v
	c.renderer.SetCursor(v)
	c.redraw = true
}

// Cursor returns the board cell under the cursor.
func (c *Client) Cursor() grid.Vec { return c.cursor }

// Run plays g on screen until the player quits or ctx is cancelled.
func Run(ctx context.Context, screen tcell.Screen, g *game.Game) {
	New(screen, g).Run(ctx)
}
