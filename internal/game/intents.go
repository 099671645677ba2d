package game

import (
	"fmt"

	"emoji-tactics/assets"
	"emoji-tactics/internal/grid"
	"emoji-tactics/internal/system"
)

type intentKind uint8

const (
	intentMove intentKind = iota
	intentUseItem
	intentStart
)

type intent struct {
	kind   intentKind
	target grid.Vec
	slot   int
}

// MoveTo asks to move the player to board cell v.
func (g *Game) MoveTo(v grid.Vec) {
	g.intents = append(g.intents, intent{kind: intentMove, target: v})
}

// UseItem asks to use inventory slot (zero-based).
func (g *Game) UseItem(slot int) {
	g.intents = append(g.intents, intent{kind: intentUseItem, slot: slot})
}

// Start asks to leave the main menu or the game-over screen.
func (g *Game) Start() {
	g.intents = append(g.intents, intent{kind: intentStart})
}

// drainStart consumes pending intents and reports whether one was Start.
func (g *Game) drainStart() bool {
	start := false
	for _, in := range g.intents {
		if in.kind == intentStart {
			start = true
		}
	}
	g.intents = nil
	return start
}

// drainPlayerIntents applies player commands. Commands that arrive while
// a move is animating or a fade runs are dropped.
func (g *Game) drainPlayerIntents() {
	pending := g.intents
	g.intents = nil
	for _, in := range pending {
		if !g.acceptsCommands() {
			return
		}
		switch in.kind {
		case intentMove:
			g.movePlayer(in.target)
		case intentUseItem:
			g.useItem(in.slot)
		}
	}
}

func (g *Game) movePlayer(v grid.Vec) {
	if system.TryMove(g.world, g.board, g.playerID, v) != system.MoveOK {
		return
	}
	g.anim = AnimAnimating
}

func (g *Game) useItem(slot int) {
	kind, ok := system.UseItem(g.world, g.player, g.playerID, slot)
	if !ok {
		return
	}
	g.addMessage(fmt.Sprintf("You use the %s.", assets.Item(kind).Name))
	if g.PlayerAP() == 0 {
		g.setState(StateNPCTurn)
	}
}
