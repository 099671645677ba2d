package client

import (
	"emoji-tactics/internal/grid"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested client action.
type Action uint8

const (
	ActionNone Action = iota
	ActionCursorN
	ActionCursorS
	ActionCursorE
	ActionCursorW
	ActionConfirm // start, restart, or move to the cursor
	ActionUseItem1
	ActionUseItem2
	ActionUseItem3
	ActionQuit
)

// keyToAction maps a tcell key event to a client action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionCursorN
	case tcell.KeyDown:
		return ActionCursorS
	case tcell.KeyRight:
		return ActionCursorE
	case tcell.KeyLeft:
		return ActionCursorW
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}
	switch ev.Rune() {
	case 'k', 'K':
		return ActionCursorN
	case 'j', 'J':
		return ActionCursorS
	case 'l', 'L':
		return ActionCursorE
	case 'h', 'H':
		return ActionCursorW
	case ' ':
		return ActionConfirm
	case '1':
		return ActionUseItem1
	case '2':
		return ActionUseItem2
	case '3':
		return ActionUseItem3
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a cursor action to a board step. North is +Y
// because the board is drawn with y=0 at the bottom.
func actionToDelta(a Action) grid.Vec {
	switch a {
	case ActionCursorN:
		return grid.V(0, 1)
	case ActionCursorS:
		return grid.V(0, -1)
	case ActionCursorE:
		return grid.V(1, 0)
	case ActionCursorW:
		return grid.V(-1, 0)
	}
	return grid.Vec{}
}
