package game

import (
	"fmt"

	"emoji-tactics/assets"
	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/factory"
	"emoji-tactics/internal/generate"
	"emoji-tactics/internal/grid"
	"emoji-tactics/internal/system"
)

// NPCQueue is the NPCs still to act this NPC turn, plus the one whose move
// is animating.
type NPCQueue struct {
	pending []ecs.EntityID
	current ecs.EntityID
}

// Len returns how many NPCs have yet to act.
func (q *NPCQueue) Len() int { return len(q.pending) }

// Current returns the NPC whose move is in flight, or ecs.NilEntity.
func (q *NPCQueue) Current() ecs.EntityID { return q.current }

func (q *NPCQueue) pop() (ecs.EntityID, bool) {
	if len(q.pending) == 0 {
		return ecs.NilEntity, false
	}
	id := q.pending[0]
	q.pending = q.pending[1:]
	return id, true
}

// Queue exposes the NPC turn queue.
func (g *Game) Queue() *NPCQueue { return &g.queue }

// setState leaves the current phase and enters s. Enter handlers may chain
// into further phases.
func (g *Game) setState(s State) {
	g.exitState(g.state)
	g.state = s
	g.dirty = true
	switch s {
	case StateMapGenerate:
		g.enterMapGenerate()
	case StateSpawning:
		g.enterSpawning()
	case StatePlayerTurn:
		g.enterPlayerTurn()
	case StateNPCTurn:
		g.enterNPCTurn()
	case StateGameOver:
		g.enterGameOver()
	}
}

func (g *Game) exitState(s State) {
	switch s {
	case StateNPCTurn:
		g.queue = NPCQueue{}
	case StateGameOver:
		g.clearBoard()
	}
}

// clearBoard destroys all units, items and tiles.
func (g *Game) clearBoard() {
	g.world.DestroyAll(component.CUnit)
	g.world.DestroyAll(component.CItem)
	g.world.DestroyAll(component.CTile)
	g.board = nil
	g.playerID = ecs.NilEntity
	g.anim = AnimIdle
}

func (g *Game) enterMapGenerate() {
	g.clearBoard()
	g.board = generate.Generate(levelConfig(g.player.Level, g.cfg, g.rng))
	factory.NewBoardTiles(g.world, g.board)
	g.setState(StateSpawning)
}

func (g *Game) enterSpawning() {
	stair := g.board.Stair
	g.playerID = factory.NewPlayer(g.world, stair, g.player.Behaviour.Clone(), 0)

	cfg := levelConfig(g.player.Level, g.cfg, g.rng)
	pop := generate.Populate(g.board, map[grid.Vec]bool{stair: true}, cfg)
	for _, n := range pop.NPCs {
		factory.NewNPC(g.world, n.Kind, n.Pos, 0)
	}
	for _, it := range pop.Items {
		factory.NewItem(g.world, it.Kind, it.Pos)
	}
	g.addMessage(fmt.Sprintf("Level %d: %d creatures.", g.player.Level, len(pop.NPCs)))
	g.setState(StatePlayerTurn)
}

func (g *Game) enterPlayerTurn() {
	if !g.world.Alive(g.playerID) {
		g.setState(StateGameOver)
		return
	}
	u, _ := system.StartTurn(g.world, g.playerID, g.cfg.PlayerAP)
	if u.AP == 0 {
		g.setState(StateNPCTurn)
	}
}

func (g *Game) enterNPCTurn() {
	g.queue = NPCQueue{pending: system.NPCs(g.world)}
}

func (g *Game) enterGameOver() {
	g.addMessage(fmt.Sprintf("You were caught on level %d. Press Enter.", g.player.Level))
}

func (g *Game) updatePlayerTurn() {
	if !g.world.Alive(g.playerID) {
		g.setState(StateGameOver)
		return
	}
	if g.fade != FadeNone {
		g.intents = nil
		return
	}
	if g.anim == AnimIdle && len(system.NPCs(g.world)) == 0 {
		g.player.Level++
		g.addMessage("Level cleared!")
		g.startFade()
		return
	}
	g.drainPlayerIntents()
	if g.state == StatePlayerTurn && g.acceptsCommands() && len(g.LegalMoves()) == 0 {
		g.addMessage("You cannot move. Your turn passes.")
		system.ClearAP(g.world, g.playerID)
		g.setState(StateNPCTurn)
	}
}

func (g *Game) updateNPCTurn() {
	g.intents = nil
	if g.anim != AnimIdle {
		return
	}
	if !g.world.Alive(g.playerID) {
		g.setState(StateGameOver)
		return
	}
	g.MoveNPC()
}

// MoveNPC lets the next queued NPC act. It does nothing while an NPC move
// is still animating and hands the turn to the player once the queue is
// empty.
func (g *Game) MoveNPC() {
	if g.queue.current != ecs.NilEntity {
		return
	}
	var id ecs.EntityID
	for {
		next, ok := g.queue.pop()
		if !ok {
			g.setState(StatePlayerTurn)
			return
		}
		if g.world.Alive(next) {
			id = next
			break
		}
	}
	target, hasTarget := system.PositionOf(g.world, g.playerID)
	system.StepNPC(g.world, g.board, id, target, hasTarget, g.cfg.NPCAP)
	g.queue.current = id
	g.anim = AnimAnimating
}

// playerTick settles a finished player move.
func (g *Game) playerTick() {
	res := system.ResolveInteraction(g.world, g.player, g.playerID)
	if res.Kind == system.InteractCapture {
		def := assets.Unit(res.OtherKind)
		g.addMessage(fmt.Sprintf("You capture the %s %s and take its moves.", def.Glyph, def.Name))
	}
	for _, kind := range system.Pickup(g.world, g.player, g.playerID) {
		g.addMessage(fmt.Sprintf("You pick up the %s.", assets.Item(kind).Name))
	}
	if system.ApplyTileEffect(g.world, g.board, g.playerID) {
		g.addMessage("You get stuck in a bush.")
	}
	if system.EndMove(g.world, g.playerID) == 0 {
		g.setState(StateNPCTurn)
		return
	}
	g.dirty = true
}

// npcTick settles a finished NPC move.
func (g *Game) npcTick() {
	id := g.queue.current
	g.queue.current = ecs.NilEntity
	if !g.world.Alive(id) {
		return
	}
	res := system.ResolveInteraction(g.world, g.player, id)
	def := assets.Unit(res.MoverKind)
	switch res.Kind {
	case system.InteractKill:
		g.addMessage(fmt.Sprintf("The %s %s gets you!", def.Glyph, def.Name))
	case system.InteractArmorSave:
		g.addMessage(fmt.Sprintf("Your armor stops the %s %s.", def.Glyph, def.Name))
	}
	if !g.world.Alive(id) {
		return
	}
	system.ApplyTileEffect(g.world, g.board, id)
	system.EndMove(g.world, id)
}
