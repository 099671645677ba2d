// Package game runs the turn manager: phases, the NPC queue, the animation
// gate and the level-clear fade.
package game

import (
	"math"
	"math/rand"
	"time"

	"emoji-tactics/internal/component"
	"emoji-tactics/internal/ecs"
	"emoji-tactics/internal/gamemap"
	"emoji-tactics/internal/grid"
	"emoji-tactics/internal/system"
)

const maxMessages = 50

// snapDist is how close a sliding unit must get before it snaps into place.
const snapDist = 0.01

// Game is the top-level orchestrator. It is not safe for concurrent use;
// one goroutine feeds it intents and calls Update.
type Game struct {
	cfg      Config
	rng      *rand.Rand
	world    *ecs.World
	board    *gamemap.Board
	player   *system.PlayerData
	playerID ecs.EntityID

	state State
	anim  AnimationState
	fade  FadeState
	alpha float64 // fade overlay progress in [0,1]

	queue    NPCQueue
	intents  []intent
	messages []string
	dirty    bool
}

// New returns a game in the LoadAssets phase.
func New(cfg Config) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		world:  ecs.NewWorld(),
		player: system.NewPlayerData(),
		state:  StateLoadAssets,
		dirty:  true,
	}
}

// Update advances the game by dt seconds: animations first, then the fade,
// then the current phase.
func (g *Game) Update(dt float64) {
	g.animate(dt)
	g.advanceFade(dt)
	g.runState()
}

func (g *Game) runState() {
	switch g.state {
	case StateLoadAssets:
		g.setState(StateMainMenu)
	case StateMainMenu:
		if g.drainStart() && g.fade == FadeNone {
			g.player = system.NewPlayerData()
			g.messages = nil
			g.startFade()
		}
	case StatePlayerTurn:
		g.updatePlayerTurn()
	case StateNPCTurn:
		g.updateNPCTurn()
	case StateGameOver:
		if g.drainStart() {
			g.setState(StateMainMenu)
		}
	default:
		g.intents = nil
	}
}

// animate slides every unit's Motion toward its Position. When the last
// one settles the deferred move handling runs.
func (g *Game) animate(dt float64) {
	if g.anim != AnimAnimating {
		return
	}
	t := min(1, g.cfg.AnimSpeed*dt)
	moving := false
	for _, id := range g.world.Query(component.CMotion, component.CPosition) {
		m, _ := ecs.Get[component.Motion](g.world, id, component.CMotion)
		pos, _ := system.PositionOf(g.world, id)
		dx, dy := float64(pos.X)-m.X, float64(pos.Y)-m.Y
		if math.Hypot(dx, dy) <= snapDist || t >= 1 {
			m.X, m.Y = float64(pos.X), float64(pos.Y)
		} else {
			m.X += dx * t
			m.Y += dy * t
			moving = true
		}
		g.world.Add(id, m)
	}
	g.dirty = true
	if moving {
		return
	}
	g.anim = AnimIdle
	switch g.state {
	case StatePlayerTurn:
		g.playerTick()
	case StateNPCTurn:
		g.npcTick()
	}
}

func (g *Game) startFade() {
	g.fade = FadeOut
	g.alpha = 0
	g.dirty = true
}

// advanceFade runs the overlay; a completed fade-out swaps in a new board.
func (g *Game) advanceFade(dt float64) {
	switch g.fade {
	case FadeOut:
		g.alpha += g.cfg.FadeRate * dt
		if g.alpha >= 1 {
			g.alpha = 1
			g.fade = FadeIn
			g.setState(StateMapGenerate)
		}
	case FadeIn:
		g.alpha -= g.cfg.FadeRate * dt
		if g.alpha <= 0 {
			g.alpha = 0
			g.fade = FadeNone
		}
	default:
		return
	}
	g.dirty = true
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
	g.dirty = true
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Animation returns whether units are still sliding.
func (g *Game) Animation() AnimationState { return g.anim }

// Fade returns the transition state and its overlay opacity, eased.
func (g *Game) Fade() (FadeState, float64) {
	a := g.alpha
	return g.fade, a * a * (3 - 2*a)
}

// World exposes the entity store for rendering.
func (g *Game) World() *ecs.World { return g.world }

// Board returns the current board, or nil between levels.
func (g *Game) Board() *gamemap.Board { return g.board }

// Player returns the state carried across levels.
func (g *Game) Player() *system.PlayerData { return g.player }

// PlayerAP returns the player unit's remaining action points.
func (g *Game) PlayerAP() int {
	u, _ := system.UnitOf(g.world, g.playerID)
	return u.AP
}

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// TakeRedraw reports whether anything changed since the last call.
func (g *Game) TakeRedraw() bool {
	d := g.dirty
	g.dirty = false
	return d
}

// LegalMoves lists where the player may move now. It is empty outside an
// idle player turn.
func (g *Game) LegalMoves() []grid.Vec {
	if !g.acceptsCommands() {
		return nil
	}
	return system.PossiblePositions(g.world, g.board, g.playerID)
}

func (g *Game) acceptsCommands() bool {
	return g.state == StatePlayerTurn && g.anim == AnimIdle && g.fade == FadeNone &&
		g.board != nil && g.world.Alive(g.playerID)
}

// Config returns the rules this game was created with.
func (g *Game) Config() Config { return g.cfg }
