package game

// State is the turn manager's current phase.
type State uint8

const (
	StateLoadAssets State = iota
	StateMainMenu
	StateMapGenerate
	StateSpawning
	StatePlayerTurn
	StateNPCTurn
	StateGameOver
)

var stateNames = [...]string{
	StateLoadAssets:  "LoadAssets",
	StateMainMenu:    "MainMenu",
	StateMapGenerate: "MapGenerate",
	StateSpawning:    "Spawning",
	StatePlayerTurn:  "PlayerTurn",
	StateNPCTurn:     "NPCTurn",
	StateGameOver:    "GameOver",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// AnimationState gates commands while units are still sliding.
type AnimationState uint8

const (
	AnimIdle AnimationState = iota
	AnimAnimating
)

// FadeState is the screen transition between levels.
type FadeState uint8

const (
	FadeNone FadeState = iota
	FadeOut            // darkening toward a new board
	FadeIn             // revealing the new board
)
