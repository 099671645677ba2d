package assets

import "emoji-tactics/internal/gamemap"

// TileTheme holds the glyph drawn for each tile kind.
type TileTheme struct {
	Name                     string
	Floor, Wall, Bush, Stair string
}

// Themes cycle with the level number.
var Themes = []TileTheme{
	{Name: "Meadow", Floor: "🟫", Wall: "🪨", Bush: "🌿", Stair: "🪜"},
	{Name: "Orchard", Floor: "🟫", Wall: "🌳", Bush: "🍂", Stair: "🪜"},
	{Name: "Tundra", Floor: "⬜", Wall: "🧊", Bush: "🌲", Stair: "🪜"},
	{Name: "Marsh", Floor: "🟩", Wall: "🪵", Bush: "🌾", Stair: "🪜"},
}

// ThemeFor returns the theme of a 1-based level.
func ThemeFor(level int) TileTheme {
	if level < 1 {
		level = 1
	}
	return Themes[(level-1)%len(Themes)]
}

// Glyph returns the theme glyph for kind.
func (t TileTheme) Glyph(kind gamemap.TileKind) string {
	switch kind {
	case gamemap.TileWall:
		return t.Wall
	case gamemap.TileBush:
		return t.Bush
	case gamemap.TileStair:
		return t.Stair
	}
	return t.Floor
}

// Highlight marks cells the player may move to.
const Highlight = "🟨"
