package render

import "github.com/gdamore/tcell/v2"

// shade is how far the level-transition fade has darkened the board.
type shade uint8

const (
	shadeNone shade = iota
	shadeDim
	shadeBlack
)

func shadeFor(alpha float64) shade {
	switch {
	case alpha >= 0.9:
		return shadeBlack
	case alpha >= 0.3:
		return shadeDim
	}
	return shadeNone
}

func (s shade) apply(st tcell.Style) tcell.Style {
	if s == shadeDim {
		return st.Dim(true).Foreground(tcell.ColorGray)
	}
	return st
}
