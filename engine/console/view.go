package console

import (
	"fmt"
	"iter"

	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake_grid/core"
	"github.com/kuredoro/snake_grid/engine"
)

// Game is what the view reads from a running game.
type Game interface {
	Cells() iter.Seq[engine.CellView]
	Dimensions() (width, height int)
	State() engine.State
	Steps() int
	Length() int
}

type Styles struct {
	Default tcell.Style
	Border  tcell.Style
	Head    tcell.Style
	Body    tcell.Style
	Food    tcell.Style
	Status  tcell.Style
	Over    tcell.Style
}

func DefaultStyles() Styles {
	return Styles{
		Default: tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset),
		Border:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple),
		Head:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorReset),
		Body:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorReset),
		Food:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorLightCyan),
		Status:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Over:    tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true),
	}
}

// View paints a game onto a tcell screen. The top-left border cell lands
// on Origin and the status line goes right under the board.
type View struct {
	Origin core.Coord
	Styles Styles

	screen tcell.Screen
}

func NewView(s tcell.Screen) *View {
	return &View{
		screen: s,
		Styles: DefaultStyles(),
	}
}

// Draw repaints the whole screen. It does not call Show.
func (v *View) Draw(g Game) {
	v.screen.SetStyle(v.Styles.Default)
	v.screen.Clear()

	w, h := g.Dimensions()
	for c := range g.Cells() {
		r, style := v.glyph(c, w, h)
		v.screen.SetContent(v.Origin.X+c.Pos.X, v.Origin.Y+c.Pos.Y, r, nil, style)
	}

	state := g.State()
	status := fmt.Sprintf("%v  length %d  steps %d", state, g.Length(), g.Steps())
	style := v.Styles.Status
	if state.IsOver() {
		style = v.Styles.Over
	}
	drawText(v.screen, v.Origin.X, v.Origin.Y+h, style, status)
}

func (v *View) glyph(c engine.CellView, w, h int) (rune, tcell.Style) {
	switch c.Cell.Kind {
	case engine.Border:
		return borderRune(c.Pos, w, h), v.Styles.Border
	case engine.Food:
		return '#', v.Styles.Food
	case engine.Snake:
		switch c.Cell.Role {
		case engine.Head:
			return tcell.RuneDiamond, v.Styles.Head
		case engine.Tail:
			return tcell.RuneCkBoard, v.Styles.Body
		default:
			return tcell.RuneBlock, v.Styles.Body
		}
	default:
		return ' ', v.Styles.Default
	}
}

func borderRune(p core.Coord, w, h int) rune {
	left, right := p.X == 0, p.X == w-1
	top, bottom := p.Y == 0, p.Y == h-1

	switch {
	case top && left:
		return tcell.RuneULCorner
	case top && right:
		return tcell.RuneURCorner
	case bottom && left:
		return tcell.RuneLLCorner
	case bottom && right:
		return tcell.RuneLRCorner
	case top || bottom:
		return tcell.RuneHLine
	default:
		return tcell.RuneVLine
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
