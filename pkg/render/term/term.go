// Package term draws a character-cell preview of a layout for terminals.
//
// A terminal surface is a preview surface: it reports [PreviewLevel], so
// count labels are suppressed and stagger offsets are scaled down.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/render"
)

// PreviewLevel is the detail reduction reported by every terminal surface.
const PreviewLevel = 2

const (
	cellsPerStepX = 6
	cellsPerStepY = 4
	boxWidth      = 5
	boxHeight     = 3
)

var kindStyles = map[layout.Kind]lipgloss.Style{
	layout.KindTalon:      lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	layout.KindWaste:      lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	layout.KindFoundation: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	layout.KindRow:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	layout.KindReserve:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
}

var styleCaption = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

var kindGlyphs = map[layout.Kind]rune{
	layout.KindTalon:      'T',
	layout.KindWaste:      'W',
	layout.KindFoundation: 'F',
	layout.KindRow:        'R',
	layout.KindReserve:    'X',
}

// Surface is a terminal adapter. Its scene is always at [PreviewLevel].
type Surface struct {
	*render.Scene
	board *render.Board
}

// New returns an unwired surface.
func New() *Surface {
	return &Surface{Scene: render.NewScene(PreviewLevel, nil)}
}

// Preview wires res onto a new surface and returns its drawing.
func Preview(res *layout.Result) (string, error) {
	s := New()
	if err := s.Wire(res); err != nil {
		return "", err
	}
	return s.String(), nil
}

// Wire runs the default adapter wiring for res.
func (s *Surface) Wire(res *layout.Result) error {
	b, err := render.Setup(s, res)
	if err != nil {
		return err
	}
	s.board = b
	return nil
}

type cell struct {
	r    rune
	kind layout.Kind
	set  bool
}

// String draws the wired layout. An unwired surface draws nothing.
func (s *Surface) String() string {
	if s.board == nil {
		return ""
	}
	res := s.board.Result
	g := res.Geometry
	cx := func(x int) int { return x * cellsPerStepX / g.XS }
	cy := func(y int) int { return y * cellsPerStepY / g.YS }

	w, h := cx(res.Width)+boxWidth, cy(res.Height)+boxHeight
	grid := make([][]cell, h)
	for i := range grid {
		grid[i] = make([]cell, w)
	}
	put := func(x, y int, r rune, k layout.Kind) {
		if y >= 0 && y < h && x >= 0 && x < w {
			grid[y][x] = cell{r, k, true}
		}
	}

	_, dy := render.PreviewOffsets(g.XOffset, g.YOffset, s.PreviewLevel())
	for _, p := range s.board.Piles {
		x0, y0 := cx(p.X), cy(p.Y)
		for c := 0; c < boxWidth; c++ {
			put(x0+c, y0, '─', p.Kind)
			put(x0+c, y0+boxHeight-1, '─', p.Kind)
		}
		for r := 0; r < boxHeight; r++ {
			put(x0, y0+r, '│', p.Kind)
			put(x0+boxWidth-1, y0+r, '│', p.Kind)
		}
		put(x0, y0, '┌', p.Kind)
		put(x0+boxWidth-1, y0, '┐', p.Kind)
		put(x0, y0+boxHeight-1, '└', p.Kind)
		put(x0+boxWidth-1, y0+boxHeight-1, '┘', p.Kind)
		put(x0+boxWidth/2, y0+1, kindGlyphs[p.Kind], p.Kind)
		if p.Kind == layout.KindRow && dy > 0 {
			put(x0+boxWidth/2, y0+boxHeight, '┊', p.Kind)
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		var run strings.Builder
		var prev cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if prev.set {
				sb.WriteString(kindStyles[prev.kind].Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for i, c := range line {
			if i > 0 && (c.set != prev.set || c.kind != prev.kind) {
				flush()
			}
			prev = c
			if c.set {
				run.WriteRune(c.r)
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		sb.WriteByte('\n')
	}
	sb.WriteString(styleCaption.Render(fmt.Sprintf("%s  %dx%d  %d piles", res.Family, res.Width, res.Height, len(s.board.Piles))))
	return sb.String()
}
