package terminal

import (
	"strings"

	"github.com/Carmen-Shannon/crystal-space/common"
	"github.com/Carmen-Shannon/crystal-space/engine/view"
	"github.com/charmbracelet/lipgloss"
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2

// Cell is one character of the rasterized view.
type Cell struct {
	Glyph rune
	Color common.Color
}

// Raster is a row-major grid of cells.
type Raster [][]Cell

// Rasterize draws quads, already sorted far to near, into a cols x rows grid.
// The projection is done in a cols x rows*cellAspect pixel space so discs stay round.
// Every quad whose centre lands inside the grid covers at least its centre cell.
//
// Parameters:
//   - quads: the projected bodies and lights
//   - cols, rows: grid size in terminal cells
//
// Returns:
//   - Raster: the filled grid, blank cells hold a space
func Rasterize(quads []view.Quad, cols, rows int) Raster {
	grid := make(Raster, max(rows, 0))
	for y := range grid {
		grid[y] = make([]Cell, cols)
		for x := range grid[y] {
			grid[y][x].Glyph = ' '
		}
	}
	if cols <= 0 || rows <= 0 {
		return grid
	}

	w, h := float32(cols), float32(rows*cellAspect)
	for _, q := range quads {
		px, py, r := q.Pixels(w, h)
		glyph := '•'
		if r >= 1 {
			glyph = '●'
		}

		x0, x1 := int(px-r), int(px+r)
		y0, y1 := int((py-r)/cellAspect), int((py+r)/cellAspect)
		for y := max(y0, 0); y <= min(y1, rows-1); y++ {
			for x := max(x0, 0); x <= min(x1, cols-1); x++ {
				dx := float32(x) + 0.5 - px
				dy := (float32(y)+0.5)*cellAspect - py
				if dx*dx+dy*dy <= r*r {
					grid[y][x] = Cell{Glyph: glyph, Color: q.Color}
				}
			}
		}

		cx, cy := int(px), int(py/cellAspect)
		if px >= 0 && py >= 0 && cx < cols && cy < rows {
			grid[cy][cx] = Cell{Glyph: glyph, Color: q.Color}
		}
	}
	return grid
}

// String renders the raster with one lipgloss foreground style per cell colour.
func (r Raster) String() string {
	styles := make(map[common.Color]lipgloss.Style)
	var b strings.Builder
	for y, row := range r {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.Glyph == ' ' {
				b.WriteByte(' ')
				continue
			}
			style, ok := styles[c.Color]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color.Hex()))
				styles[c.Color] = style
			}
			b.WriteString(style.Render(string(c.Glyph)))
		}
	}
	return b.String()
}
