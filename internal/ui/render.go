package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/cubenav/cubenav"
)

// cell is one projected sub-cube, ready to paint.
type cell struct {
	col, row int
	depth    float64
	color    lipgloss.Color
}

// projectCube maps every sub-cube onto a character grid: rotate by the
// display orientation (scaled by the intro spread), drop the depth axis,
// and sort far to near so closer cells overwrite farther ones.
func projectCube(cube *cubenav.Cube, view mgl64.Quat, spread float64, alt bool, cols, rows int) []cell {
	// Terminal cells are roughly twice as tall as wide; the x scale
	// compensates.
	scale := float64(rows) / (cube.Config().Size * 2.6)
	cx, cy := cols/2, rows/2

	cells := make([]cell, 0, len(cube.SubCubes()))
	for _, s := range cube.SubCubes() {
		p := view.Rotate(s.Position.Mul(spread))
		col := cx + int(p.X()*scale*2)
		row := cy - int(p.Y()*scale)
		if col < 0 || col >= cols-1 || row < 0 || row >= rows {
			continue
		}
		cells = append(cells, cell{
			col:   col,
			row:   row,
			depth: p.Z(),
			color: subCubeColor(s, view, alt, p.Z(), cube.Config().Size),
		})
	}

	sort.Slice(cells, func(i, j int) bool { return cells[i].depth < cells[j].depth })
	return cells
}

// subCubeColor picks the marker facing the viewer most directly, falling
// back to a depth-shaded body color.
func subCubeColor(s *cubenav.SubCube, view mgl64.Quat, alt bool, depth, size float64) lipgloss.Color {
	best := -1
	bestDot := 0.3 // below this the marker faces away or sideways
	for i, m := range s.Markers {
		dir := view.Rotate(s.Orientation.Rotate(m.Offset)).Normalize()
		if d := dir.Z(); d > bestDot {
			bestDot = d
			best = i
		}
	}
	if best >= 0 {
		if alt {
			return altPalette[s.Markers[best].Color]
		}
		return markerPalette[s.Markers[best].Color]
	}

	shade := 0
	if depth < -size/6 {
		shade = 2
	} else if depth < size/6 {
		shade = 1
	}
	return bodyPalette[shade]
}

// renderCells paints the projected cells into a block of styled lines.
func renderCells(cells []cell, bg lipgloss.Style, cols, rows int) string {
	type pixel struct {
		set   bool
		color lipgloss.Color
	}
	grid := make([][]pixel, rows)
	for r := range grid {
		grid[r] = make([]pixel, cols)
	}
	for _, c := range cells {
		grid[c.row][c.col] = pixel{true, c.color}
		if c.col+1 < cols {
			grid[c.row][c.col+1] = pixel{true, c.color}
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		run := 0
		flushBlank := func() {
			if run > 0 {
				b.WriteString(bg.Render(strings.Repeat(" ", run)))
				run = 0
			}
		}
		for col := 0; col < cols; col++ {
			px := grid[r][col]
			if !px.set {
				run++
				continue
			}
			flushBlank()
			b.WriteString(bg.Foreground(px.color).Render("█"))
		}
		flushBlank()
		b.WriteString("\n")
	}
	return b.String()
}
