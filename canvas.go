package main

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"boxlabel/internal/label"
)

// imageSurface shows the image as half-block cells: one cell is one pixel
// wide and two pixels tall at display size. Pointer positions are expressed
// in source-image pixels so boxes do not depend on the terminal size.
type imageSurface struct {
	ref     string
	source  image.Image
	display *image.NRGBA
	loadErr error

	// Content area in screen cells.
	areaX, areaY       int
	areaCols, areaRows int

	// Source pixels per display pixel.
	scaleX, scaleY float64
	attached       bool
}

// newImageSurface opens ref as a local image file. An empty or unreadable
// ref gives a surface with no image, which is not an error for the editor.
func newImageSurface(ref string) *imageSurface {
	s := &imageSurface{ref: ref, scaleX: 1, scaleY: 1}
	if ref == "" {
		return s
	}
	img, err := imaging.Open(ref, imaging.AutoOrientation(true))
	if err != nil {
		s.loadErr = err
		return s
	}
	s.source = img
	return s
}

// layout places the surface at the given cell position and fits the image
// into the area. A zero-sized area detaches the surface.
func (s *imageSurface) layout(x, y, cols, rows int) {
	s.areaX, s.areaY = x, y
	s.areaCols, s.areaRows = cols, rows
	s.attached = cols > 0 && rows > 0
	if !s.attached {
		s.display = nil
		return
	}
	if s.source == nil {
		s.scaleX, s.scaleY = 1, 1
		return
	}

	s.display = imaging.Fit(s.source, cols, rows*2, imaging.Lanczos)
	b := s.source.Bounds()
	d := s.display.Bounds()
	s.scaleX = float64(b.Dx()) / float64(d.Dx())
	s.scaleY = float64(b.Dy()) / float64(d.Dy())
}

// BoundingRect reports the image rectangle in client coordinates.
func (s *imageSurface) BoundingRect() (label.Rect, bool) {
	if !s.attached {
		return label.Rect{}, false
	}
	w, h := s.sourceSize()
	left, top := s.clientPoint(s.areaX, s.areaY)
	return label.Rect{Left: left, Top: top, Width: w, Height: h}, true
}

func (s *imageSurface) sourceSize() (float64, float64) {
	if s.source == nil {
		return float64(s.areaCols), float64(s.areaRows * 2)
	}
	b := s.source.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// clientPoint converts a screen cell to client coordinates.
func (s *imageSurface) clientPoint(col, row int) (float64, float64) {
	return float64(col) * s.scaleX, float64(row) * 2 * s.scaleY
}

// containsClient reports whether a client position falls in the content area.
func (s *imageSurface) containsClient(x, y float64) bool {
	if !s.attached {
		return false
	}
	col := int(math.Floor(x / s.scaleX))
	row := int(math.Floor(y / (2 * s.scaleY)))
	return s.inArea(col, row)
}

func (s *imageSurface) inArea(col, row int) bool {
	return col >= s.areaX && col < s.areaX+s.areaCols &&
		row >= s.areaY && row < s.areaY+s.areaRows
}

// cellOf maps an image-local point to a cell offset within the area.
func (s *imageSurface) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / s.scaleX)), int(math.Floor(y / (2 * s.scaleY)))
}

type cell struct {
	ch rune
	fg string
	bg string
}

type palette struct {
	box      string
	selected string
	preview  string
}

// Render draws the content area: image pixels first, then committed boxes,
// then the box being drawn.
func (s *imageSurface) Render(boxes []label.Box, selection *label.Selection, preview *label.Geometry, pal palette) []string {
	if !s.attached {
		return nil
	}

	grid := make([][]cell, s.areaRows)
	for row := range grid {
		grid[row] = make([]cell, s.areaCols)
		for col := range grid[row] {
			grid[row][col] = s.pixelCell(col, row)
		}
	}

	for _, box := range boxes {
		isSelected := selection != nil && selection.Has(box.Index)
		fg := pal.box
		if isSelected {
			fg = pal.selected
		}
		s.drawBox(grid, box.Geometry, fg, isSelected, false)
	}
	if preview != nil {
		s.drawBox(grid, *preview, pal.preview, false, true)
	}

	lines := make([]string, len(grid))
	for row, cells := range grid {
		lines[row] = renderCells(cells)
	}
	return lines
}

func (s *imageSurface) pixelCell(col, row int) cell {
	if s.display == nil {
		return cell{ch: ' ', bg: emptySurfaceColor}
	}
	b := s.display.Bounds()
	top, bottom := row*2, row*2+1
	if col >= b.Dx() || top >= b.Dy() {
		return cell{ch: ' ', bg: emptySurfaceColor}
	}
	c := cell{ch: '▀', fg: hexOf(s.display.NRGBAAt(b.Min.X+col, b.Min.Y+top))}
	if bottom < b.Dy() {
		c.bg = hexOf(s.display.NRGBAAt(b.Min.X+col, b.Min.Y+bottom))
	} else {
		c.bg = emptySurfaceColor
	}
	return c
}

func (s *imageSurface) drawBox(grid [][]cell, g label.Geometry, fg string, handles, dashed bool) {
	c0, r0 := s.cellOf(g.Left, g.Top)
	c1, r1 := s.cellOf(g.Right(), g.Bottom())

	horizontal, vertical := '─', '│'
	if dashed {
		horizontal, vertical = '╌', '╎'
	}

	set := func(col, row int, ch rune) {
		if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
			return
		}
		grid[row][col].ch = ch
		grid[row][col].fg = fg
	}

	for col := c0 + 1; col < c1; col++ {
		set(col, r0, horizontal)
		set(col, r1, horizontal)
	}
	for row := r0 + 1; row < r1; row++ {
		set(c0, row, vertical)
		set(c1, row, vertical)
	}

	if handles {
		for _, p := range [][2]int{{c0, r0}, {c1, r0}, {c0, r1}, {c1, r1}} {
			set(p[0], p[1], '■')
		}
		return
	}
	set(c0, r0, '┌')
	set(c1, r0, '┐')
	set(c0, r1, '└')
	set(c1, r1, '┘')
}

// renderCells styles runs of equal colors together.
func renderCells(cells []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i].fg == cells[start].fg && cells[i].bg == cells[start].bg {
			continue
		}
		var run strings.Builder
		for _, c := range cells[start:i] {
			run.WriteRune(c.ch)
		}
		style := lipgloss.NewStyle()
		if cells[start].fg != "" {
			style = style.Foreground(lipgloss.Color(cells[start].fg))
		}
		if cells[start].bg != "" {
			style = style.Background(lipgloss.Color(cells[start].bg))
		}
		b.WriteString(style.Render(run.String()))
		start = i
	}
	return b.String()
}

func hexOf(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return emptySurfaceColor
	}
	return cf.Hex()
}
