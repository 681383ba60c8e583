package core

import (
	"strings"
)

// Cell is one character of the screen buffer with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a 2D character buffer the simulation renders into.
// The platform layer turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, c)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int, c Color) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	s.SetColored(x, y, '┌', c)
	s.SetColored(right, y, '┐', c)
	s.SetColored(x, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
	for i := x + 1; i < right; i++ {
		s.SetColored(i, y, '─', c)
		s.SetColored(i, bottom, '─', c)
	}
	for j := y + 1; j < bottom; j++ {
		s.SetColored(x, j, '│', c)
		s.SetColored(right, j, '│', c)
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
