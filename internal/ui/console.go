package ui

import "github.com/gdamore/tcell/v2"

// Default colors of a cleared cell.
const (
	DefaultForeground = tcell.ColorWhite
	DefaultBackground = tcell.ColorBlack
)

// Cell is one character cell of a console or screen.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// blankCell is what Clear leaves behind.
var blankCell = Cell{Rune: ' ', Fg: DefaultForeground, Bg: DefaultBackground}

// Surface is anything cells can be read from and written to.
// Out-of-range access must be harmless: reads return a blank cell, writes are dropped.
type Surface interface {
	Size() (width, height int)
	Cell(x, y int) Cell
	SetCell(x, y int, c Cell)
}

// Console is an offscreen cell buffer stored row-major.
type Console struct {
	width  int
	height int
	cells  []Cell
}

// NewConsole creates a cleared console of the given size.
func NewConsole(width, height int) *Console {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Console{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Clear()
	return c
}

// Size returns the console dimensions.
func (c *Console) Size() (int, int) {
	return c.width, c.height
}

// Clear resets every cell to a blank space on the default background.
func (c *Console) Clear() {
	for i := range c.cells {
		c.cells[i] = blankCell
	}
}

func (c *Console) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Cell returns the cell at (x, y).
func (c *Console) Cell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return blankCell
	}
	return c.cells[y*c.width+x]
}

// SetCell overwrites the cell at (x, y).
func (c *Console) SetCell(x, y int, cell Cell) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = cell
}

// SetBackground changes the background color, keeping glyph and foreground.
func (c *Console) SetBackground(x, y int, bg tcell.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x].Bg = bg
}

// PutChar draws a glyph in the given color, keeping the background.
func (c *Console) PutChar(x, y int, r rune, fg tcell.Color) {
	if !c.inBounds(x, y) {
		return
	}
	cell := &c.cells[y*c.width+x]
	cell.Rune = r
	cell.Fg = fg
}

// snapshot returns a copy of all cells, row-major.
func (c *Console) snapshot() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}
