package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBlitFullOpacity(t *testing.T) {
	src := NewConsole(3, 2)
	src.PutChar(0, 0, 'P', tcell.ColorBlue)
	src.SetBackground(2, 1, tcell.ColorNavy)

	dst := NewConsole(5, 5)
	dst.PutChar(1, 1, 'Z', tcell.ColorRed)
	Blit(src, 0, 0, 3, 2, dst, 1, 1, 1, 1)

	if got := dst.Cell(1, 1); got != src.Cell(0, 0) {
		t.Errorf("Expected %+v at (1,1), got %+v", src.Cell(0, 0), got)
	}
	if got := dst.Cell(3, 2); got != src.Cell(2, 1) {
		t.Errorf("Expected %+v at (3,2), got %+v", src.Cell(2, 1), got)
	}
	if got := dst.Cell(0, 0); got != blankCell {
		t.Errorf("Cell outside the blit rectangle changed: %+v", got)
	}
}

func TestBlitClipsToDestination(t *testing.T) {
	src := NewConsole(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.PutChar(x, y, '#', tcell.ColorWhite)
		}
	}

	dst := NewConsole(3, 3)
	Blit(src, 0, 0, 4, 4, dst, 1, 1, 1, 1)

	count := 0
	for _, cell := range dst.snapshot() {
		if cell.Rune == '#' {
			count++
		}
	}
	if count != 4 {
		t.Errorf("Expected 4 copied cells after clipping, got %d", count)
	}
}

func TestBlitZeroOpacityKeepsDestination(t *testing.T) {
	src := NewConsole(1, 1)
	src.PutChar(0, 0, 'P', tcell.ColorBlue)
	src.SetBackground(0, 0, tcell.ColorNavy)

	dst := NewConsole(1, 1)
	dst.PutChar(0, 0, 'Z', tcell.ColorRed)
	before := dst.Cell(0, 0)

	Blit(src, 0, 0, 1, 1, dst, 0, 0, 0, 0)
	if got := dst.Cell(0, 0); got != before {
		t.Errorf("Expected destination untouched, got %+v", got)
	}
}

func TestBlitHalfOpacityBlends(t *testing.T) {
	src := NewConsole(1, 1)
	src.SetBackground(0, 0, tcell.NewRGBColor(200, 100, 0))

	dst := NewConsole(1, 1)
	dst.SetBackground(0, 0, tcell.NewRGBColor(0, 100, 200))

	Blit(src, 0, 0, 1, 1, dst, 0, 0, 1, 0.5)

	r, g, b := dst.Cell(0, 0).Bg.RGB()
	if r != 100 || g != 100 || b != 100 {
		t.Errorf("Expected (100,100,100), got (%d,%d,%d)", r, g, b)
	}
}
