package world

import (
	"context"
	"testing"
)

func TestNewMapAllEmpty(t *testing.T) {
	m := NewMap(DefaultWidth, DefaultHeight)

	if m.Width != 80 || m.Height != 45 {
		t.Fatalf("Expected 80x45 map, got %dx%d", m.Width, m.Height)
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if tile := m.GetTile(x, y); tile != Empty() {
				t.Fatalf("Tile at (%d,%d) should be empty, got %+v", x, y, tile)
			}
		}
	}

	if n := m.CountBlocked(); n != 0 {
		t.Errorf("Expected no blocked tiles, got %d", n)
	}
}

func TestMakeMap(t *testing.T) {
	m := MakeMap(context.Background(), 10, 7)

	if m.Width != 10 || m.Height != 7 {
		t.Fatalf("Expected 10x7 map, got %dx%d", m.Width, m.Height)
	}
	if m.CountBlocked() != 0 {
		t.Error("MakeMap should not place walls")
	}
}

func TestTileVariants(t *testing.T) {
	if w := Wall(); !w.Blocked || !w.BlockSight || w.IsPassable() || !w.IsWall() {
		t.Errorf("Wall should block movement and sight, got %+v", w)
	}
	if e := Empty(); e.Blocked || e.BlockSight || !e.IsPassable() || e.IsWall() {
		t.Errorf("Empty should block nothing, got %+v", e)
	}
}

func TestMapBounds(t *testing.T) {
	m := NewMap(5, 4)

	tests := []struct {
		x, y    int
		blocked bool
	}{
		{0, 0, false},
		{4, 3, false},
		{-1, 0, true},
		{0, -1, true},
		{5, 0, true},
		{0, 4, true},
	}

	for _, tt := range tests {
		if got := m.IsBlocked(tt.x, tt.y); got != tt.blocked {
			t.Errorf("IsBlocked(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.blocked)
		}
		if got := m.IsPassable(tt.x, tt.y); got == tt.blocked {
			t.Errorf("IsPassable(%d,%d) = %v, want %v", tt.x, tt.y, got, !tt.blocked)
		}
	}

	if tile := m.GetTile(-3, 2); tile != Wall() {
		t.Errorf("Out of bounds tile should read as wall, got %+v", tile)
	}
}

func TestSetTile(t *testing.T) {
	m := NewMap(5, 4)
	m.SetTile(2, 1, Wall())
	m.SetTile(9, 9, Wall()) // ignored

	if !m.IsBlocked(2, 1) {
		t.Error("Expected (2,1) to be blocked after SetTile")
	}
	if m.IsBlocked(1, 2) {
		t.Error("Row-major indexing mixed up x and y")
	}
	if n := m.CountBlocked(); n != 1 {
		t.Errorf("Expected 1 blocked tile, got %d", n)
	}
}

func TestNewMapNegativeSize(t *testing.T) {
	m := NewMap(-2, 3)
	if m.Width != 0 || m.InBounds(0, 0) {
		t.Errorf("Negative width should produce an empty map, got %dx%d", m.Width, m.Height)
	}
}
