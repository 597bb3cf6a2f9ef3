package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rustygame/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// Map is a fixed-size grid of tiles stored row-major.
type Map struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewMap creates a map where every cell is empty ground.
// Non-positive dimensions yield an empty map.
func NewMap(width, height int) *Map {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Empty()
	}

	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// MakeMap builds the map for a new session.
// No walls are placed yet; every tile is ground.
func MakeMap(ctx context.Context, width, height int) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.make")
	defer span.End()

	startTime := time.Now()
	m := NewMap(width, height)

	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.blocked_tiles", m.CountBlocked()),
		attribute.Int64("map.generation_us", time.Since(startTime).Microseconds()),
	)
	return m
}

// InBounds returns true if (x, y) lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at the given position.
// Positions outside the map read as walls.
func (m *Map) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Wall()
	}
	return m.tiles[y*m.Width+x]
}

// SetTile replaces the tile at the given position.
// Writes outside the map are ignored.
func (m *Map) SetTile(x, y int, t Tile) {
	if !m.InBounds(x, y) {
		return
	}
	m.tiles[y*m.Width+x] = t
}

// IsBlocked returns true if an entity may not stand at (x, y).
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.tiles[y*m.Width+x].Blocked
}

// IsPassable returns true if the given position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return !m.IsBlocked(x, y)
}

// CountBlocked returns the number of blocked tiles.
func (m *Map) CountBlocked() int {
	n := 0
	for _, t := range m.tiles {
		if t.Blocked {
			n++
		}
	}
	return n
}
