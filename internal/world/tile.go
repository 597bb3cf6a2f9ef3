// Package world provides the tile map the game is played on.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked    bool // entities cannot enter the cell
	BlockSight bool // the cell is opaque; rendered as a wall
}

// Empty returns a passable, transparent ground tile.
func Empty() Tile {
	return Tile{Blocked: false, BlockSight: false}
}

// Wall returns an impassable, opaque wall tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// IsWall returns true if the tile is drawn with the wall color.
func (t Tile) IsWall() bool {
	return t.BlockSight
}
