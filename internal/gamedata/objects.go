package gamedata

import "github.com/gdamore/tcell/v2"

// ObjectDef defines a starting object loaded from JSON.
type ObjectDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "player")
	Name    string `json:"name"`    // Display name (e.g., "Player")
	Glyph   string `json:"glyph"`   // Single character for rendering (e.g., "P")
	Color   string `json:"color"`   // Hex color code (e.g., "#0000FF")
	Role    string `json:"role"`    // "player" or "npc"
	OffsetX int    `json:"offsetX"` // Spawn offset from the player start
	OffsetY int    `json:"offsetY"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (o *ObjectDef) GlyphRune() rune {
	for _, r := range o.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (o *ObjectDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(o.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ObjectsFile represents the structure of objects.json.
type ObjectsFile struct {
	Objects []ObjectDef `json:"objects"`
}

// LoadObjects loads object definitions from the embedded objects.json file.
func LoadObjects() ([]ObjectDef, error) {
	file, err := Load[ObjectsFile]("objects.json")
	if err != nil {
		return nil, err
	}
	return file.Objects, nil
}
