package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PaletteDef holds the map colors as hex strings, as stored in palette.json.
type PaletteDef struct {
	DarkWall   string `json:"darkWall"`
	DarkGround string `json:"darkGround"`
}

// Palette holds the parsed background colors used to draw the map.
type Palette struct {
	DarkWall   tcell.Color
	DarkGround tcell.Color
}

// DefaultPalette matches the embedded palette.json.
var DefaultPalette = Palette{
	DarkWall:   tcell.NewRGBColor(0, 0, 100),
	DarkGround: tcell.NewRGBColor(50, 50, 150),
}

// LoadPalette loads and parses the embedded palette.json.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}

	wall, err := ParseHexColor(def.DarkWall)
	if err != nil {
		return Palette{}, fmt.Errorf("palette darkWall: %w", err)
	}
	ground, err := ParseHexColor(def.DarkGround)
	if err != nil {
		return Palette{}, fmt.Errorf("palette darkGround: %w", err)
	}

	return Palette{DarkWall: wall, DarkGround: ground}, nil
}
