// Package entity provides the positioned, drawable objects of the game.
package entity

import "github.com/gdamore/tcell/v2"

// Role tags what an object is to the session.
type Role int

const (
	RoleNPC Role = iota
	RolePlayer
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleNPC:
		return "npc"
	default:
		return "unknown"
	}
}

// ParseRole converts a role name back to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "player":
		return RolePlayer, true
	case "npc":
		return RoleNPC, true
	default:
		return RoleNPC, false
	}
}

// Blocker reports whether a map position may not be entered.
// Positions outside the map must report true.
type Blocker interface {
	IsBlocked(x, y int) bool
}

// Object is a movable entity drawn as a single glyph.
type Object struct {
	Name   string      // Display name (e.g., "Player")
	Role   Role        // Player or NPC
	X, Y   int         // Position on the map
	Symbol rune        // Display glyph
	Color  tcell.Color // Glyph color
}

// NewObject creates an object at the given position.
func NewObject(name string, role Role, x, y int, symbol rune, color tcell.Color) *Object {
	return &Object{
		Name:   name,
		Role:   role,
		X:      x,
		Y:      y,
		Symbol: symbol,
		Color:  color,
	}
}

// Position returns the current x, y coordinates.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}

// IsPlayer returns true for the user-controlled object.
func (o *Object) IsPlayer() bool {
	return o.Role == RolePlayer
}

// MoveBy shifts the object by (dx, dy) if the destination is free.
// A blocked or out-of-bounds destination leaves the object where it is.
// Returns whether the move was applied.
func (o *Object) MoveBy(dx, dy int, b Blocker) bool {
	newX := o.X + dx
	newY := o.Y + dy

	if b.IsBlocked(newX, newY) {
		return false
	}
	o.X = newX
	o.Y = newY
	return true
}

// Player returns the first object tagged as the player, or nil.
func Player(objects []*Object) *Object {
	for _, o := range objects {
		if o != nil && o.IsPlayer() {
			return o
		}
	}
	return nil
}
