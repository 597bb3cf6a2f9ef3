package gamedata

import (
	"errors"
	"fmt"
)

// ObjectRegistry holds loaded object definitions in file order.
type ObjectRegistry struct {
	objects []ObjectDef
	player  *ObjectDef
}

// NewObjectRegistry creates a registry from loaded object definitions.
// Exactly one definition must carry the "player" role.
func NewObjectRegistry(objects []ObjectDef) (*ObjectRegistry, error) {
	registry := &ObjectRegistry{objects: objects}
	seen := make(map[string]bool, len(objects))

	for i := range objects {
		def := &objects[i]
		if seen[def.ID] {
			return nil, fmt.Errorf("duplicate object id %q", def.ID)
		}
		seen[def.ID] = true

		switch def.Role {
		case "player":
			if registry.player != nil {
				return nil, fmt.Errorf("object %q: more than one player defined", def.ID)
			}
			registry.player = def
		case "npc":
		default:
			return nil, fmt.Errorf("object %q: unknown role %q", def.ID, def.Role)
		}
	}

	if registry.player == nil {
		return nil, errors.New("no player object defined")
	}
	return registry, nil
}

// LoadObjectRegistry loads and creates a registry from the embedded objects.json.
func LoadObjectRegistry() (*ObjectRegistry, error) {
	objects, err := LoadObjects()
	if err != nil {
		return nil, err
	}
	return NewObjectRegistry(objects)
}

// Player returns the player definition.
func (r *ObjectRegistry) Player() *ObjectDef {
	return r.player
}

// All returns all object definitions in draw order.
func (r *ObjectRegistry) All() []ObjectDef {
	return r.objects
}
