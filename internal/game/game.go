package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rustygame/internal/entity"
	"github.com/samdwyer/rustygame/internal/gamedata"
	"github.com/samdwyer/rustygame/internal/telemetry"
	"github.com/samdwyer/rustygame/internal/ui"
	"github.com/samdwyer/rustygame/internal/world"
)

// Exit reasons recorded on the session span.
const (
	exitQuitKey       = "quit_key"
	exitDisplayClosed = "display_closed"
	exitContextDone   = "context_done"
)

// Game holds the entire game state.
type Game struct {
	cfg       Config
	screen    *ui.Screen
	renderer  *ui.Renderer
	gameMap   *world.Map
	objects   []*entity.Object
	player    *entity.Object
	state     State
	sessionID string

	movesApplied  int
	movesRejected int
	exitReason    string
}

// New creates a game on a fresh terminal screen.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	screen, err := ui.NewScreen(cfg.Title)
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	g, err := NewWithScreen(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game that draws to and reads keys from screen.
func NewWithScreen(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	defer initSpan.End()

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	registry, err := gamedata.LoadObjectRegistry()
	if err != nil {
		return nil, fmt.Errorf("load objects: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		screen:    screen,
		renderer:  ui.NewRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight, palette, ui.NewFrameLimiter(cfg.FPS)),
		gameMap:   world.MakeMap(ctx, cfg.MapWidth, cfg.MapHeight),
		state:     StateRunning,
		sessionID: uuid.NewString(),
	}

	startX, startY := cfg.PlayerStart()
	if !g.gameMap.IsPassable(startX, startY) {
		// Fallback: place in center of map
		startX, startY = g.gameMap.Width/2, g.gameMap.Height/2
	}

	// Offsets are relative to the player definition, wherever it sits in the file.
	anchor := registry.Player()
	for _, def := range registry.All() {
		role, _ := entity.ParseRole(def.Role)
		x, y := g.spawnPoint(startX+def.OffsetX-anchor.OffsetX, startY+def.OffsetY-anchor.OffsetY, startX, startY)
		obj := entity.NewObject(def.Name, role, x, y, def.GlyphRune(), def.TCellColor())
		g.objects = append(g.objects, obj)
	}
	g.player = entity.Player(g.objects)

	initSpan.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("map.width", g.gameMap.Width),
		attribute.Int("map.height", g.gameMap.Height),
		attribute.Int("objects.count", len(g.objects)),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)

	return g, nil
}

// spawnPoint clamps (x, y) onto the map. A blocked result falls back to
// the player's start.
func (g *Game) spawnPoint(x, y, startX, startY int) (int, int) {
	x = min(max(x, 0), g.gameMap.Width-1)
	y = min(max(y, 0), g.gameMap.Height-1)
	if g.gameMap.IsBlocked(x, y) {
		return startX, startY
	}
	return x, y
}

// Map returns the session's map.
func (g *Game) Map() *world.Map {
	return g.gameMap
}

// Player returns the user-controlled object.
func (g *Game) Player() *entity.Object {
	return g.player
}

// Objects returns every object in draw order.
func (g *Game) Objects() []*entity.Object {
	return g.objects
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Frames returns how many frames have been presented.
func (g *Game) Frames() int {
	return g.renderer.Frames()
}

// Run executes the main game loop until the quit key is pressed,
// the display closes, or ctx is cancelled. The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()

	defer g.screen.Close()

	for g.state == StateRunning {
		if g.screen.Closed() {
			g.stop(exitDisplayClosed)
			break
		}

		// Render current state
		g.renderer.Render(g.gameMap, g.objects)

		// Handle input (blocking)
		ev, ok := g.screen.NextKey(ctx)
		if !ok {
			if ctx.Err() != nil {
				g.stop(exitContextDone)
			} else {
				g.stop(exitDisplayClosed)
			}
			break
		}
		g.apply(Classify(ev))
	}

	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("session.exit_reason", g.exitReason),
		attribute.Int("session.frames", g.renderer.Frames()),
		attribute.Int("session.moves_applied", g.movesApplied),
		attribute.Int("session.moves_rejected", g.movesRejected),
	)
	return nil
}

// apply performs one classified action.
func (g *Game) apply(a Action) {
	switch a.Kind {
	case ActionExit:
		g.stop(exitQuitKey)
	case ActionToggleFullscreen:
		g.screen.SetFullscreen(!g.screen.Fullscreen())
	case ActionMove:
		g.tryMove(a.DX, a.DY)
	}
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(dx, dy int) {
	if g.player.MoveBy(dx, dy, g.gameMap) {
		g.movesApplied++
	} else {
		g.movesRejected++
	}
}

func (g *Game) stop(reason string) {
	g.state = StateExiting
	g.exitReason = reason
}
