// Package crossing provides the lane-crossing game for the arcade platform:
// walk the player across the stone lanes, avoid the bugs and collect the
// gems.
package crossing

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	platformcore "github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
	"github.com/vovakirdan/tui-crossing/internal/sprites"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Collect every gem to clear a level
	ModeEndless                  // Gems respawn, play until hit
)

// Package-level variables for configuration set via CLI
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty or unknown names
// keep the configured values unchanged.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	logger = l
}

// EffectiveConfig loads the configuration the next Reset will use, with the
// difficulty preset applied. It also reports where the file came from.
func EffectiveConfig() (config.CrossingConfig, string, error) {
	cfg, src, err := config.Resolve(configPath)
	if err != nil {
		return cfg, src, err
	}
	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&cfg, difficultyPreset)
	}
	return cfg, src, nil
}

// Game adapts the crossing simulation to the platform.
type Game struct {
	mode GameMode

	world      *core.World
	cfg        config.CrossingConfig
	difficulty *config.DifficultyManager
	sheet      *sprites.Sheet
	runtime    platformcore.RuntimeConfig

	// Last observed world status, for transition logging
	lastState core.State
	lastLevel int
}

// New creates a new crossing game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new crossing game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "crossing_endless"
	}
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Crossing (Endless)"
	}
	return "Crossing"
}

// SetSprites replaces the sprite sheet used by Render.
func (g *Game) SetSprites(sheet *sprites.Sheet) {
	if sheet == nil {
		return
	}
	if missing := sheet.Missing(spriteIDs); len(missing) > 0 {
		logger.Warn("sprite sheet incomplete", "sheet", sheet.Name, "missing", missing)
	}
	g.sheet = sheet
}

// Reset starts a new session on level 1.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, src, err := EffectiveConfig()
	if err != nil {
		logger.Error("config rejected, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultCrossingConfig()
		src = config.SourceBuiltin
	}
	logger.Debug("config loaded", "source", src, "preset", string(difficultyPreset))
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if g.sheet == nil {
		g.sheet = sprites.Default()
	}

	g.world = core.NewWorld(paramsFromConfig(cfg, g.mode), core.NewRand(runtime.Seed), g.difficulty)
	g.lastState = g.world.State()
	g.lastLevel = g.world.LevelNumber()

	logger.Info("session started", "mode", g.ID(), "seed", runtime.Seed)
}

// paramsFromConfig maps the YAML configuration onto simulation rules.
func paramsFromConfig(cfg config.CrossingConfig, mode GameMode) core.Params {
	return core.Params{
		Level: core.LevelSpec{
			WidthTiles:  cfg.Level.WidthTiles,
			HeightTiles: cfg.Level.HeightTiles,
			TileWidth:   cfg.Level.TileWidth,
			TileHeight:  cfg.Level.TileHeight,
		},
		PlayerStartRow: cfg.Player.StartRow,
		PlayerStartCol: cfg.Player.StartCol,
		SpawnRate:      cfg.Enemies.SpawnRate,
		EnemySpeed:     cfg.Enemies.Speed,
		EnemyRadius:    cfg.Enemies.HitRadius,
		GemRadius:      cfg.Gems.PickupRadius,
		Gems:           cfg.Gems.Count,
		GemPoints:      cfg.Gems.Points,
		Endless:        mode == ModeEndless,
		GracePeriod:    cfg.Timing.GracePeriod,
		BlinkInterval:  cfg.Timing.BlinkInterval,
	}
}

// Advance applies the input of this tick and runs the simulation for dt
// seconds.
func (g *Game) Advance(in platformcore.InputFrame, dt float64) platformcore.StepResult {
	switch g.world.State() {
	case core.StateGameOver:
		if in.Has(platformcore.ActionRestart) {
			if err := g.world.Restart(); err != nil {
				logger.Error("restart failed", "err", err)
			}
		}
	case core.StateLevelWon:
		if in.Has(platformcore.ActionConfirm) {
			if err := g.world.Continue(); err != nil {
				logger.Error("continue failed", "err", err)
			}
		}
	}

	for _, a := range in.Moves {
		g.world.Input(directionFor(a))
	}

	out := g.world.Update(dt)
	if out.PickedUpGem {
		logger.Debug("gem collected", "score", g.world.Score(), "left", len(g.world.Entities().Gems))
	}
	g.logTransitions()

	return platformcore.StepResult{State: g.State()}
}

// logTransitions reports state and level changes since the previous tick.
func (g *Game) logTransitions() {
	state, level := g.world.State(), g.world.LevelNumber()
	if state != g.lastState {
		logger.Info("state changed", "from", g.lastState, "to", state, "level", level, "score", g.world.Score())
	}
	if level != g.lastLevel {
		logger.Info("level changed", "level", level, "spawn_rate", g.world.Spawner().Rate, "enemy_speed", g.world.Spawner().Speed)
	}
	g.lastState, g.lastLevel = state, level
}

// directionFor maps a platform action to a player move.
func directionFor(a platformcore.Action) core.Direction {
	switch a {
	case platformcore.ActionLeft:
		return core.DirLeft
	case platformcore.ActionRight:
		return core.DirRight
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	default:
		return core.DirNone
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.world == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.world.Score(),
		Level:    g.world.LevelNumber(),
		GameOver: g.world.State() == core.StateGameOver,
		LevelWon: g.world.State() == core.StateLevelWon,
	}
}

// World exposes the running simulation.
func (g *Game) World() *core.World {
	return g.world
}

// Register the games with the registry
func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
	registry.Register("crossing_endless", func() registry.Game {
		return NewEndless()
	})
}
