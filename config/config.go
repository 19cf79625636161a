package config

import (
	"image/color"

	"github.com/automoto/doomerang-combat/combat"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// LabConfig contains the sparring arena and collaborator tuning
type LabConfig struct {
	ArenaWidth  int
	ArenaHeight int
	CellSize    int

	// Combatant body (hurtbox) size in pixels
	BodyWidth  float64
	BodyHeight float64
	SpawnGap   float64 // Distance between player and dummy at spawn

	// Weapon sweep rectangle, placed in front of the owner
	WeaponReach  float64
	WeaponWidth  float64
	WeaponHeight float64

	// Motion warp stops this far from the target's edge
	WarpStandoff  float64
	EvadeDistance float64

	// Upper bound on command bus drain rounds per frame
	MaxDispatchRounds int

	// Seconds a reaction label stays on the overlay
	ReactionDisplayTime float64
}

// UIConfig contains overlay layout and colors
type UIConfig struct {
	BarWidth  float64
	BarHeight float64
	BarGap    float64

	PostureColor color.RGBA
	HealthColor  color.RGBA
	BarBgColor   color.RGBA
	BodyColor    color.RGBA
	WeaponColor  color.RGBA
	ActiveColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogCommands bool // Log every routed command
	ShowWeapons bool // Draw weapon sweep rectangles
	Slowmo      bool // Run the simulation at quarter speed
}

// Global configuration instances
var C *Config
var Combat combat.Settings
var Lab LabConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for combatant facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	// Combat Config (seconds and points)
	Combat = combat.Settings{
		MaxHealth:  100,
		MaxPosture: 100,

		// Regen while attacking > not blocking > idle; none while blocking
		PostureRegenAttacking:   12,
		PostureRegenNotBlocking: 8,
		PostureRegenIdle:        5,
		PostureRegenDelay:       1.0,

		GuardBreakStunDuration:    2.0,
		GuardBreakRecoveryPercent: 0.5,

		HoldBlendSpeed: 6.0,

		ParryTimingWindow:       0.15,
		ParryStateDuration:      0.25,
		CounterStateDuration:    0.6,
		ParriedCounterWindow:    0.8,
		ParryPostureDamage:      30,
		CounterDamageMultiplier: 1.5,

		BlockDamageRatio:       0.2,
		BlockPostureMultiplier: 0.75,

		EvadeDuration:       0.45,
		EvadeInvulnDuration: 0.25,

		MovementDeadzone: 0.25,
	}

	// Lab Config
	Lab = LabConfig{
		ArenaWidth:  640,
		ArenaHeight: 360,
		CellSize:    16,

		BodyWidth:  24,
		BodyHeight: 40,
		SpawnGap:   64,

		WeaponReach:  28,
		WeaponWidth:  28,
		WeaponHeight: 20,

		WarpStandoff:  6,
		EvadeDistance: 40,

		MaxDispatchRounds: 16,

		ReactionDisplayTime: 0.75,
	}

	// UI Config
	UI = UIConfig{
		BarWidth:  48,
		BarHeight: 4,
		BarGap:    2,

		PostureColor: Orange,
		HealthColor:  LightGreen,
		BarBgColor:   BlackOverlay,
		BodyColor:    LightBlue,
		WeaponColor:  Yellow,
		ActiveColor:  Red,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogCommands: false,
		ShowWeapons: true,
	}
}
