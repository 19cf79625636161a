package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/systems"
	"github.com/automoto/doomerang-combat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer of the lab
const LayerDefault ecs.LayerID = 0

// SceneChanger switches the running scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// LabScene is a sparring arena: the keyboard drives the player and a scripted
// dummy fights back. F1 cycles the dummy script, F2 toggles slow motion, F3
// toggles weapon volumes and R restarts the bout.
type LabScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	difficulty   cfg.SparringDifficulty
	arena        factory.Arena
	once         sync.Once
}

// NewLabScene creates a lab running the configured default dummy script
func NewLabScene(sc SceneChanger) *LabScene {
	return &LabScene{sceneChanger: sc, difficulty: cfg.Sparring.Default}
}

func (ls *LabScene) Update() {
	ls.once.Do(ls.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ls.sceneChanger.ChangeScene(&LabScene{sceneChanger: ls.sceneChanger, difficulty: ls.difficulty})
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		ls.cycleDifficulty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		cfg.Debug.Slowmo = !cfg.Debug.Slowmo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowWeapons = !cfg.Debug.ShowWeapons
	}

	ls.ecs.Update()
}

func (ls *LabScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LabScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(UpdatePlayerInput)
	e.AddSystem(updateCombat)

	e.AddRenderer(LayerDefault, DrawArena)
	e.AddRenderer(LayerDefault, DrawCombatants)
	e.AddRenderer(LayerDefault, DrawHUD)

	ls.ecs = e
	ls.arena = factory.CreateArena(e.World, ls.difficulty)
}

func (ls *LabScene) cycleDifficulty() {
	ls.difficulty = (ls.difficulty + 1) % cfg.SparringDifficulty(len(cfg.Sparring.Scripts))
	systems.SetSparringDifficulty(ls.ecs.World, ls.difficulty)
	log.Printf("[lab] sparring script %d", ls.difficulty)

	tuning := systems.DefaultTuning()
	tuning.Sparring = ls.difficulty
	_ = systems.SaveTuning(tuning)
}

// updateCombat steps the simulation by one fixed tick
func updateCombat(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	if cfg.Debug.Slowmo {
		dt /= 4
	}
	systems.UpdateCombat(e.World, dt)
}
