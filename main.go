package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-combat/config"
	"github.com/automoto/doomerang-combat/scenes"
	"github.com/automoto/doomerang-combat/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLabScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logCommands := flag.Bool("log-commands", config.Debug.LogCommands, "log every routed combat command")
	slowmo := flag.Bool("slowmo", config.Debug.Slowmo, "start at quarter speed")
	resetTuning := flag.Bool("reset-tuning", false, "discard saved tuning before starting")
	flag.Parse()

	config.Debug.LogCommands = *logCommands
	config.Debug.Slowmo = *slowmo

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("doomerang combat lab")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence("doomerang-combat"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if *resetTuning {
		_ = systems.ClearTuning()
	}
	if saved, err := systems.LoadTuning(systems.DefaultTuning()); err == nil {
		systems.ApplyTuningGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
