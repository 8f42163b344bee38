//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"plinkotone/internal/app"
	"plinkotone/internal/audio"
	"plinkotone/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	world, err := app.BuildWorld(context.Background(), cfg)
	if world == nil {
		log.Fatalf("build board: %v", err)
	}
	if err != nil {
		log.Printf("%v; using %s", err, world.Preset())
	}

	engine := audio.NewEngine(cfg.AudioConfig())
	if err := engine.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer engine.Close()
	world.SetSink(engine)

	ctl := &app.Controller{
		World:  world,
		Clock:  core.NewFrameClock(),
		Sound:  engine,
		Seed:   cfg.Seed,
		Printf: log.Printf,
	}
	game := app.New(ctl)
	size := world.Size()

	ebiten.SetWindowTitle("plinkotone: " + world.Preset())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W+app.HUDWidth, size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
