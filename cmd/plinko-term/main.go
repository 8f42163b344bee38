package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"plinkotone/internal/app"
	"plinkotone/internal/audio"
	"plinkotone/internal/core"
	"plinkotone/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := app.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	world, err := app.BuildWorld(ctx, cfg)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctl := &app.Controller{
		World: world,
		Clock: core.NewFrameClock(),
		Sound: engine,
		Seed:  cfg.Seed,
	}
	view := term.New(screen, ctl)
	err = view.Run(ctx, cfg.TPS)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
